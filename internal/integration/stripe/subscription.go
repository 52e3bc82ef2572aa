package stripe

import (
	"context"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/stripe/stripe-go/v82"
)

// CreateSubscription creates an external subscription for the account on
// the given paid plan
func (p *Provider) CreateSubscription(ctx context.Context, accountID string, pl *plan.Plan, paymentMethodID string) (string, error) {
	priceID, err := p.priceIDFor(pl)
	if err != nil {
		return "", err
	}

	customerID, err := p.ensureCustomer(ctx, accountID)
	if err != nil {
		return "", err
	}

	params := &stripe.SubscriptionCreateParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionCreateItemParams{
			{Price: stripe.String(priceID)},
		},
		DefaultPaymentMethod: stripe.String(paymentMethodID),
		Metadata: map[string]string{
			"account_id": accountID,
			"plan":       pl.ID.String(),
		},
	}

	sub, err := p.api.V1Subscriptions.Create(ctx, params)
	if err != nil {
		p.logger.Errorw("failed to create stripe subscription",
			"account_id", accountID,
			"plan", pl.ID,
			"error", err)
		return "", ierr.WithError(err).
			WithHint("Unable to create the subscription with the payment provider").
			WithReportableDetails(map[string]any{
				"plan": pl.ID,
			}).
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	p.logger.Infow("created stripe subscription",
		"account_id", accountID,
		"plan", pl.ID,
		"stripe_subscription_id", sub.ID)

	return sub.ID, nil
}

// UpdateSubscription moves the existing external subscription to a new paid
// plan, swapping the single subscription item instead of creating a second
// subscription
func (p *Provider) UpdateSubscription(ctx context.Context, accountID string, subscriptionID string, pl *plan.Plan) error {
	priceID, err := p.priceIDFor(pl)
	if err != nil {
		return err
	}

	current, err := p.api.V1Subscriptions.Retrieve(ctx, subscriptionID, nil)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Unable to load the subscription from the payment provider").
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	if len(current.Items.Data) == 0 {
		return ierr.NewError("stripe subscription has no items").
			WithHint("The external subscription is in an unexpected state").
			WithReportableDetails(map[string]any{
				"subscription_id": subscriptionID,
			}).
			Mark(ierr.ErrSystem)
	}

	params := &stripe.SubscriptionUpdateParams{
		Items: []*stripe.SubscriptionUpdateItemParams{
			{
				ID:    stripe.String(current.Items.Data[0].ID),
				Price: stripe.String(priceID),
			},
		},
		ProrationBehavior: stripe.String("create_prorations"),
		Metadata: map[string]string{
			"account_id": accountID,
			"plan":       pl.ID.String(),
		},
	}

	if _, err := p.api.V1Subscriptions.Update(ctx, subscriptionID, params); err != nil {
		p.logger.Errorw("failed to update stripe subscription",
			"account_id", accountID,
			"subscription_id", subscriptionID,
			"plan", pl.ID,
			"error", err)
		return ierr.WithError(err).
			WithHint("Unable to change the subscription with the payment provider").
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	return nil
}

// CancelSubscription cancels the external subscription immediately
func (p *Provider) CancelSubscription(ctx context.Context, accountID string, subscriptionID string) error {
	_, err := p.api.V1Subscriptions.Cancel(ctx, subscriptionID, &stripe.SubscriptionCancelParams{})
	if err != nil {
		p.logger.Errorw("failed to cancel stripe subscription",
			"account_id", accountID,
			"subscription_id", subscriptionID,
			"error", err)
		return ierr.WithError(err).
			WithHint("Unable to cancel the subscription with the payment provider").
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	p.logger.Infow("cancelled stripe subscription",
		"account_id", accountID,
		"subscription_id", subscriptionID)

	return nil
}
