package stripe

import (
	"context"
	"fmt"

	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/stripe/stripe-go/v82"
)

// findCustomer looks up the Stripe customer tagged with the account id.
// Returns nil without error when no customer exists yet.
func (p *Provider) findCustomer(ctx context.Context, accountID string) (*stripe.Customer, error) {
	params := &stripe.CustomerSearchParams{}
	params.Query = fmt.Sprintf("metadata['account_id']:'%s'", accountID)
	params.Limit = stripe.Int64(1)

	iter := p.api.V1Customers.Search(ctx, params)
	for customer, err := range iter {
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Unable to look up the billing account").
				Mark(ierr.ErrCollaboratorUnavailable)
		}
		return customer, nil
	}

	return nil, nil
}

// ensureCustomer returns the Stripe customer id for the account, creating
// the customer if it does not exist yet
func (p *Provider) ensureCustomer(ctx context.Context, accountID string) (string, error) {
	existing, err := p.findCustomer(ctx, accountID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	params := &stripe.CustomerCreateParams{
		Metadata: map[string]string{
			"account_id": accountID,
		},
	}

	customer, err := p.api.V1Customers.Create(ctx, params)
	if err != nil {
		p.logger.Errorw("failed to create stripe customer",
			"account_id", accountID,
			"error", err)
		return "", ierr.WithError(err).
			WithHint("Unable to create the billing account").
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	p.logger.Infow("created stripe customer",
		"account_id", accountID,
		"stripe_customer_id", customer.ID)

	return customer.ID, nil
}
