package service

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	planDomain "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/publisher"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/samber/lo"
)

// SubscriptionService orchestrates plan changes, delegating monetary
// operations to the billing provider and persistence to the profile store.
// Side effects are ordered: provider first, then local persistence, then
// post-commit lifecycle events; local state never claims a billing effect
// that did not happen upstream.
type SubscriptionService interface {
	GetCurrentSubscription(ctx context.Context, accountID string) (*dto.SubscriptionResponse, error)
	ChangeSubscription(ctx context.Context, accountID string, req dto.ChangeSubscriptionRequest) (*dto.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, accountID string, req dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	ServiceParams
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
	}
}

func (s *subscriptionService) GetCurrentSubscription(ctx context.Context, accountID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.currentSubscription(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sub)
}

func (s *subscriptionService) ChangeSubscription(ctx context.Context, accountID string, req dto.ChangeSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newPlan, err := s.Catalog.Lookup(types.PlanID(req.Plan))
	if err != nil {
		return nil, err
	}

	current, err := s.currentSubscription(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if newPlan.ID == types.PlanBasic {
		return s.downgradeToBasic(ctx, accountID, current)
	}

	// moving between two paid tiers modifies the existing external
	// subscription rather than creating a second one
	if current.SubscriptionID != nil &&
		current.Plan != types.PlanBasic &&
		current.Plan != newPlan.ID &&
		current.Status == types.SubscriptionStatusActive {
		return s.switchPaidPlan(ctx, accountID, current, newPlan)
	}

	if current.Plan == newPlan.ID && current.Status == types.SubscriptionStatusActive {
		return nil, ierr.NewError("account is already on this plan").
			WithHint("Choose a different plan to change your subscription").
			WithReportableDetails(map[string]any{
				"plan": newPlan.ID,
			}).
			Mark(ierr.ErrUnprocessableTransition)
	}

	if req.PaymentMethodID == nil || *req.PaymentMethodID == "" {
		return nil, ierr.NewError("payment method required for paid plan").
			WithHint("A payment method is required to subscribe to a paid plan").
			WithReportableDetails(map[string]any{
				"plan": newPlan.ID,
			}).
			Mark(ierr.ErrPaymentMethodRequired)
	}

	return s.createPaidSubscription(ctx, accountID, newPlan, *req.PaymentMethodID)
}

func (s *subscriptionService) CancelSubscription(ctx context.Context, accountID string, req dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	current, err := s.currentSubscription(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if current.Status == types.SubscriptionStatusCancelled {
		return nil, ierr.NewError("subscription is already cancelled").
			WithHint("The subscription has already been cancelled").
			Mark(ierr.ErrUnprocessableTransition)
	}

	// external subscription is cancelled first; local state is only
	// touched once that succeeds
	if current.SubscriptionID != nil {
		if err := s.BillingProvider.CancelSubscription(ctx, accountID, *current.SubscriptionID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	updated := *current
	updated.Status = types.SubscriptionStatusCancelled
	updated.CancelledAt = &now
	if req.Reason != "" {
		updated.CancellationReason = lo.ToPtr(req.Reason)
	}

	if err := s.ProfileRepo.UpdateSubscription(ctx, accountID, &updated); err != nil {
		return nil, err
	}

	s.Publisher.Publish(ctx, publisher.NewEvent(
		types.LifecycleEventSubscriptionCancelled,
		accountID,
		map[string]any{
			"plan":   updated.Plan.String(),
			"reason": req.Reason,
		},
	))

	s.Logger.Infow("subscription cancelled",
		"account_id", accountID,
		"plan", updated.Plan,
		"reason", req.Reason)

	return s.toResponse(&updated)
}

// downgradeToBasic cancels any existing external subscription, then resets
// local state to basic/active with the external reference cleared. The
// billing provider's create path is never used for a downgrade.
func (s *subscriptionService) downgradeToBasic(ctx context.Context, accountID string, current *subscription.Subscription) (*dto.SubscriptionResponse, error) {
	if current.SubscriptionID != nil {
		if err := s.BillingProvider.CancelSubscription(ctx, accountID, *current.SubscriptionID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	updated := &subscription.Subscription{
		Plan:          types.PlanBasic,
		Status:        types.SubscriptionStatusActive,
		UpgradeDate:   current.UpgradeDate,
		DowngradeDate: &now,
	}

	if err := s.ProfileRepo.UpdateSubscription(ctx, accountID, updated); err != nil {
		return nil, err
	}

	s.Publisher.Publish(ctx, publisher.NewEvent(
		types.LifecycleEventPlanChanged,
		accountID,
		map[string]any{
			"plan":      types.PlanBasic.String(),
			"from":      current.Plan.String(),
			"downgrade": true,
		},
	))

	s.Logger.Infow("subscription downgraded to basic",
		"account_id", accountID,
		"from", current.Plan)

	return s.toResponse(updated)
}

// switchPaidPlan delegates the change to the provider's update operation,
// avoiding duplicate billing, then records the new tier locally
func (s *subscriptionService) switchPaidPlan(ctx context.Context, accountID string, current *subscription.Subscription, newPlan *planDomain.Plan) (*dto.SubscriptionResponse, error) {
	if err := s.BillingProvider.UpdateSubscription(ctx, accountID, *current.SubscriptionID, newPlan); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := *current
	updated.Plan = newPlan.ID
	updated.UpgradeDate = &now

	if err := s.ProfileRepo.UpdateSubscription(ctx, accountID, &updated); err != nil {
		return nil, err
	}

	s.Publisher.Publish(ctx, publisher.NewEvent(
		types.LifecycleEventPlanChanged,
		accountID,
		map[string]any{
			"plan": newPlan.ID.String(),
			"from": current.Plan.String(),
		},
	))

	s.Logger.Infow("subscription plan switched",
		"account_id", accountID,
		"from", current.Plan,
		"to", newPlan.ID)

	return s.toResponse(&updated)
}

// createPaidSubscription creates the external subscription first; local
// state is updated only on success, so a provider failure leaves no
// partial mutation behind
func (s *subscriptionService) createPaidSubscription(ctx context.Context, accountID string, newPlan *planDomain.Plan, paymentMethodID string) (*dto.SubscriptionResponse, error) {
	subscriptionID, err := s.BillingProvider.CreateSubscription(ctx, accountID, newPlan, paymentMethodID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := &subscription.Subscription{
		Plan:           newPlan.ID,
		Status:         types.SubscriptionStatusActive,
		SubscriptionID: &subscriptionID,
		UpgradeDate:    &now,
	}

	if err := s.ProfileRepo.UpdateSubscription(ctx, accountID, updated); err != nil {
		return nil, err
	}

	s.Publisher.Publish(ctx, publisher.NewEvent(
		types.LifecycleEventPlanChanged,
		accountID,
		map[string]any{
			"plan": newPlan.ID.String(),
		},
	))

	s.Logger.Infow("paid subscription created",
		"account_id", accountID,
		"plan", newPlan.ID,
		"subscription_id", subscriptionID)

	return s.toResponse(updated)
}

// currentSubscription returns the account's enrollment, defaulting to
// basic/active the first time an account is observed
func (s *subscriptionService) currentSubscription(ctx context.Context, accountID string) (*subscription.Subscription, error) {
	p, err := s.ProfileRepo.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if p.Subscription == nil {
		return subscription.NewDefault(), nil
	}
	return p.Subscription, nil
}

func (s *subscriptionService) toResponse(sub *subscription.Subscription) (*dto.SubscriptionResponse, error) {
	p, err := s.Catalog.Lookup(sub.Plan)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionResponse{
		Subscription: sub,
		Plan:         p,
		Active:       sub.IsActiveAt(time.Now().UTC()),
	}, nil
}
