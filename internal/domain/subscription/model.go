package subscription

import (
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

// Subscription is an account's current plan enrollment and billing state.
// It is owned exclusively by the account it belongs to and mutated only by
// the subscription service.
type Subscription struct {
	// Plan is the tier the account is enrolled in
	Plan types.PlanID `json:"plan" bson:"plan"`

	// Status is active or cancelled; a subscription is never deleted
	Status types.SubscriptionStatus `json:"status" bson:"status"`

	// SubscriptionID is the opaque external billing reference. It is
	// non-nil only while the account is on a paid tier.
	SubscriptionID *string `json:"subscription_id,omitempty" bson:"subscriptionId,omitempty"`

	// UpgradeDate is when the account last moved to a paid tier
	UpgradeDate *time.Time `json:"upgrade_date,omitempty" bson:"upgradeDate,omitempty"`

	// DowngradeDate is when the account last moved back to basic
	DowngradeDate *time.Time `json:"downgrade_date,omitempty" bson:"downgradeDate,omitempty"`

	// CancelledAt is when the subscription was cancelled
	CancelledAt *time.Time `json:"cancelled_at,omitempty" bson:"cancelledAt,omitempty"`

	// CancellationReason is the reason supplied at cancellation
	CancellationReason *string `json:"cancellation_reason,omitempty" bson:"cancellationReason,omitempty"`

	// EndDate is the hard expiry of the current billing period
	EndDate *time.Time `json:"end_date,omitempty" bson:"endDate,omitempty"`
}

// NewDefault returns the implicit subscription for an account observed for
// the first time
func NewDefault() *Subscription {
	return &Subscription{
		Plan:   types.PlanBasic,
		Status: types.SubscriptionStatusActive,
	}
}

// IsActiveAt reports whether the subscription is active at the given
// instant. Cancelled subscriptions are never active; the basic plan is
// always active; paid plans with an end date are active strictly before it.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	if s.Status == types.SubscriptionStatusCancelled {
		return false
	}
	if s.Plan == types.PlanBasic {
		return true
	}
	if s.EndDate != nil {
		return now.Before(*s.EndDate)
	}
	return s.Status == types.SubscriptionStatusActive
}
