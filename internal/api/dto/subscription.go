package dto

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/validator"
)

// ChangeSubscriptionRequest moves an account to a new plan tier. A payment
// method is required when moving to a paid tier without an existing
// external subscription.
type ChangeSubscriptionRequest struct {
	Plan            string  `json:"plan" validate:"required"`
	PaymentMethodID *string `json:"payment_method_id,omitempty"`
}

func (r *ChangeSubscriptionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CancelSubscriptionRequest cancels the account's subscription
type CancelSubscriptionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SubscriptionResponse is the account's enrollment with its catalog plan
// and computed activity
type SubscriptionResponse struct {
	Subscription *subscription.Subscription `json:"subscription"`
	Plan         *plan.Plan                 `json:"plan"`
	Active       bool                       `json:"active"`
}
