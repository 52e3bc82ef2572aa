package types

import (
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/samber/lo"
)

// LimitAction is a closed enum of actions subject to plan limits.
// Every member must declare its limit semantics in the evaluator; action
// strings outside the enum are rejected at the boundary rather than
// silently allowed.
type LimitAction string

const (
	LimitActionCreateBusinessProfile LimitAction = "create_business_profile"
	LimitActionMakeInvestment        LimitAction = "make_investment"
	LimitActionUploadFile            LimitAction = "upload_file"
	LimitActionAPICall               LimitAction = "api_call"
	LimitActionOpenSupportTicket     LimitAction = "open_support_ticket"
)

func (a LimitAction) String() string {
	return string(a)
}

func (a LimitAction) Validate() error {
	allowed := []LimitAction{
		LimitActionCreateBusinessProfile,
		LimitActionMakeInvestment,
		LimitActionUploadFile,
		LimitActionAPICall,
		LimitActionOpenSupportTicket,
	}
	if !lo.Contains(allowed, a) {
		return ierr.NewError("invalid usage action").
			WithHint("The requested action is not recognized").
			WithReportableDetails(map[string]any{
				"action":          a,
				"allowed_actions": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
