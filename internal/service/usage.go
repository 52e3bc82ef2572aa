package service

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/usage"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

// UsageService computes current-period consumption and evaluates plan
// limits against it
type UsageService interface {
	GetUsageSnapshot(ctx context.Context, accountID string) (*dto.UsageSnapshotResponse, error)
	CheckUsageLimit(ctx context.Context, accountID string, action types.LimitAction) (*dto.UsageLimitResponse, error)
}

type usageService struct {
	ServiceParams
}

func NewUsageService(params ServiceParams) UsageService {
	return &usageService{
		ServiceParams: params,
	}
}

func (s *usageService) GetUsageSnapshot(ctx context.Context, accountID string) (*dto.UsageSnapshotResponse, error) {
	snap, err := s.snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &dto.UsageSnapshotResponse{Snapshot: snap}, nil
}

func (s *usageService) CheckUsageLimit(ctx context.Context, accountID string, action types.LimitAction) (*dto.UsageLimitResponse, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.currentSubscription(ctx, accountID)
	if err != nil {
		return nil, err
	}

	p, err := s.Catalog.Lookup(sub.Plan)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}

	decision := usage.Evaluate(p, snap, action)

	return &dto.UsageLimitResponse{
		Action:    action,
		Allowed:   decision.Allowed,
		Unlimited: decision.Unlimited,
		Limit:     decision.Limit,
		Current:   decision.Current,
		Plan:      p.ID,
	}, nil
}

// snapshot queries the profile store counts and combines them into one
// snapshot. Fail-closed: if any count cannot be obtained the whole
// operation fails, so a limit decision is never made on incomplete data.
func (s *usageService) snapshot(ctx context.Context, accountID string) (*usage.Snapshot, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	profiles, err := s.ProfileRepo.CountBusinessProfiles(ctx, accountID)
	if err != nil {
		return nil, usageUnavailable(err, accountID)
	}

	investments, err := s.ProfileRepo.CountInvestmentsSince(ctx, accountID, monthStart)
	if err != nil {
		return nil, usageUnavailable(err, accountID)
	}

	storageGB, err := s.ProfileRepo.StorageUsedGB(ctx, accountID)
	if err != nil {
		return nil, usageUnavailable(err, accountID)
	}

	return &usage.Snapshot{
		AccountID:          accountID,
		BusinessProfiles:   profiles,
		MonthlyInvestments: investments,
		StorageGB:          storageGB,
		Taken:              now,
	}, nil
}

func (s *usageService) currentSubscription(ctx context.Context, accountID string) (*subscription.Subscription, error) {
	p, err := s.ProfileRepo.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if p.Subscription == nil {
		return subscription.NewDefault(), nil
	}
	return p.Subscription, nil
}

func usageUnavailable(err error, accountID string) error {
	return ierr.WithError(err).
		WithHint("Usage could not be determined, please retry").
		WithReportableDetails(map[string]any{
			"account_id": accountID,
		}).
		Mark(ierr.ErrUsageUnavailable)
}
