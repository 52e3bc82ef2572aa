package profile

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
)

// Repository is the profile store collaborator contract. The production
// implementation is backed by a document database; tests use an in-memory
// store.
type Repository interface {
	// GetProfile returns the account record, or a not-found error
	GetProfile(ctx context.Context, accountID string) (*Profile, error)

	// UpdateSubscription replaces the embedded subscription state for the
	// account
	UpdateSubscription(ctx context.Context, accountID string, sub *subscription.Subscription) error

	// CountBusinessProfiles returns the number of business profiles owned
	// by the account
	CountBusinessProfiles(ctx context.Context, accountID string) (int64, error)

	// CountInvestmentsSince returns the number of investments the account
	// created at or after the given instant
	CountInvestmentsSince(ctx context.Context, accountID string, since time.Time) (int64, error)

	// StorageUsedGB returns the storage the account consumes, in gigabytes
	StorageUsedGB(ctx context.Context, accountID string) (float64, error)

	// LogActivity appends an audit log entry
	LogActivity(ctx context.Context, activity *Activity) error

	// CreateNotification creates a user-facing notification
	CreateNotification(ctx context.Context, notification *Notification) error
}
