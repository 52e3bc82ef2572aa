package publisher

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/profile"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

// Event is a subscription lifecycle event emitted after local state has
// been committed
type Event struct {
	ID        string
	Name      types.LifecycleEventName
	AccountID string
	Metadata  map[string]any
	Timestamp time.Time
}

// NewEvent builds a lifecycle event for the account
func NewEvent(name types.LifecycleEventName, accountID string, metadata map[string]any) *Event {
	return &Event{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		Name:      name,
		AccountID: accountID,
		Metadata:  metadata,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher delivers lifecycle events to their side-effect sinks
type Publisher interface {
	Publish(ctx context.Context, event *Event)
}

// dispatcher delivers audit log entries and notifications to the profile
// store. Delivery is best-effort: failures are logged and never surface to
// the lifecycle operation that emitted the event, which has already
// committed its billing and state changes.
type dispatcher struct {
	profileRepo profile.Repository
	logger      *logger.Logger
}

func NewDispatcher(profileRepo profile.Repository, logger *logger.Logger) Publisher {
	return &dispatcher{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (d *dispatcher) Publish(ctx context.Context, event *Event) {
	d.logActivity(ctx, event)
	d.notify(ctx, event)
}

func (d *dispatcher) logActivity(ctx context.Context, event *Event) {
	activity := &profile.Activity{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACTIVITY),
		AccountID:  event.AccountID,
		EventType:  activityTypeFor(event),
		EntityType: "subscription",
		EntityID:   event.AccountID,
		Metadata:   event.Metadata,
		CreatedAt:  event.Timestamp,
	}

	if err := d.profileRepo.LogActivity(ctx, activity); err != nil {
		d.logger.Errorw("failed to record subscription activity",
			"account_id", event.AccountID,
			"event", event.Name,
			"error", err)
	}
}

func (d *dispatcher) notify(ctx context.Context, event *Event) {
	notification := notificationFor(event)
	if notification == nil {
		return
	}

	if err := d.profileRepo.CreateNotification(ctx, notification); err != nil {
		d.logger.Warnw("failed to create subscription notification",
			"account_id", event.AccountID,
			"event", event.Name,
			"error", err)
	}
}

func activityTypeFor(event *Event) string {
	switch event.Name {
	case types.LifecycleEventSubscriptionCancelled:
		return string(types.ActivityTypeSubscriptionCancelled)
	case types.LifecycleEventPlanChanged:
		if downgraded, ok := event.Metadata["downgrade"].(bool); ok && downgraded {
			return string(types.ActivityTypeSubscriptionDowngraded)
		}
		return string(types.ActivityTypeSubscriptionUpgraded)
	default:
		return string(event.Name)
	}
}

func notificationFor(event *Event) *profile.Notification {
	base := &profile.Notification{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION),
		AccountID: event.AccountID,
		Metadata:  event.Metadata,
		CreatedAt: event.Timestamp,
	}

	switch event.Name {
	case types.LifecycleEventPlanChanged:
		base.Type = string(types.NotificationTypeSubscriptionConfirmed)
		base.Title = "Subscription updated"
		base.Message = "Your subscription plan has been updated."
		return base
	case types.LifecycleEventSubscriptionCancelled:
		base.Type = string(types.NotificationTypeCancellationSurvey)
		base.Title = "Sorry to see you go"
		base.Message = "Your subscription has been cancelled. Tell us what we could have done better."
		return base
	default:
		return nil
	}
}
