package types

// LifecycleEventName identifies a subscription lifecycle event emitted
// after local state has been committed
type LifecycleEventName string

const (
	LifecycleEventPlanChanged           LifecycleEventName = "subscription.plan_changed"
	LifecycleEventSubscriptionCancelled LifecycleEventName = "subscription.cancelled"
)

func (e LifecycleEventName) String() string {
	return string(e)
}

// ActivityType is the audit log entry type recorded in the profile store
type ActivityType string

const (
	ActivityTypeSubscriptionUpgraded   ActivityType = "subscription_upgraded"
	ActivityTypeSubscriptionDowngraded ActivityType = "subscription_downgraded"
	ActivityTypeSubscriptionCancelled  ActivityType = "subscription_cancelled"
)

// NotificationType is the kind of notification created in the profile store
type NotificationType string

const (
	NotificationTypeSubscriptionConfirmed NotificationType = "subscription_confirmed"
	NotificationTypeCancellationSurvey    NotificationType = "cancellation_survey"
)
