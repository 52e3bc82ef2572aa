package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/profile"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
)

// InMemoryProfileStore implements profile.Repository for tests. Usage
// counters are settable per account, and any method can be forced to fail
// to exercise degradation paths.
type InMemoryProfileStore struct {
	mu sync.RWMutex

	profiles      map[string]*profile.Profile
	activities    []*profile.Activity
	notifications []*profile.Notification

	// usage counters keyed by account id
	businessProfiles map[string]int64
	investments      map[string]int64
	storageGB        map[string]float64

	// forced failures per method
	Errors map[string]error
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{
		profiles:         make(map[string]*profile.Profile),
		businessProfiles: make(map[string]int64),
		investments:      make(map[string]int64),
		storageGB:        make(map[string]float64),
		Errors:           make(map[string]error),
	}
}

func (s *InMemoryProfileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[string]*profile.Profile)
	s.activities = nil
	s.notifications = nil
	s.businessProfiles = make(map[string]int64)
	s.investments = make(map[string]int64)
	s.storageGB = make(map[string]float64)
	s.Errors = make(map[string]error)
}

// AddProfile seeds an account record
func (s *InMemoryProfileStore) AddProfile(p *profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = copyProfile(p)
}

// SetUsage seeds usage counters for an account
func (s *InMemoryProfileStore) SetUsage(accountID string, businesses, investments int64, storageGB float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businessProfiles[accountID] = businesses
	s.investments[accountID] = investments
	s.storageGB[accountID] = storageGB
}

// FailWith forces the named method to return err
func (s *InMemoryProfileStore) FailWith(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors[method] = err
}

func (s *InMemoryProfileStore) forced(method string) error {
	return s.Errors[method]
}

func (s *InMemoryProfileStore) GetProfile(ctx context.Context, accountID string) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.forced("GetProfile"); err != nil {
		return nil, err
	}
	p, ok := s.profiles[accountID]
	if !ok {
		return nil, ierr.NewError("profile not found").
			WithHint("Account not found").
			Mark(ierr.ErrNotFound)
	}
	return copyProfile(p), nil
}

func (s *InMemoryProfileStore) UpdateSubscription(ctx context.Context, accountID string, sub *subscription.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.forced("UpdateSubscription"); err != nil {
		return err
	}
	p, ok := s.profiles[accountID]
	if !ok {
		return ierr.NewError("profile not found").
			WithHint("Account not found").
			Mark(ierr.ErrNotFound)
	}
	subCopy := *sub
	p.Subscription = &subCopy
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *InMemoryProfileStore) CountBusinessProfiles(ctx context.Context, accountID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.forced("CountBusinessProfiles"); err != nil {
		return 0, err
	}
	return s.businessProfiles[accountID], nil
}

func (s *InMemoryProfileStore) CountInvestmentsSince(ctx context.Context, accountID string, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.forced("CountInvestmentsSince"); err != nil {
		return 0, err
	}
	return s.investments[accountID], nil
}

func (s *InMemoryProfileStore) StorageUsedGB(ctx context.Context, accountID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.forced("StorageUsedGB"); err != nil {
		return 0, err
	}
	return s.storageGB[accountID], nil
}

func (s *InMemoryProfileStore) LogActivity(ctx context.Context, activity *profile.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.forced("LogActivity"); err != nil {
		return err
	}
	s.activities = append(s.activities, activity)
	return nil
}

func (s *InMemoryProfileStore) CreateNotification(ctx context.Context, notification *profile.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.forced("CreateNotification"); err != nil {
		return err
	}
	s.notifications = append(s.notifications, notification)
	return nil
}

// Activities returns recorded audit entries
func (s *InMemoryProfileStore) Activities() []*profile.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*profile.Activity(nil), s.activities...)
}

// Notifications returns recorded notifications
func (s *InMemoryProfileStore) Notifications() []*profile.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*profile.Notification(nil), s.notifications...)
}

func copyProfile(p *profile.Profile) *profile.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Subscription != nil {
		sub := *p.Subscription
		cp.Subscription = &sub
	}
	return &cp
}
