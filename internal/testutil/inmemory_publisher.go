package testutil

import (
	"context"
	"sync"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/publisher"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

// InMemoryPublisher implements publisher.Publisher, recording lifecycle
// events instead of delivering them.
type InMemoryPublisher struct {
	mu     sync.Mutex
	events []*publisher.Event
}

func NewInMemoryPublisher() *InMemoryPublisher {
	return &InMemoryPublisher{}
}

func (p *InMemoryPublisher) Publish(ctx context.Context, event *publisher.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// Events returns published events in order
func (p *InMemoryPublisher) Events() []*publisher.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*publisher.Event(nil), p.events...)
}

// EventsNamed filters published events by name
func (p *InMemoryPublisher) EventsNamed(name types.LifecycleEventName) []*publisher.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*publisher.Event
	for _, e := range p.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func (p *InMemoryPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
