// Package services – subscriber Registry
//
// The registry tracks which insight streams are open per user. Its only
// observable role is lifecycle bookkeeping: insights are delivered on the
// originating stream, never fanned out to a user's other open streams.
// Broadcast would be the natural extension, but it is deliberately not
// implemented; callers depend on the current one-stream delivery.
package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/userpb"
)

// InsightSender is the outbound half of a tracking stream as seen by the
// registry. userpb tracking streams satisfy it directly.
type InsightSender interface {
	Send(*userpb.UserInsightResponse) error
}

// Subscription is one registered outbound stream. ID is a process-unique
// handle used for removal and log correlation.
type Subscription struct {
	ID     string
	UserID int64
	Sender InsightSender
}

// Registry maps user id -> set of open insight subscriptions. Safe for
// concurrent use; membership tests and removals are atomic per user id.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu   sync.RWMutex
	subs map[int64]map[string]*Subscription
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[int64]map[string]*Subscription)}
}

// Register adds a subscription for userID and returns its handle.
func (r *Registry) Register(userID int64, sender InsightSender) *Subscription {
	sub := &Subscription{ID: uuid.NewString(), UserID: userID, Sender: sender}
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.subs[userID]
	if !ok {
		set = make(map[string]*Subscription)
		r.subs[userID] = set
	}
	set[sub.ID] = sub
	return sub
}

// Unregister removes a subscription. When the user's set becomes empty the
// entry itself is dropped, so Count reports zero and the map does not leak
// per-user entries. Unregistering twice is harmless.
func (r *Registry) Unregister(sub *Subscription) {
	if sub == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.subs[sub.UserID]
	if !ok {
		return
	}
	delete(set, sub.ID)
	if len(set) == 0 {
		delete(r.subs, sub.UserID)
	}
}

// Count returns the number of open subscriptions for userID.
func (r *Registry) Count(userID int64) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[userID])
}

// Total returns the number of open subscriptions across all users.
func (r *Registry) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, set := range r.subs {
		n += len(set)
	}
	return n
}
