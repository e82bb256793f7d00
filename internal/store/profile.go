// Package store – ProfileStore
//
// ProfileStore holds user profiles, an append-only activity log per user, and
// a keyed preference table per user. Activity ids come from a global atomic
// counter starting at 1 and are never reused.
package store

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rajkundalia/movie-grpc-sample/internal/domain"
)

// CatalogStore and ProfileStore share the store package but own disjoint
// state; nothing here touches the catalog.

// ProfileStore is a concurrent registry of user profiles and their activity.
// The zero value is not usable; construct with NewProfileStore.
type ProfileStore struct {
	mu          sync.RWMutex
	users       map[int64]domain.UserProfile
	activities  map[int64][]domain.UserActivity
	preferences map[int64]map[string]domain.UserPreference // user id -> "key:value" -> preference

	activityID atomic.Int64
}

// NewProfileStore returns an empty profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		users:       make(map[int64]domain.UserProfile),
		activities:  make(map[int64][]domain.UserActivity),
		preferences: make(map[int64]map[string]domain.UserPreference),
	}
}

// AddUser inserts or replaces a profile.
func (s *ProfileStore) AddUser(u domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// GetByID returns the profile with the given id.
func (s *ProfileStore) GetByID(id int64) (domain.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// RecordActivity assigns the next sequential activity id, appends the entry
// to the user's log, and returns the stored record. The id counter is global
// across users and strictly increasing.
func (s *ProfileStore) RecordActivity(a domain.UserActivity) domain.UserActivity {
	a.ID = s.activityID.Add(1)
	s.mu.Lock()
	s.activities[a.UserID] = append(s.activities[a.UserID], a)
	s.mu.Unlock()
	return a
}

// ActivityHistory returns up to limit entries for userID with
// timestamp >= since, sorted by timestamp descending. An unknown user yields
// an empty slice, not an error. A limit <= 0 yields no entries, matching the
// wire contract where the caller always supplies a positive limit.
func (s *ProfileStore) ActivityHistory(userID int64, limit int, since int64) []domain.UserActivity {
	if limit < 0 {
		limit = 0
	}
	s.mu.RLock()
	log := s.activities[userID]
	out := make([]domain.UserActivity, 0, len(log))
	for _, a := range log {
		if a.Timestamp >= since {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// UpsertPreference stores p under userID keyed by "key:value". An existing
// entry with the same key and value has its weight overwritten; different
// values under the same key coexist. The preference is recorded for userID
// even if p.UserID disagrees; callers own that constraint.
func (s *ProfileStore) UpsertPreference(userID int64, p domain.UserPreference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs, ok := s.preferences[userID]
	if !ok {
		prefs = make(map[string]domain.UserPreference)
		s.preferences[userID] = prefs
	}
	p.UserID = userID
	prefs[p.Key+":"+p.Value] = p
}

// BatchUpsertPreferences applies every preference for userID and returns the
// number applied, which is always the input length; there is no
// partial-failure path.
func (s *ProfileStore) BatchUpsertPreferences(userID int64, prefs []domain.UserPreference) int {
	for _, p := range prefs {
		s.UpsertPreference(userID, p)
	}
	return len(prefs)
}

// PreferencesForUser returns the user's preferences in unspecified order.
func (s *ProfileStore) PreferencesForUser(userID int64) []domain.UserPreference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefs := s.preferences[userID]
	out := make([]domain.UserPreference, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, p)
	}
	return out
}
