// Package domain defines the value objects shared by the stores and the gRPC
// services: movies, user profiles, activities, preferences, and the activity
// events flowing through the tracking stream. These types carry no behavior
// beyond enum parsing; all mutation happens inside the stores.
package domain

// Movie represents a single catalog entry.
//
// Fields:
//   - ID: caller-assigned unique identifier.
//   - Rating: derived value; either the seeded rating or the arithmetic mean
//     of every user's latest submitted rating for this movie (maintained by
//     the catalog store's ledger).
//   - Genre: free text, matched case-insensitively by trending/recommendation
//     queries.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Year        int     `json:"year"`
	Director    string  `json:"director"`
	Rating      float64 `json:"rating"`
}

// UserProfile represents a registered user. Profiles are immutable after
// seeding; there is no profile-edit RPC.
type UserProfile struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	FavoriteGenres []string `json:"favorite_genres"`
	AccountAgeDays int      `json:"account_age_days"`
	ActivityLevel  int      `json:"activity_level"` // 1-10
}

// ActivityType classifies an entry in a user's activity log.
type ActivityType string

// Activity log entry kinds.
const (
	ActivityView     ActivityType = "VIEW"
	ActivityRate     ActivityType = "RATE"
	ActivityBookmark ActivityType = "BOOKMARK"
	ActivityWatch    ActivityType = "WATCH"
	ActivityShare    ActivityType = "SHARE"
)

// ParseActivityType converts a wire label into an ActivityType. Unknown
// labels fall back to ActivityView; the fallback is observable behavior and
// must not be tightened into an error.
func ParseActivityType(s string) ActivityType {
	switch ActivityType(s) {
	case ActivityView, ActivityRate, ActivityBookmark, ActivityWatch, ActivityShare:
		return ActivityType(s)
	default:
		return ActivityView
	}
}

// UserActivity is one append-only activity log entry. ID is assigned by the
// profile store from a global monotonic counter starting at 1; MovieTitle is
// denormalized at record time.
type UserActivity struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"user_id"`
	MovieID    int64        `json:"movie_id"`
	MovieTitle string       `json:"movie_title"`
	Type       ActivityType `json:"activity_type"`
	Timestamp  int64        `json:"timestamp"` // epoch millis
}

// UserPreference is a weighted preference entry. The identity of a preference
// is (user, key, value); re-submitting the same key/value pair overwrites the
// weight, while different values under the same key coexist.
type UserPreference struct {
	UserID int64   `json:"user_id"`
	Key    string  `json:"preference_key"`
	Value  string  `json:"preference_value"`
	Weight float64 `json:"weight"` // [0,1]
}

// EventType classifies an event on the activity-tracking stream.
type EventType string

// Tracking stream event kinds.
const (
	EventPageView EventType = "PAGE_VIEW"
	EventSearch   EventType = "SEARCH"
	EventClick    EventType = "CLICK"
	EventPlay     EventType = "PLAY"
	EventPause    EventType = "PAUSE"
	EventFinish   EventType = "FINISH"
	EventRate     EventType = "RATE"
)

// ParseEventType converts a wire label into an EventType. Unknown labels fall
// back to EventPageView, mirroring ParseActivityType.
func ParseEventType(s string) EventType {
	switch EventType(s) {
	case EventPageView, EventSearch, EventClick, EventPlay, EventPause, EventFinish, EventRate:
		return EventType(s)
	default:
		return EventPageView
	}
}

// ActivityEvent is a parsed inbound tracking event. Data is an opaque payload
// forwarded verbatim into generated insights.
type ActivityEvent struct {
	UserID    int64     `json:"user_id"`
	Type      EventType `json:"event_type"`
	Data      string    `json:"event_data"`
	Timestamp int64     `json:"timestamp"`
}
