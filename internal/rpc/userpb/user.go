// Package userpb holds the wire types and service descriptor for the
// UserService RPC surface described in proto/user.proto. See moviepb for the
// conventions; the two packages are maintained the same way.
package userpb

// UserRequest asks for a single profile by id.
type UserRequest struct {
	UserID int64 `json:"user_id"`
}

// UserProfileResponse is a full profile record.
type UserProfileResponse struct {
	UserID         int64    `json:"user_id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	FavoriteGenres []string `json:"favorite_genres"`
	AccountAgeDays int      `json:"account_age_days"`
	ActivityLevel  int      `json:"activity_level"`
}

// UserHistoryRequest selects a slice of a user's activity log.
type UserHistoryRequest struct {
	UserID         int64 `json:"user_id"`
	Limit          int   `json:"limit"`
	SinceTimestamp int64 `json:"since_timestamp"`
}

// UserActivityResponse is one activity log entry. ActivityType carries the
// labels VIEW, RATE, BOOKMARK, WATCH, SHARE.
type UserActivityResponse struct {
	ActivityID   int64  `json:"activity_id"`
	UserID       int64  `json:"user_id"`
	MovieID      int64  `json:"movie_id"`
	MovieTitle   string `json:"movie_title"`
	ActivityType string `json:"activity_type"`
	Timestamp    int64  `json:"timestamp"`
}

// UserPreferenceRequest is one entry of a batch preference update. The user
// id of the first message in a stream designates the target user for the
// whole batch.
type UserPreferenceRequest struct {
	UserID          int64   `json:"user_id"`
	PreferenceKey   string  `json:"preference_key"`
	PreferenceValue string  `json:"preference_value"`
	Weight          float64 `json:"weight"`
}

// UpdatePreferencesResponse closes a batch preference update.
// UpdatedPreferences lists the applied "key:value" pairs in submission order.
type UpdatePreferencesResponse struct {
	UpdatedCount       int      `json:"updated_count"`
	Success            bool     `json:"success"`
	UpdatedPreferences []string `json:"updated_preferences"`
}

// UserActivityEvent is one inbound event on the activity-tracking stream.
// EventType carries the labels PAGE_VIEW, SEARCH, CLICK, PLAY, PAUSE, FINISH,
// RATE; EventData is an opaque payload echoed into insights.
type UserActivityEvent struct {
	UserID    int64  `json:"user_id"`
	EventType string `json:"event_type"`
	EventData string `json:"event_data"`
	Timestamp int64  `json:"timestamp"`
}

// UserInsightResponse is one outbound insight derived from a tracking event.
type UserInsightResponse struct {
	UserID          int64   `json:"user_id"`
	InsightType     string  `json:"insight_type"`
	InsightData     string  `json:"insight_data"`
	ConfidenceScore float64 `json:"confidence_score"`
}
