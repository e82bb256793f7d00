// Package moviepb holds the wire types and service descriptor for the
// MovieService RPC surface described in proto/movie.proto. Messages are plain
// structs carried by the JSON codec (internal/rpc/jsoncodec); the descriptor
// and stream wrappers are maintained by hand and mirror the layout protoc
// would emit, so service code reads the same as it would against generated
// bindings.
package moviepb

// EventType labels a user interaction on the recommendation stream.
type EventType string

// Interaction kinds, strongest recommendation signal first.
const (
	EventRate     EventType = "RATE"
	EventWatch    EventType = "WATCH"
	EventBookmark EventType = "BOOKMARK"
	EventView     EventType = "VIEW"
	EventShare    EventType = "SHARE"
)

// MovieRequest asks for a single movie by id.
type MovieRequest struct {
	MovieID int64 `json:"movie_id"`
}

// MovieResponse is a full movie record.
type MovieResponse struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Genre       string  `json:"genre"`
	Year        int     `json:"year"`
	Director    string  `json:"director"`
}

// TrendingMoviesRequest selects the trending query. A non-positive Limit is
// treated as the server default (10); an empty Genre disables filtering.
type TrendingMoviesRequest struct {
	Limit int    `json:"limit"`
	Genre string `json:"genre,omitempty"`
}

// UpdateRatingRequest is one entry of a batch rating update.
type UpdateRatingRequest struct {
	MovieID int64   `json:"movie_id"`
	UserID  int64   `json:"user_id"`
	Rating  float64 `json:"rating"`
}

// UpdateRatingBatchResponse closes a batch rating update. Success is true
// when at least one rating was applied.
type UpdateRatingBatchResponse struct {
	UpdatedCount int  `json:"updated_count"`
	Success      bool `json:"success"`
}

// UserEventRequest is one inbound interaction on the recommendation stream.
type UserEventRequest struct {
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	EventType EventType `json:"event_type"`
}

// MovieRecommendation is one outbound recommendation with a bounded [0,1]
// confidence score and a human-readable reason.
type MovieRecommendation struct {
	MovieID              int64   `json:"movie_id"`
	Title                string  `json:"title"`
	ConfidenceScore      float64 `json:"confidence_score"`
	RecommendationReason string  `json:"recommendation_reason"`
}
