// Package services – CatalogService
//
// This file implements the movie catalog RPCs: unary lookup, the paced
// trending stream, the batch rating update, and the duplex recommendation
// stream. Reads go straight to the catalog store; the only state a call keeps
// is its own accumulator or session struct, torn down when the call ends.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rajkundalia/movie-grpc-sample/internal/domain"
	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/moviepb"
	"github.com/rajkundalia/movie-grpc-sample/internal/store"
)

// defaultTrendingLimit applies when a trending request carries no positive
// limit.
const defaultTrendingLimit = 10

// CatalogService exposes the catalog store over gRPC.
type CatalogService struct {
	// Store is the backing movie catalog.
	Store *store.CatalogStore

	// StreamDelay paces trending delivery; one message per interval. Zero
	// disables pacing.
	StreamDelay time.Duration
}

// NewCatalogService constructs a CatalogService with the given pacing
// interval.
func NewCatalogService(st *store.CatalogStore, streamDelay time.Duration) *CatalogService {
	return &CatalogService{Store: st, StreamDelay: streamDelay}
}

// GetMovie returns the movie with the requested id, or NotFound.
func (s *CatalogService) GetMovie(ctx context.Context, req *moviepb.MovieRequest) (*moviepb.MovieResponse, error) {
	m, ok := s.Store.GetByID(req.MovieID)
	if !ok {
		log.Warn().Int64("movie_id", req.MovieID).Msg("movie not found")
		return nil, status.Error(codes.NotFound, ErrMovieNotFound.Error())
	}
	return movieResponse(m), nil
}

// GetTrendingMovies streams up to limit movies in ranked order, one message
// per pacing interval. The delay is abortable: when the caller cancels, the
// wait returns and the stream stops without running to completion.
func (s *CatalogService) GetTrendingMovies(req *moviepb.TrendingMoviesRequest, stream moviepb.MovieService_GetTrendingMoviesServer) error {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	movies := s.Store.Trending(limit, req.Genre)
	log.Info().Int("limit", limit).Str("genre", req.Genre).Int("results", len(movies)).Msg("streaming trending movies")

	ctx := stream.Context()
	var pacer *rate.Limiter
	if s.StreamDelay > 0 {
		pacer = rate.NewLimiter(rate.Every(s.StreamDelay), 1)
	}
	for _, m := range movies {
		if pacer != nil {
			if err := pacer.Wait(ctx); err != nil {
				return status.FromContextError(ctx.Err()).Err()
			}
		}
		if err := stream.Send(movieResponse(m)); err != nil {
			return err
		}
	}
	return nil
}

// ratingBatch is the per-call state of one UpdateMovieRatings stream.
type ratingBatch struct {
	updated int
}

// UpdateMovieRatings applies each inbound rating update and closes with the
// number applied. Updates against unknown movie ids are skipped silently.
// An inbound error tears the call down without a terminal response.
func (s *CatalogService) UpdateMovieRatings(stream moviepb.MovieService_UpdateMovieRatingsServer) error {
	var batch ratingBatch
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			log.Info().Int("updated", batch.updated).Msg("completed batch rating update")
			return stream.SendAndClose(&moviepb.UpdateRatingBatchResponse{
				UpdatedCount: batch.updated,
				Success:      batch.updated > 0,
			})
		}
		if err != nil {
			log.Error().Err(err).Int("updated", batch.updated).Msg("batch rating update aborted")
			return err
		}
		if s.Store.UpdateRating(req.MovieID, req.UserID, req.Rating) {
			batch.updated++
		}
	}
}

// recommendationSession is the per-call state of one duplex recommendation
// stream: the latest preferred genre observed per user id, discarded when the
// call ends. Nothing is written back to any store.
type recommendationSession struct {
	preferredGenres map[int64]string
}

// GetPersonalizedRecommendations reacts to each inbound user event by
// recording the referenced movie's genre as that user's preferred genre for
// the rest of the call, then pushing one recommendation per matching movie.
// Events referencing unknown movies produce no output.
func (s *CatalogService) GetPersonalizedRecommendations(stream moviepb.MovieService_GetPersonalizedRecommendationsServer) error {
	session := recommendationSession{preferredGenres: make(map[int64]string)}
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("recommendation stream aborted")
			return err
		}

		movie, ok := s.Store.GetByID(ev.MovieID)
		if !ok {
			continue
		}
		session.preferredGenres[ev.UserID] = movie.Genre

		for _, rec := range s.Store.RecommendForUser(session.preferredGenres[ev.UserID]) {
			out := &moviepb.MovieRecommendation{
				MovieID:              rec.ID,
				Title:                rec.Title,
				ConfidenceScore:      confidenceScore(rec, ev.EventType),
				RecommendationReason: recommendationReason(rec, ev.EventType),
			}
			if err := stream.Send(out); err != nil {
				return err
			}
		}
	}
}

// confidenceScore derives a [0,1] strength value from the movie's rating and
// the kind of interaction that triggered the recommendation.
func confidenceScore(m domain.Movie, event moviepb.EventType) float64 {
	base := m.Rating / 10.0

	var multiplier float64
	switch event {
	case moviepb.EventRate:
		multiplier = 1.2
	case moviepb.EventWatch:
		multiplier = 1.1
	case moviepb.EventBookmark:
		multiplier = 1.0
	default:
		multiplier = 0.8
	}
	return math.Min(base*multiplier, 1.0)
}

// recommendationReason renders the human-readable explanation for a
// recommendation, templated by the triggering interaction.
func recommendationReason(m domain.Movie, event moviepb.EventType) string {
	switch event {
	case moviepb.EventRate:
		return fmt.Sprintf("Recommended because you rated movies in the %s genre", m.Genre)
	case moviepb.EventWatch:
		return fmt.Sprintf("Recommended because you watched movies directed by %s", m.Director)
	case moviepb.EventBookmark:
		return fmt.Sprintf("Recommended because you bookmarked similar %s movies", m.Genre)
	default:
		return fmt.Sprintf("Recommended based on your interest in %s movies", m.Genre)
	}
}

func movieResponse(m domain.Movie) *moviepb.MovieResponse {
	return &moviepb.MovieResponse{
		MovieID:     m.ID,
		Title:       m.Title,
		Description: m.Description,
		Rating:      m.Rating,
		Genre:       m.Genre,
		Year:        m.Year,
		Director:    m.Director,
	}
}
