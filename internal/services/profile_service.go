// Package services – ProfileService
//
// This file implements the user registry RPCs: unary profile lookup, the
// activity-history stream, the batch preference update, and the duplex
// activity-tracking stream that feeds the subscriber registry. The tracking
// stream is the one place where a call leaves state behind while open; the
// deferred cleanup guarantees that state is released on every exit path.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rajkundalia/movie-grpc-sample/internal/domain"
	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/userpb"
	"github.com/rajkundalia/movie-grpc-sample/internal/store"
)

// ProfileService exposes the profile store over gRPC.
type ProfileService struct {
	// Store is the backing user registry.
	Store *store.ProfileStore
	// Registry tracks open insight streams per user.
	Registry *Registry
}

// NewProfileService constructs a ProfileService with a fresh subscriber
// registry.
func NewProfileService(st *store.ProfileStore) *ProfileService {
	return &ProfileService{Store: st, Registry: NewRegistry()}
}

// GetUserProfile returns the profile with the requested id, or NotFound.
func (s *ProfileService) GetUserProfile(ctx context.Context, req *userpb.UserRequest) (*userpb.UserProfileResponse, error) {
	u, ok := s.Store.GetByID(req.UserID)
	if !ok {
		log.Warn().Int64("user_id", req.UserID).Msg("user not found")
		return nil, status.Error(codes.NotFound, ErrUserNotFound.Error())
	}
	return &userpb.UserProfileResponse{
		UserID:         u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FavoriteGenres: u.FavoriteGenres,
		AccountAgeDays: u.AccountAgeDays,
		ActivityLevel:  u.ActivityLevel,
	}, nil
}

// GetUserActivityHistory streams the user's activity log, newest first.
// Unknown users yield an empty stream; there is no NotFound here.
func (s *ProfileService) GetUserActivityHistory(req *userpb.UserHistoryRequest, stream userpb.UserService_GetUserActivityHistoryServer) error {
	activities := s.Store.ActivityHistory(req.UserID, req.Limit, req.SinceTimestamp)
	for _, a := range activities {
		out := &userpb.UserActivityResponse{
			ActivityID:   a.ID,
			UserID:       a.UserID,
			MovieID:      a.MovieID,
			MovieTitle:   a.MovieTitle,
			ActivityType: string(a.Type),
			Timestamp:    a.Timestamp,
		}
		if err := stream.Send(out); err != nil {
			return err
		}
	}
	return nil
}

// preferenceBatch is the per-call state of one UpdateUserPreferences stream.
// The user id of the first message designates the target user; later messages
// are assumed to carry the same id and are not validated, so a divergent id
// is recorded under the first user. Known limitation, kept for wire
// compatibility.
type preferenceBatch struct {
	userID      int64
	haveUserID  bool
	preferences []domain.UserPreference
	applied     []string
}

// UpdateUserPreferences accumulates inbound preferences and applies them in
// one store call when the inbound stream completes. The terminal response
// lists the applied "key:value" pairs in submission order.
func (s *ProfileService) UpdateUserPreferences(stream userpb.UserService_UpdateUserPreferencesServer) error {
	var batch preferenceBatch
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			count := s.Store.BatchUpsertPreferences(batch.userID, batch.preferences)
			log.Info().Int64("user_id", batch.userID).Int("updated", count).Msg("completed batch preference update")
			return stream.SendAndClose(&userpb.UpdatePreferencesResponse{
				UpdatedCount:       count,
				Success:            count > 0,
				UpdatedPreferences: batch.applied,
			})
		}
		if err != nil {
			log.Error().Err(err).Msg("batch preference update aborted")
			return err
		}

		if !batch.haveUserID {
			batch.userID = req.UserID
			batch.haveUserID = true
		}
		batch.preferences = append(batch.preferences, domain.UserPreference{
			UserID: req.UserID,
			Key:    req.PreferenceKey,
			Value:  req.PreferenceValue,
			Weight: req.Weight,
		})
		batch.applied = append(batch.applied, req.PreferenceKey+":"+req.PreferenceValue)
	}
}

// trackingSession is the per-call state of one TrackUserActivity stream.
type trackingSession struct {
	sub *Subscription
}

// TrackUserActivity turns inbound activity events into insight messages on
// the same stream. The first event registers the stream in the subscriber
// registry under that event's user id; the deferred unregister runs on
// normal completion, inbound errors, and send failures alike, so a stream
// can never leak its registry entry.
func (s *ProfileService) TrackUserActivity(stream userpb.UserService_TrackUserActivityServer) error {
	var session trackingSession
	defer func() {
		if session.sub != nil {
			s.Registry.Unregister(session.sub)
			log.Info().Str("subscription_id", session.sub.ID).Int64("user_id", session.sub.UserID).Msg("tracking stream closed")
		}
	}()

	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("tracking stream aborted")
			return err
		}

		if session.sub == nil {
			session.sub = s.Registry.Register(ev.UserID, stream)
			log.Info().Str("subscription_id", session.sub.ID).Int64("user_id", ev.UserID).Msg("tracking stream registered")
		}

		event := domain.ActivityEvent{
			UserID:    ev.UserID,
			Type:      domain.ParseEventType(ev.EventType),
			Data:      ev.EventData,
			Timestamp: ev.Timestamp,
		}
		if err := stream.Send(insightForEvent(event)); err != nil {
			return err
		}
	}
}

// insightForEvent maps one activity event to its insight. The mapping is a
// fixed deterministic function: event kind selects the insight type, the
// confidence constant, and the textual framing of the data payload, which
// always embeds the original event payload verbatim.
func insightForEvent(ev domain.ActivityEvent) *userpb.UserInsightResponse {
	var (
		insightType string
		insightData string
		confidence  float64
	)
	switch ev.Type {
	case domain.EventPlay:
		insightType = "engagement"
		insightData = fmt.Sprintf(`{"message": "User started watching content", "content": %s}`, ev.Data)
		confidence = 0.8
	case domain.EventPause:
		insightType = "engagement"
		insightData = fmt.Sprintf(`{"message": "User paused content", "content": %s}`, ev.Data)
		confidence = 0.7
	case domain.EventFinish:
		insightType = "engagement"
		insightData = fmt.Sprintf(`{"message": "User completed content", "content": %s}`, ev.Data)
		confidence = 0.9
	case domain.EventRate:
		insightType = "preference_shift"
		insightData = fmt.Sprintf(`{"message": "User rated content", "content": %s}`, ev.Data)
		confidence = 0.85
	case domain.EventSearch:
		insightType = "interest"
		insightData = fmt.Sprintf(`{"message": "User searched for content", "query": %s}`, ev.Data)
		confidence = 0.75
	default: // PAGE_VIEW, CLICK
		insightType = "activity"
		insightData = fmt.Sprintf(`{"message": "User activity detected", "activity": "%s"}`, ev.Type)
		confidence = 0.6
	}
	return &userpb.UserInsightResponse{
		UserID:          ev.UserID,
		InsightType:     insightType,
		InsightData:     insightData,
		ConfidenceScore: confidence,
	}
}
