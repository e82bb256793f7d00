package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rajkundalia/movie-grpc-sample/internal/domain"
	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/userpb"
	"github.com/rajkundalia/movie-grpc-sample/internal/store"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	st := store.NewProfileStore()
	store.SeedProfiles(st)
	return NewProfileService(st)
}

func TestProfile_GetUserProfile_Found(t *testing.T) {
	svc := newProfileService(t)

	resp, err := svc.GetUserProfile(context.Background(), &userpb.UserRequest{UserID: 2})
	if err != nil {
		t.Fatalf("GetUserProfile: %v", err)
	}
	if resp.Username != "jane_smith" || resp.ActivityLevel != 5 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.FavoriteGenres) != 2 || resp.FavoriteGenres[0] != "Drama" {
		t.Fatalf("unexpected favorite genres: %v", resp.FavoriteGenres)
	}
}

func TestProfile_GetUserProfile_NotFound(t *testing.T) {
	svc := newProfileService(t)

	_, err := svc.GetUserProfile(context.Background(), &userpb.UserRequest{UserID: 42})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", status.Code(err))
	}
}

func TestProfile_GetUserActivityHistory(t *testing.T) {
	svc := newProfileService(t)

	stream := &fakeHistoryStream{}
	req := &userpb.UserHistoryRequest{UserID: 1, Limit: 10, SinceTimestamp: 0}
	if err := svc.GetUserActivityHistory(req, stream); err != nil {
		t.Fatalf("GetUserActivityHistory: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("sent %d messages, want 2 seeded activities", len(stream.sent))
	}
	// Newest first: the RATE on movie 3 is more recent than the WATCH on 1.
	if stream.sent[0].ActivityType != "RATE" || stream.sent[0].MovieID != 3 {
		t.Fatalf("unexpected first entry: %+v", stream.sent[0])
	}
}

func TestProfile_GetUserActivityHistory_UnknownUserEmptyStream(t *testing.T) {
	svc := newProfileService(t)

	stream := &fakeHistoryStream{}
	if err := svc.GetUserActivityHistory(&userpb.UserHistoryRequest{UserID: 77, Limit: 10}, stream); err != nil {
		t.Fatalf("expected empty stream, got error %v", err)
	}
	if len(stream.sent) != 0 {
		t.Fatalf("sent %d messages, want 0", len(stream.sent))
	}
}

func TestProfile_UpdateUserPreferences_Batch(t *testing.T) {
	svc := newProfileService(t)

	stream := &fakePreferenceStream{inbound: []*userpb.UserPreferenceRequest{
		{UserID: 3, PreferenceKey: "genre", PreferenceValue: "Action", Weight: 0.8},
		{UserID: 3, PreferenceKey: "genre", PreferenceValue: "Comedy", Weight: 0.6},
		{UserID: 3, PreferenceKey: "director", PreferenceValue: "Quentin Tarantino", Weight: 0.7},
	}}
	if err := svc.UpdateUserPreferences(stream); err != nil {
		t.Fatalf("UpdateUserPreferences: %v", err)
	}
	resp := stream.closed
	if resp == nil {
		t.Fatalf("no terminal response sent")
	}
	if resp.UpdatedCount != 3 || !resp.Success {
		t.Fatalf("terminal response = %+v, want 3 updates and success", resp)
	}
	want := []string{"genre:Action", "genre:Comedy", "director:Quentin Tarantino"}
	if len(resp.UpdatedPreferences) != len(want) {
		t.Fatalf("updated list = %v, want %v", resp.UpdatedPreferences, want)
	}
	for i := range want {
		if resp.UpdatedPreferences[i] != want[i] {
			t.Fatalf("updated[%d] = %q, want %q (submission order)", i, resp.UpdatedPreferences[i], want[i])
		}
	}
	if got := svc.Store.PreferencesForUser(3); len(got) != 3 {
		t.Fatalf("stored = %d preferences, want 3", len(got))
	}
}

func TestProfile_UpdateUserPreferences_FirstUserIDWins(t *testing.T) {
	svc := newProfileService(t)

	// Divergent user id in a later message is recorded under the first id.
	stream := &fakePreferenceStream{inbound: []*userpb.UserPreferenceRequest{
		{UserID: 3, PreferenceKey: "genre", PreferenceValue: "Action", Weight: 0.8},
		{UserID: 99, PreferenceKey: "genre", PreferenceValue: "Horror", Weight: 0.5},
	}}
	if err := svc.UpdateUserPreferences(stream); err != nil {
		t.Fatalf("UpdateUserPreferences: %v", err)
	}
	if got := svc.Store.PreferencesForUser(3); len(got) != 2 {
		t.Fatalf("user 3 has %d preferences, want 2", len(got))
	}
	if got := svc.Store.PreferencesForUser(99); len(got) != 0 {
		t.Fatalf("user 99 has %d preferences, want 0", len(got))
	}
}

func TestProfile_UpdateUserPreferences_InboundError(t *testing.T) {
	svc := newProfileService(t)

	boom := errors.New("inbound broke")
	stream := &fakePreferenceStream{
		inbound:   []*userpb.UserPreferenceRequest{{UserID: 3, PreferenceKey: "genre", PreferenceValue: "Action", Weight: 0.8}},
		finishErr: boom,
	}
	if err := svc.UpdateUserPreferences(stream); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want propagated inbound error", err)
	}
	if stream.closed != nil {
		t.Fatalf("terminal response sent despite inbound error")
	}
	// Nothing was applied; the batch only commits on clean completion.
	if got := svc.Store.PreferencesForUser(3); len(got) != 0 {
		t.Fatalf("user 3 has %d preferences after aborted batch, want 0", len(got))
	}
}

func TestProfile_TrackUserActivity_InsightPerEvent(t *testing.T) {
	svc := newProfileService(t)

	stream := &fakeTrackingStream{inbound: []*userpb.UserActivityEvent{
		{UserID: 1, EventType: "PLAY", EventData: `"movie 4"`, Timestamp: 1000},
		{UserID: 1, EventType: "RATE", EventData: `"movie 4"`, Timestamp: 2000},
		{UserID: 1, EventType: "CLICK", EventData: "ignored", Timestamp: 3000},
	}}
	if err := svc.TrackUserActivity(stream); err != nil {
		t.Fatalf("TrackUserActivity: %v", err)
	}
	if len(stream.sent) != 3 {
		t.Fatalf("sent %d insights, want 3", len(stream.sent))
	}

	play := stream.sent[0]
	if play.InsightType != "engagement" || play.ConfidenceScore != 0.8 {
		t.Fatalf("PLAY insight = %+v, want engagement/0.8", play)
	}
	if play.InsightData != `{"message": "User started watching content", "content": "movie 4"}` {
		t.Fatalf("PLAY insight data = %q", play.InsightData)
	}

	rateIns := stream.sent[1]
	if rateIns.InsightType != "preference_shift" || rateIns.ConfidenceScore != 0.85 {
		t.Fatalf("RATE insight = %+v, want preference_shift/0.85", rateIns)
	}

	click := stream.sent[2]
	if click.InsightType != "activity" || click.ConfidenceScore != 0.6 {
		t.Fatalf("CLICK insight = %+v, want activity/0.6", click)
	}
	if click.InsightData != `{"message": "User activity detected", "activity": "CLICK"}` {
		t.Fatalf("CLICK insight data = %q", click.InsightData)
	}
}

func TestProfile_TrackUserActivity_RegistryCleanupOnEOF(t *testing.T) {
	svc := newProfileService(t)

	stream := &fakeTrackingStream{inbound: []*userpb.UserActivityEvent{
		{UserID: 5, EventType: "PLAY", EventData: `"x"`},
	}}
	if err := svc.TrackUserActivity(stream); err != nil {
		t.Fatalf("TrackUserActivity: %v", err)
	}
	if n := svc.Registry.Count(5); n != 0 {
		t.Fatalf("registry count after clean completion = %d, want 0", n)
	}
	if n := svc.Registry.Total(); n != 0 {
		t.Fatalf("registry total = %d, want 0", n)
	}
}

func TestProfile_TrackUserActivity_RegistryCleanupOnError(t *testing.T) {
	svc := newProfileService(t)

	boom := errors.New("inbound broke")
	stream := &fakeTrackingStream{
		inbound:   []*userpb.UserActivityEvent{{UserID: 5, EventType: "PLAY", EventData: `"x"`}},
		finishErr: boom,
	}
	if err := svc.TrackUserActivity(stream); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want propagated inbound error", err)
	}
	if n := svc.Registry.Count(5); n != 0 {
		t.Fatalf("registry count after inbound error = %d, want 0", n)
	}
}

func TestProfile_TrackUserActivity_RegistryCleanupOnSendFailure(t *testing.T) {
	svc := newProfileService(t)

	sendErr := errors.New("outbound broke")
	stream := &fakeTrackingStream{
		inbound: []*userpb.UserActivityEvent{{UserID: 5, EventType: "PLAY", EventData: `"x"`}},
		sendErr: sendErr,
	}
	if err := svc.TrackUserActivity(stream); !errors.Is(err, sendErr) {
		t.Fatalf("err = %v, want propagated send error", err)
	}
	if n := svc.Registry.Count(5); n != 0 {
		t.Fatalf("registry count after send failure = %d, want 0", n)
	}
}

func TestProfile_TrackUserActivity_ConcurrentStreamsSameUser(t *testing.T) {
	svc := newProfileService(t)

	const streams = 8
	var wg sync.WaitGroup
	for i := 0; i < streams; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			stream := &fakeTrackingStream{inbound: []*userpb.UserActivityEvent{
				{UserID: 9, EventType: "FINISH", EventData: fmt.Sprintf(`"stream %d"`, n)},
			}}
			if err := svc.TrackUserActivity(stream); err != nil {
				t.Errorf("stream %d: %v", n, err)
			}
			if len(stream.sent) != 1 {
				t.Errorf("stream %d sent %d insights, want its own single insight", n, len(stream.sent))
			}
		}(i)
	}
	wg.Wait()

	if n := svc.Registry.Count(9); n != 0 {
		t.Fatalf("registry count after all streams closed = %d, want 0", n)
	}
}

func TestInsightForEvent_Mapping(t *testing.T) {
	cases := []struct {
		event      domain.EventType
		wantType   string
		wantScore  float64
		wantInData string
	}{
		{domain.EventPlay, "engagement", 0.8, `{"message": "User started watching content", "content": "d"}`},
		{domain.EventPause, "engagement", 0.7, `{"message": "User paused content", "content": "d"}`},
		{domain.EventFinish, "engagement", 0.9, `{"message": "User completed content", "content": "d"}`},
		{domain.EventRate, "preference_shift", 0.85, `{"message": "User rated content", "content": "d"}`},
		{domain.EventSearch, "interest", 0.75, `{"message": "User searched for content", "query": "d"}`},
		{domain.EventPageView, "activity", 0.6, `{"message": "User activity detected", "activity": "PAGE_VIEW"}`},
		{domain.EventClick, "activity", 0.6, `{"message": "User activity detected", "activity": "CLICK"}`},
	}
	for _, c := range cases {
		got := insightForEvent(domain.ActivityEvent{UserID: 1, Type: c.event, Data: `"d"`})
		if got.InsightType != c.wantType {
			t.Fatalf("%s: insight type = %q, want %q", c.event, got.InsightType, c.wantType)
		}
		if got.ConfidenceScore != c.wantScore {
			t.Fatalf("%s: confidence = %v, want %v", c.event, got.ConfidenceScore, c.wantScore)
		}
		if got.InsightData != c.wantInData {
			t.Fatalf("%s: insight data = %q, want %q", c.event, got.InsightData, c.wantInData)
		}
	}
}
