package services

// Fake stream implementations for exercising the RPC state machines without a
// gRPC transport. Each fake serves scripted inbound messages and records what
// the service sends.

import (
	"context"
	"io"

	"google.golang.org/grpc/metadata"

	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/moviepb"
	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/userpb"
)

// fakeServerStream satisfies grpc.ServerStream with no-ops plus a settable
// context.
type fakeServerStream struct {
	ctx context.Context
}

func (f *fakeServerStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeServerStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeServerStream) SetTrailer(metadata.MD)       {}
func (f *fakeServerStream) Context() context.Context {
	if f.ctx != nil {
		return f.ctx
	}
	return context.Background()
}
func (f *fakeServerStream) SendMsg(any) error { return nil }
func (f *fakeServerStream) RecvMsg(any) error { return nil }

// fakeTrendingStream records trending responses.
type fakeTrendingStream struct {
	fakeServerStream
	sent []*moviepb.MovieResponse
}

func (f *fakeTrendingStream) Send(m *moviepb.MovieResponse) error {
	f.sent = append(f.sent, m)
	return nil
}

// fakeRatingStream serves scripted rating updates, then finishErr (io.EOF by
// default), and records the terminal response.
type fakeRatingStream struct {
	fakeServerStream
	inbound   []*moviepb.UpdateRatingRequest
	finishErr error
	closed    *moviepb.UpdateRatingBatchResponse
}

func (f *fakeRatingStream) Recv() (*moviepb.UpdateRatingRequest, error) {
	if len(f.inbound) == 0 {
		if f.finishErr != nil {
			return nil, f.finishErr
		}
		return nil, io.EOF
	}
	m := f.inbound[0]
	f.inbound = f.inbound[1:]
	return m, nil
}

func (f *fakeRatingStream) SendAndClose(m *moviepb.UpdateRatingBatchResponse) error {
	f.closed = m
	return nil
}

// fakeRecommendationStream serves scripted user events and records
// recommendations.
type fakeRecommendationStream struct {
	fakeServerStream
	inbound   []*moviepb.UserEventRequest
	finishErr error
	sent      []*moviepb.MovieRecommendation
}

func (f *fakeRecommendationStream) Recv() (*moviepb.UserEventRequest, error) {
	if len(f.inbound) == 0 {
		if f.finishErr != nil {
			return nil, f.finishErr
		}
		return nil, io.EOF
	}
	m := f.inbound[0]
	f.inbound = f.inbound[1:]
	return m, nil
}

func (f *fakeRecommendationStream) Send(m *moviepb.MovieRecommendation) error {
	f.sent = append(f.sent, m)
	return nil
}

// fakeHistoryStream records activity responses.
type fakeHistoryStream struct {
	fakeServerStream
	sent []*userpb.UserActivityResponse
}

func (f *fakeHistoryStream) Send(m *userpb.UserActivityResponse) error {
	f.sent = append(f.sent, m)
	return nil
}

// fakePreferenceStream serves scripted preference updates and records the
// terminal response.
type fakePreferenceStream struct {
	fakeServerStream
	inbound   []*userpb.UserPreferenceRequest
	finishErr error
	closed    *userpb.UpdatePreferencesResponse
}

func (f *fakePreferenceStream) Recv() (*userpb.UserPreferenceRequest, error) {
	if len(f.inbound) == 0 {
		if f.finishErr != nil {
			return nil, f.finishErr
		}
		return nil, io.EOF
	}
	m := f.inbound[0]
	f.inbound = f.inbound[1:]
	return m, nil
}

func (f *fakePreferenceStream) SendAndClose(m *userpb.UpdatePreferencesResponse) error {
	f.closed = m
	return nil
}

// fakeTrackingStream serves scripted activity events and records insights.
type fakeTrackingStream struct {
	fakeServerStream
	inbound   []*userpb.UserActivityEvent
	finishErr error
	sent      []*userpb.UserInsightResponse
	sendErr   error
}

func (f *fakeTrackingStream) Recv() (*userpb.UserActivityEvent, error) {
	if len(f.inbound) == 0 {
		if f.finishErr != nil {
			return nil, f.finishErr
		}
		return nil, io.EOF
	}
	m := f.inbound[0]
	f.inbound = f.inbound[1:]
	return m, nil
}

func (f *fakeTrackingStream) Send(m *userpb.UserInsightResponse) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, m)
	return nil
}
