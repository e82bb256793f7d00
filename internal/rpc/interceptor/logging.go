// Package interceptor contains the shared gRPC server interceptors: access
// logging, panic recovery, and Prometheus instrumentation. They compose in
// any order, but the intended chain is Recovery first, then Metrics, then
// Logging, so panics are converted to Internal before being counted and
// logged.
package interceptor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryLogging emits one structured access log per unary call: a correlation
// id, the full method, the status code, and the latency. Level follows the
// outcome: error for server faults, warn for caller errors, info otherwise.
func UnaryLogging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		rid := uuid.NewString()

		resp, err := handler(ctx, req)

		code := status.Code(err)
		ev := log.With().
			Str("rpc_id", rid).
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("latency", time.Since(start)).
			Logger()
		logByCode(ev, code, err, "rpc")
		return resp, err
	}
}

// StreamLogging is the streaming counterpart of UnaryLogging. It additionally
// counts the messages exchanged in both directions.
func StreamLogging() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		rid := uuid.NewString()
		counted := &countingStream{ServerStream: ss}

		err := handler(srv, counted)

		code := status.Code(err)
		ev := log.With().
			Str("rpc_id", rid).
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("latency", time.Since(start)).
			Int64("msgs_in", counted.received).
			Int64("msgs_out", counted.sent).
			Logger()
		logByCode(ev, code, err, "stream")
		return err
	}
}

// countingStream counts successfully exchanged messages. Counters are only
// touched from the handler goroutine, matching gRPC's stream usage contract.
type countingStream struct {
	grpc.ServerStream
	sent     int64
	received int64
}

func (s *countingStream) SendMsg(m interface{}) error {
	if err := s.ServerStream.SendMsg(m); err != nil {
		return err
	}
	s.sent++
	return nil
}

func (s *countingStream) RecvMsg(m interface{}) error {
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	s.received++
	return nil
}

func logByCode(l zerolog.Logger, code codes.Code, err error, msg string) {
	switch {
	case code == codes.Internal || code == codes.Unknown || code == codes.DataLoss:
		l.Error().Err(err).Msg(msg)
	case code != codes.OK:
		l.Warn().Err(err).Msg(msg)
	default:
		l.Info().Msg(msg)
	}
}
