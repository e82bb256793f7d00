// Package interceptor – Prometheus instrumentation
//
// Labels stay low-cardinality: the full method name is bounded by the service
// surface and the status code by the gRPC code set.
package interceptor

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	// rpcReqs counts completed RPCs by method and status code.
	rpcReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpc_requests_total",
			Help: "Total number of completed RPCs.",
		},
		[]string{"method", "code"},
	)

	// rpcLat records RPC duration in seconds by method. Streaming calls
	// measure the whole stream lifetime, so buckets stretch well past
	// typical unary latency.
	rpcLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rpc_request_duration_seconds",
			Help:    "Duration of RPCs in seconds; streams measure the full stream lifetime.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method"},
	)

	// rpcInflight gauges the number of currently executing RPCs.
	rpcInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rpc_requests_inflight",
			Help: "Current number of in-flight RPCs.",
		},
	)
)

func init() {
	prometheus.MustRegister(rpcReqs, rpcLat, rpcInflight)
}

// UnaryMetrics instruments unary calls with request counts, latency, and
// in-flight tracking.
func UnaryMetrics() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		rpcInflight.Inc()
		defer rpcInflight.Dec()

		resp, err := handler(ctx, req)

		rpcReqs.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		rpcLat.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// StreamMetrics is the streaming counterpart of UnaryMetrics.
func StreamMetrics() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		rpcInflight.Inc()
		defer rpcInflight.Dec()

		err := handler(srv, ss)

		rpcReqs.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		rpcLat.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return err
	}
}
