// Command server runs the movie catalog and user profile gRPC services,
// alongside a small HTTP ops listener exposing health and metrics.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/rajkundalia/movie-grpc-sample/internal/config"
	"github.com/rajkundalia/movie-grpc-sample/internal/observability"
	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/interceptor"
	_ "github.com/rajkundalia/movie-grpc-sample/internal/rpc/jsoncodec"
	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/moviepb"
	"github.com/rajkundalia/movie-grpc-sample/internal/rpc/userpb"
	"github.com/rajkundalia/movie-grpc-sample/internal/services"
	"github.com/rajkundalia/movie-grpc-sample/internal/store"
	"github.com/rajkundalia/movie-grpc-sample/internal/sysutil"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := otelShutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	catalogStore := store.NewCatalogStore()
	store.SeedCatalog(catalogStore)
	profileStore := store.NewProfileStore()
	store.SeedProfiles(profileStore)

	catalogSvc := services.NewCatalogService(catalogStore, cfg.TrendingStreamDelay)
	profileSvc := services.NewProfileService(profileStore)

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "insight_subscribers",
			Help: "Number of active user insight stream subscriptions.",
		},
		func() float64 { return float64(profileSvc.Registry.Total()) },
	))

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptor.UnaryRecovery(),
			interceptor.UnaryMetrics(),
			interceptor.UnaryLogging(),
		),
		grpc.ChainStreamInterceptor(
			interceptor.StreamRecovery(),
			interceptor.StreamMetrics(),
			interceptor.StreamLogging(),
		),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	moviepb.RegisterMovieServiceServer(grpcSrv, catalogSvc)
	userpb.RegisterUserServiceServer(grpcSrv, profileSvc)

	opsSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           opsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			return err
		}
		log.Info().Str("port", cfg.GRPCPort).Msg("grpc server listening")
		return grpcSrv.Serve(lis)
	})

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTPPort).Msg("ops server listening")
		if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := opsSrv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("ops server shutdown failed")
		}

		done := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(cfg.ShutdownTimeout):
			log.Warn().Msg("graceful stop timed out, forcing stop")
			grpcSrv.Stop()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

func opsRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
