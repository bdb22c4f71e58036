package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/lumendao/treasury-backend/internal/auth"
	"github.com/lumendao/treasury-backend/internal/clock"
	"github.com/lumendao/treasury-backend/internal/events"
	"github.com/lumendao/treasury-backend/internal/metrics"
	"github.com/lumendao/treasury-backend/internal/repository/clickhouse"
	"github.com/lumendao/treasury-backend/internal/service"
	"github.com/lumendao/treasury-backend/internal/token"
	"github.com/lumendao/treasury-backend/internal/transport"
)

var config struct {
	Addr               string        `long:"addr" env:"API_GATEWAY_ADDR" description:"listen addr" default:":8000"`
	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"clickhouse dsn" default:"clickhouse://default:@localhost:9000/default"`
	AuthSecret         string        `long:"auth-secret" env:"API_GATEWAY_AUTH_SECRET" description:"hmac credential secret" required:"true"`
	EventFlushSize     int           `long:"event-flush-size" env:"API_GATEWAY_EVENT_FLUSH_SIZE" description:"event batch size" default:"100"`
	EventFlushInterval time.Duration `long:"event-flush-interval" env:"API_GATEWAY_EVENT_FLUSH_INTERVAL" description:"event flush interval" default:"1s"`
	EventFlushRPS      int           `long:"event-flush-rps" env:"API_GATEWAY_EVENT_FLUSH_RPS" description:"event flush rate limit" default:"10"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Connect to clickhouse", zap.Error(err))
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("Close clickhouse connection", zap.Error(closeErr))
		}
	}()

	clk := clock.System{}
	authorizer := auth.NewHMAC([]byte(config.AuthSecret), clk)
	ledger := token.NewLedger(repo, clk)

	emitter := events.NewEmitter(logger, repo, events.Config{
		FlushSize:     config.EventFlushSize,
		FlushInterval: config.EventFlushInterval,
		RPS:           config.EventFlushRPS,
	})
	emitter.Start(ctx)
	defer emitter.Stop()

	streams, err := service.NewStreamService(ctx, repo, authorizer, ledger, emitter, clk, logger)
	if err != nil {
		logger.Fatal("Build stream service", zap.Error(err))
	}
	vesting, err := service.NewVestingService(ctx, repo, authorizer, ledger, emitter, clk, logger)
	if err != nil {
		logger.Fatal("Build vesting service", zap.Error(err))
	}
	treasury, err := service.NewTreasuryService(ctx, repo, authorizer, ledger, emitter, clk, logger)
	if err != nil {
		logger.Fatal("Build treasury service", zap.Error(err))
	}
	governance, err := service.NewGovernanceService(ctx, repo, authorizer, ledger, emitter, clk, logger)
	if err != nil {
		logger.Fatal("Build governance service", zap.Error(err))
	}

	router := transport.Router(logger, metrics.NewAPI(), streams, vesting, treasury, governance)

	mux := http.NewServeMux()
	mux.Handle("/", router)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
