package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"lifecompass/handler"
	"lifecompass/internal/budget"
	"lifecompass/internal/canned"
	"lifecompass/internal/config"
	"lifecompass/internal/dispatch"
	"lifecompass/internal/integrations/openrouter"
	"lifecompass/internal/integrations/paramstore"
	"lifecompass/internal/logging"
	"lifecompass/internal/metrics"
	"lifecompass/internal/usecase"
)

const (
	tokenParam    = "openrouter-token"
	tokenCacheTTL = 5 * time.Minute
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires and starts the service. Errors are returned rather than exiting
// so deferred cleanup (logger sync, budget store close) always runs.
func run(ctx context.Context) error {
	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// ---- AWS SDK config, only when an AWS-backed component is enabled ----
	var awsCfg *aws.Config
	if cfg.UseParamStore() || cfg.Budget.Backend == config.BackendDynamoDB {
		loaded, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("load AWS config: %w", err)
		}
		awsCfg = &loaded
	}

	// ---- Clients ----
	llm, err := newOpenRouterClient(cfg, awsCfg)
	if err != nil {
		return fmt.Errorf("create OpenRouter client: %w", err)
	}
	if err := llm.Configured(ctx); err != nil {
		log.Warn("OpenRouter API key not configured; chat will use canned replies or return 503", zap.Error(err))
	}

	store, closeStore, err := newBudgetStore(ctx, cfg, awsCfg)
	if err != nil {
		return fmt.Errorf("create %s budget store: %w", cfg.Budget.Backend, err)
	}
	defer closeStore()

	dispatcher, err := dispatch.New(llm, store,
		dispatch.WithTiers(tiersFromConfig(cfg)),
		dispatch.WithLogger(log.Named("dispatch")),
		dispatch.WithMetrics(m),
		dispatch.WithModelSwitching(cfg.EnableModelSwitching),
	)
	if err != nil {
		return fmt.Errorf("create dispatcher: %w", err)
	}

	// ---- Handler ----
	chatService, err := usecase.NewChatService(dispatcher, canned.NewResponder(), usecase.ChatConfig{
		MaxMessageLength: cfg.MaxMessageLength,
		OfflineFallback:  cfg.OfflineFallback,
		Logger:           log.Named("chat"),
		Metrics:          m,
	})
	if err != nil {
		return fmt.Errorf("create chat service: %w", err)
	}

	h, err := handler.NewHandler(chatService, usecase.NewAdviceService(),
		handler.WithAllowedOrigin(cfg.AppURL),
		handler.WithLogger(log.Named("http")),
	)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		log.Info("starting lambda runtime", zap.String("budget_backend", cfg.Budget.Backend))
		lambda.Start(h.Handle)
		return nil
	}

	if err := serve(cfg.HTTPAddr, h, reg, log); err != nil {
		log.Error("http server failed", zap.Error(err))
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func newOpenRouterClient(cfg *config.Config, awsCfg *aws.Config) (*openrouter.Client, error) {
	opts := []openrouter.Option{
		openrouter.WithBaseURL(cfg.OpenRouter.BaseURL),
		openrouter.WithAPIKey(cfg.OpenRouter.APIKey),
		openrouter.WithAppIdentity(cfg.AppName, cfg.AppURL),
	}
	if cfg.UseParamStore() {
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(*awsCfg),
			paramstore.WithPrefix(cfg.ParamPrefix),
			paramstore.WithCacheTTL(tokenCacheTTL),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, openrouter.WithParamStore(ssmClient, tokenParam))
	}
	return openrouter.NewClient(opts...)
}

func newBudgetStore(ctx context.Context, cfg *config.Config, awsCfg *aws.Config) (budget.Store, func(), error) {
	noop := func() {}
	switch cfg.Budget.Backend {
	case config.BackendRedis:
		store, client, err := budget.NewRedisFromURL(ctx, cfg.Budget.RedisURL, cfg.Budget.Namespace)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = client.Close() }, nil
	case config.BackendDynamoDB:
		store, err := budget.NewDynamoDB(awsdynamodb.NewFromConfig(*awsCfg), cfg.Budget.Table, cfg.Budget.Namespace)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	default:
		return budget.NewMemory(), noop, nil
	}
}

func tiersFromConfig(cfg *config.Config) dispatch.Tiers {
	tiers := dispatch.DefaultTiers()
	structuredTimeout, conversationalTimeout, quickTimeout := cfg.Tiers.Timeouts()

	set := func(t dispatch.Tier, model string, limit int, timeout time.Duration) {
		spec := tiers[t]
		spec.Model = model
		spec.RequestsPerMinute = limit
		spec.Timeout = timeout
		tiers[t] = spec
	}
	set(dispatch.Structured, cfg.Tiers.StructuredModel, cfg.Tiers.StructuredRateLimit, structuredTimeout)
	set(dispatch.Conversational, cfg.Tiers.ConversationalModel, cfg.Tiers.ConversationalRateLimit, conversationalTimeout)
	set(dispatch.Quick, cfg.Tiers.QuickModel, cfg.Tiers.QuickRateLimit, quickTimeout)
	return tiers
}

func serve(addr string, h http.Handler, reg *prometheus.Registry, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/", h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
