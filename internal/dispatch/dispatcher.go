// Package dispatch routes chat messages to one of three remote model tiers,
// enforcing a per-tier request budget and walking a fallback chain before
// degrading to a static apology.
package dispatch

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"lifecompass/internal/budget"
	"lifecompass/internal/domain"
	"lifecompass/internal/intent"
	"lifecompass/internal/logging"
	"lifecompass/internal/metrics"
)

// LLM is the remote completion API. *openrouter.Client satisfies it.
type LLM interface {
	Configured(ctx context.Context) error
	Complete(ctx context.Context, in domain.CompletionRequest) (domain.Completion, error)
}

type Request struct {
	Message string
	Intent  intent.Intent
	Profile *domain.StudentProfile
	History []domain.Turn
}

type Response struct {
	Content string
	// Tier is the tier that answered, or TierFallback.
	Tier    string
	Model   string
	Tokens  int
	Elapsed time.Duration
}

// Dispatcher is safe for concurrent use when its budget store is.
type Dispatcher struct {
	llm       LLM
	budget    budget.Store
	tiers     Tiers
	now       func() time.Time
	log       *zap.Logger
	metrics   *metrics.Collectors
	switching bool
}

type Option func(*Dispatcher)

func WithTiers(t Tiers) Option {
	return func(d *Dispatcher) {
		d.tiers = t
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

func WithMetrics(m *metrics.Collectors) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithModelSwitching toggles intent-based tier selection. When off every
// message starts on the conversational tier.
func WithModelSwitching(enabled bool) Option {
	return func(d *Dispatcher) {
		d.switching = enabled
	}
}

// New builds a Dispatcher. A nil store gets a fresh in-process budget.
func New(llm LLM, store budget.Store, opts ...Option) (*Dispatcher, error) {
	if llm == nil {
		return nil, errors.New("dispatch: llm client must not be nil")
	}
	d := &Dispatcher{
		llm:       llm,
		budget:    store,
		tiers:     DefaultTiers(),
		now:       time.Now,
		log:       zap.NewNop(),
		switching: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.tiers.Validate(); err != nil {
		return nil, err
	}
	if d.budget == nil {
		d.budget = budget.NewMemory(budget.WithClock(d.now))
	}
	return d, nil
}

// SelectTier returns the primary tier for a message.
func (d *Dispatcher) SelectTier(in intent.Intent, message string) Tier {
	if !d.switching {
		return Conversational
	}
	return SelectTier(in, messageLength(message))
}

// Generate answers req from the first tier that is within budget and
// succeeds. When every tier is exhausted or fails it returns the static
// apology tagged TierFallback and a nil error. The only errors are a missing
// API key, an empty message, and cancellation of ctx.
func (d *Dispatcher) Generate(ctx context.Context, req Request) (Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Response{}, newError(ErrorInvalidRequest, "empty_message", nil)
	}
	if err := d.llm.Configured(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Response{}, newError(ErrorCanceled, "context_done", ctxErr)
		}
		return Response{}, newError(ErrorNotConfigured, "api_key_missing", err)
	}

	primary := d.SelectTier(req.Intent, message)
	candidates := append([]Tier{primary}, d.tiers.FallbackOrder(primary)...)

	for _, tier := range candidates {
		if err := ctx.Err(); err != nil {
			return Response{}, newError(ErrorCanceled, "context_done", err)
		}
		spec := d.tiers[tier]
		log := d.log.With(zap.String("tier", string(tier)), zap.String("model", logging.Sanitize(spec.Model)))

		allowed, err := d.budget.Allow(ctx, string(tier), spec.RequestsPerMinute)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Response{}, newError(ErrorCanceled, "context_done", ctxErr)
			}
			// Shared budget backend unavailable: attempt the call anyway.
			log.Warn("budget check failed", zap.String("error", logging.Sanitize(err.Error())))
			allowed = true
		}
		if !allowed {
			log.Debug("tier rate limited, trying next")
			d.metrics.Attempt(string(tier), metrics.OutcomeRateLimited)
			continue
		}

		resp, err := d.call(ctx, tier, spec, req.Profile, req.History, message)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Response{}, newError(ErrorCanceled, "context_done", ctxErr)
			}
			log.Debug("tier failed, trying next", zap.String("error", logging.Sanitize(err.Error())))
			d.metrics.Attempt(string(tier), metrics.OutcomeError)
			continue
		}

		d.metrics.Attempt(string(tier), metrics.OutcomeSuccess)
		log.Debug("tier answered", zap.Int("tokens", resp.Tokens), zap.Duration("elapsed", resp.Elapsed))
		return resp, nil
	}

	d.log.Warn("all tiers unavailable, returning fallback", zap.String("intent", req.Intent.String()))
	d.metrics.Fallback(req.Intent.String())
	return Response{
		Content: Apology(req.Intent),
		Tier:    TierFallback,
		Model:   TierFallback,
	}, nil
}

func (d *Dispatcher) call(ctx context.Context, tier Tier, spec TierSpec, profile *domain.StudentProfile, history []domain.Turn, message string) (Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, spec.Timeout)
	defer cancel()

	start := d.now()
	out, err := d.llm.Complete(callCtx, domain.CompletionRequest{
		Model:            spec.Model,
		Messages:         buildMessages(spec.Persona, profile, history, message),
		Temperature:      spec.Temperature,
		MaxTokens:        spec.MaxTokens,
		TopP:             topP,
		FrequencyPenalty: frequencyPenalty,
		PresencePenalty:  presencePenalty,
	})
	elapsed := d.now().Sub(start)
	d.metrics.ObserveCall(string(tier), elapsed)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Content: out.Content,
		Tier:    string(tier),
		Model:   out.Model,
		Tokens:  out.TotalTokens,
		Elapsed: elapsed,
	}, nil
}
