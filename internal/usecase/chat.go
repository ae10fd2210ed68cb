package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"lifecompass/internal/dispatch"
	"lifecompass/internal/domain"
	"lifecompass/internal/intent"
	"lifecompass/internal/metrics"
)

const defaultMaxMessage = 2000

// Reply sources.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
	SourceCanned   = "canned"
)

// NotConfiguredMessage is shown to the user when no API key is set and the
// offline fallback is off.
const NotConfiguredMessage = "The AI advisor is not configured. Set OPENROUTER_API_KEY (or PARAM_PREFIX for Parameter Store) and try again."

type Generator interface {
	Generate(ctx context.Context, req dispatch.Request) (dispatch.Response, error)
}

type CannedResponder interface {
	Reply(message string, profile *domain.StudentProfile) string
}

type ChatConfig struct {
	MaxMessageLength int
	// OfflineFallback answers from canned text when the model API is not
	// configured.
	OfflineFallback bool
	Logger          *zap.Logger
	Metrics         *metrics.Collectors
}

type ChatService struct {
	gen     Generator
	canned  CannedResponder
	maxLen  int
	offline bool
	log     *zap.Logger
	metrics *metrics.Collectors
}

type ChatInput struct {
	Message string
	Profile *domain.StudentProfile
	History []domain.Turn
}

type ChatOutput struct {
	Reply   string
	Intent  intent.Intent
	Tier    string
	Model   string
	Tokens  int
	Elapsed time.Duration
	Source  string
}

func NewChatService(gen Generator, canned CannedResponder, cfg ChatConfig) (*ChatService, error) {
	if gen == nil {
		return nil, errors.New("usecase: generator must not be nil")
	}
	if canned == nil {
		return nil, errors.New("usecase: canned responder must not be nil")
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = defaultMaxMessage
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &ChatService{
		gen:     gen,
		canned:  canned,
		maxLen:  cfg.MaxMessageLength,
		offline: cfg.OfflineFallback,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}, nil
}

func (s *ChatService) Reply(ctx context.Context, in ChatInput) (ChatOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return ChatOutput{}, newError(ErrorInvalidInput, "empty_message", nil)
	}
	if utf8.RuneCountInString(message) > s.maxLen {
		return ChatOutput{}, newError(ErrorInvalidInput, "message_too_long", nil)
	}

	kind := intent.Classify(message)
	s.metrics.Classified(kind.String())

	resp, err := s.gen.Generate(ctx, dispatch.Request{
		Message: message,
		Intent:  kind,
		Profile: in.Profile,
		History: in.History,
	})
	if err != nil {
		var derr *dispatch.Error
		if !errors.As(err, &derr) {
			return ChatOutput{}, newError(ErrorInternal, "dispatch_error", err)
		}
		switch derr.Code {
		case dispatch.ErrorNotConfigured:
			if !s.offline {
				return ChatOutput{}, newError(ErrorNotConfigured, "api_key_missing", err)
			}
			s.log.Info("model api not configured, answering from canned responses", zap.String("intent", kind.String()))
			return ChatOutput{
				Reply:  s.canned.Reply(message, in.Profile),
				Intent: kind,
				Tier:   dispatch.TierFallback,
				Model:  SourceCanned,
				Source: SourceCanned,
			}, nil
		case dispatch.ErrorCanceled:
			return ChatOutput{}, newError(ErrorCanceled, "request_canceled", err)
		case dispatch.ErrorInvalidRequest:
			return ChatOutput{}, newError(ErrorInvalidInput, "invalid_request", err)
		default:
			return ChatOutput{}, newError(ErrorInternal, "dispatch_error", err)
		}
	}

	source := SourceModel
	if resp.Tier == dispatch.TierFallback {
		source = SourceFallback
	}
	return ChatOutput{
		Reply:   resp.Content,
		Intent:  kind,
		Tier:    resp.Tier,
		Model:   resp.Model,
		Tokens:  resp.Tokens,
		Elapsed: resp.Elapsed,
		Source:  source,
	}, nil
}
