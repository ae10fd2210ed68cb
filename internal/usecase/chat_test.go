package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"lifecompass/internal/dispatch"
	"lifecompass/internal/domain"
	"lifecompass/internal/intent"
	"lifecompass/internal/metrics"
)

type stubGenerator struct {
	resp  dispatch.Response
	err   error
	got   dispatch.Request
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, req dispatch.Request) (dispatch.Response, error) {
	s.got = req
	s.calls++
	return s.resp, s.err
}

type stubCanned struct {
	message string
	profile *domain.StudentProfile
}

func (s *stubCanned) Reply(message string, profile *domain.StudentProfile) string {
	s.message = message
	s.profile = profile
	return "canned: " + message
}

func newChat(t *testing.T, gen Generator, cfg ChatConfig) (*ChatService, *stubCanned) {
	t.Helper()
	c := &stubCanned{}
	cfg.Logger = zaptest.NewLogger(t)
	svc, err := NewChatService(gen, c, cfg)
	require.NoError(t, err)
	return svc, c
}

func requireCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, code, uerr.Code)
}

func TestNewChatService_ValidatesDependencies(t *testing.T) {
	_, err := NewChatService(nil, &stubCanned{}, ChatConfig{})
	require.Error(t, err)
	_, err = NewChatService(&stubGenerator{}, nil, ChatConfig{})
	require.Error(t, err)
}

func TestReply_HappyPath(t *testing.T) {
	gen := &stubGenerator{resp: dispatch.Response{
		Content: "Try data science.", Tier: "structured", Model: "deepseek/deepseek-r1", Tokens: 88, Elapsed: 1200 * time.Millisecond,
	}}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc, _ := newChat(t, gen, ChatConfig{Metrics: m})

	profile := &domain.StudentProfile{Age: 18}
	history := []domain.Turn{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}}
	out, err := svc.Reply(context.Background(), ChatInput{
		Message: "  Which career path suits me?  ",
		Profile: profile,
		History: history,
	})
	require.NoError(t, err)
	require.Equal(t, ChatOutput{
		Reply:   "Try data science.",
		Intent:  intent.CareerGuidance,
		Tier:    "structured",
		Model:   "deepseek/deepseek-r1",
		Tokens:  88,
		Elapsed: 1200 * time.Millisecond,
		Source:  SourceModel,
	}, out)

	require.Equal(t, "Which career path suits me?", gen.got.Message)
	require.Equal(t, intent.CareerGuidance, gen.got.Intent)
	require.Same(t, profile, gen.got.Profile)
	require.Equal(t, history, gen.got.History)
	require.Equal(t, 1.0, testutil.ToFloat64(m.IntentsClassified.WithLabelValues("career_guidance")))
}

func TestReply_FallbackSource(t *testing.T) {
	gen := &stubGenerator{resp: dispatch.Response{Content: "sorry", Tier: dispatch.TierFallback, Model: dispatch.TierFallback}}
	svc, _ := newChat(t, gen, ChatConfig{})

	out, err := svc.Reply(context.Background(), ChatInput{Message: "hey"})
	require.NoError(t, err)
	require.Equal(t, SourceFallback, out.Source)
	require.Equal(t, "sorry", out.Reply)
}

func TestReply_InputValidation(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newChat(t, gen, ChatConfig{MaxMessageLength: 10})

	_, err := svc.Reply(context.Background(), ChatInput{Message: "   "})
	requireCode(t, err, ErrorInvalidInput)

	_, err = svc.Reply(context.Background(), ChatInput{Message: strings.Repeat("a", 11)})
	requireCode(t, err, ErrorInvalidInput)

	_, err = svc.Reply(context.Background(), ChatInput{Message: strings.Repeat("é", 10)})
	require.NoError(t, err, "length counts runes")
	require.Equal(t, 1, gen.calls)
}

func TestReply_NotConfigured(t *testing.T) {
	notConfigured := &dispatch.Error{Code: dispatch.ErrorNotConfigured, Reason: "api_key_missing"}

	t.Run("offline fallback on", func(t *testing.T) {
		svc, c := newChat(t, &stubGenerator{err: notConfigured}, ChatConfig{OfflineFallback: true})
		profile := &domain.StudentProfile{Age: 16}

		out, err := svc.Reply(context.Background(), ChatInput{Message: "salary of a designer?", Profile: profile})
		require.NoError(t, err)
		require.Equal(t, SourceCanned, out.Source)
		require.Equal(t, "canned: salary of a designer?", out.Reply)
		require.Equal(t, dispatch.TierFallback, out.Tier)
		require.Same(t, profile, c.profile)
	})

	t.Run("offline fallback off", func(t *testing.T) {
		svc, c := newChat(t, &stubGenerator{err: notConfigured}, ChatConfig{})

		_, err := svc.Reply(context.Background(), ChatInput{Message: "salary?"})
		requireCode(t, err, ErrorNotConfigured)
		require.Empty(t, c.message)
	})
}

func TestReply_MapsDispatchErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"canceled", &dispatch.Error{Code: dispatch.ErrorCanceled, Err: context.Canceled}, ErrorCanceled},
		{"invalid", &dispatch.Error{Code: dispatch.ErrorInvalidRequest}, ErrorInvalidInput},
		{"unknown code", &dispatch.Error{Code: "SOMETHING"}, ErrorInternal},
		{"plain error", errors.New("boom"), ErrorInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newChat(t, &stubGenerator{err: tc.err}, ChatConfig{OfflineFallback: true})
			_, err := svc.Reply(context.Background(), ChatInput{Message: "hello"})
			requireCode(t, err, tc.want)
		})
	}
}
