package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"lifecompass/internal/career"
	"lifecompass/internal/domain"
	"lifecompass/internal/intent"
	"lifecompass/internal/usecase"
)

type stubChat struct {
	out usecase.ChatOutput
	err error
	in  usecase.ChatInput
}

func (s *stubChat) Reply(_ context.Context, in usecase.ChatInput) (usecase.ChatOutput, error) {
	s.in = in
	return s.out, s.err
}

type stubAdvice struct {
	out     career.Bundle
	err     error
	profile domain.StudentProfile
	skill   string
}

func (s *stubAdvice) Advise(_ context.Context, p domain.StudentProfile) (career.Bundle, error) {
	s.profile = p
	return s.out, s.err
}

func (s *stubAdvice) Insights(_ context.Context, skill string) []domain.MarketInsight {
	s.skill = skill
	return []domain.MarketInsight{{Skill: "Data Science", Demand: "High"}}
}

func makeEvent(method, path, body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: method,
		Path:       path,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func parseBody[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func newTestHandler(t *testing.T, chat *stubChat, advice *stubAdvice) *Handler {
	t.Helper()
	h, err := NewHandler(chat, advice, WithAllowedOrigin("http://localhost:5173"))
	require.NoError(t, err)
	return h
}

func TestNewHandler_ValidatesDependencies(t *testing.T) {
	_, err := NewHandler(nil, &stubAdvice{})
	require.Error(t, err)
	_, err = NewHandler(&stubChat{}, nil)
	require.Error(t, err)
}

func TestHandle_Chat(t *testing.T) {
	chat := &stubChat{out: usecase.ChatOutput{
		Reply:   "hello",
		Intent:  intent.CasualChat,
		Tier:    "conversational",
		Model:   "deepseek/deepseek-v3",
		Tokens:  12,
		Elapsed: 1500 * time.Millisecond,
		Source:  usecase.SourceModel,
	}}
	h := newTestHandler(t, chat, &stubAdvice{})

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, "/chat",
		`{"message":"hi","profile":{"age":17,"interests":["Sports"]},"history":[{"role":"user","content":"a"},{"role":"bot","content":"b"}]}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, "hi", chat.in.Message)
	require.Equal(t, 17, chat.in.Profile.Age)
	require.Equal(t, []domain.Turn{{Role: "user", Content: "a"}, {Role: "bot", Content: "b"}}, chat.in.History)

	out := parseBody[chatResponse](t, resp.Body)
	require.Equal(t, chatResponse{
		Reply: "hello", Intent: "casual_chat", Tier: "conversational", Model: "deepseek/deepseek-v3",
		Tokens: 12, ElapsedMs: 1500, Source: "model",
	}, out)
	require.NotEmpty(t, resp.Headers["X-Correlation-Id"])
	require.Equal(t, "http://localhost:5173", resp.Headers["Access-Control-Allow-Origin"])
	require.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestHandle_ChatBase64Body(t *testing.T) {
	chat := &stubChat{}
	h := newTestHandler(t, chat, &stubAdvice{})

	event := makeEvent(http.MethodPost, "/chat/", base64.StdEncoding.EncodeToString([]byte(`{"message":"encoded"}`)))
	event.IsBase64Encoded = true
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "encoded", chat.in.Message)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := newTestHandler(t, &stubChat{}, &stubAdvice{})

	for _, path := range []string{"/chat", "/recommendations"} {
		resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, path, `not-json`))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		out := parseBody[errorResponse](t, resp.Body)
		require.Equal(t, string(usecase.ErrorInvalidInput), out.Error)
	}
}

func TestHandle_MapsUseCaseErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "invalid input", err: &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "empty_message"}, status: http.StatusBadRequest, code: string(usecase.ErrorInvalidInput)},
		{name: "not configured", err: &usecase.Error{Code: usecase.ErrorNotConfigured, Reason: "api_key_missing"}, status: http.StatusServiceUnavailable, code: string(usecase.ErrorNotConfigured)},
		{name: "canceled", err: &usecase.Error{Code: usecase.ErrorCanceled, Reason: "request_canceled"}, status: 499, code: string(usecase.ErrorCanceled)},
		{name: "internal", err: &usecase.Error{Code: usecase.ErrorInternal, Reason: "dispatch_error"}, status: http.StatusInternalServerError, code: string(usecase.ErrorInternal)},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: string(usecase.ErrorInternal)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(t, &stubChat{err: tc.err}, &stubAdvice{})

			resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, "/chat", `{"message":"What do you do?"}`))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)

			out := parseBody[errorResponse](t, resp.Body)
			require.Equal(t, tc.code, out.Error)
			require.NotEmpty(t, out.Message)
		})
	}
}

func TestHandle_NotConfiguredMessage(t *testing.T) {
	h := newTestHandler(t, &stubChat{err: &usecase.Error{Code: usecase.ErrorNotConfigured}}, &stubAdvice{})
	resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, "/chat", `{"message":"hi"}`))
	require.NoError(t, err)
	require.Equal(t, usecase.NotConfiguredMessage, parseBody[errorResponse](t, resp.Body).Message)
}

func TestHandle_Recommendations(t *testing.T) {
	advice := &stubAdvice{out: career.Bundle{
		CareerPaths: []domain.CareerPath{{Title: career.DataScience, ConfidenceLevel: domain.ConfidenceHigh}},
	}}
	h := newTestHandler(t, &stubChat{}, advice)

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, "/recommendations",
		`{"age":17,"education":{"level":"12th"},"academicStrengths":["Mathematics"],"interests":[],"location":"Pune","socioEconomicConstraints":"none"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "12th", advice.profile.Education.Level)
	require.Equal(t, []string{"Mathematics"}, advice.profile.AcademicStrengths)

	out := parseBody[career.Bundle](t, resp.Body)
	require.Equal(t, career.DataScience, out.CareerPaths[0].Title)
}

func TestHandle_RecommendationsValidationError(t *testing.T) {
	advice := &stubAdvice{err: &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "age_out_of_range"}}
	h := newTestHandler(t, &stubChat{}, advice)

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, "/recommendations", `{"age":3}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "age out of range", parseBody[errorResponse](t, resp.Body).Message)
}

func TestHandle_Insights(t *testing.T) {
	advice := &stubAdvice{}
	h := newTestHandler(t, &stubChat{}, advice)

	event := makeEvent(http.MethodGet, "/insights", "")
	event.QueryStringParameters = map[string]string{"skill": "data"}
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "data", advice.skill)

	out := parseBody[insightsResponse](t, resp.Body)
	require.Len(t, out.Insights, 1)
}

func TestHandle_RoutingErrors(t *testing.T) {
	h := newTestHandler(t, &stubChat{}, &stubAdvice{})

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodGet, "/unknown", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = h.Handle(context.Background(), makeEvent(http.MethodGet, "/chat", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, "POST, OPTIONS", resp.Headers["Allow"])
}

func TestHandle_Preflight(t *testing.T) {
	h := newTestHandler(t, &stubChat{}, &stubAdvice{})

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodOptions, "/chat", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, resp.Body)
	require.Equal(t, "http://localhost:5173", resp.Headers["Access-Control-Allow-Origin"])
	require.Contains(t, resp.Headers["Access-Control-Allow-Methods"], "POST")
}

func TestHandle_UsesProvidedCorrelationID_CaseInsensitive(t *testing.T) {
	h := newTestHandler(t, &stubChat{}, &stubAdvice{})

	event := makeEvent(http.MethodPost, "/chat", `{"message":"What do you do?"}`)
	event.Headers["x-correlation-id"] = "corr-123"
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, "corr-123", resp.Headers["X-Correlation-Id"])
}

func TestServeHTTP(t *testing.T) {
	chat := &stubChat{out: usecase.ChatOutput{Reply: "over http", Source: usecase.SourceCanned}}
	advice := &stubAdvice{}
	srv := httptest.NewServer(newTestHandler(t, chat, advice))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/chat", strings.NewReader(`{"message":"hello"}`))
	require.NoError(t, err)
	req.Header.Set("X-Correlation-Id", "corr-http")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "corr-http", res.Header.Get("X-Correlation-Id"))
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, "over http", parseBody[chatResponse](t, string(raw)).Reply)

	res2, err := http.Get(srv.URL + "/insights?skill=cloud")
	require.NoError(t, err)
	defer res2.Body.Close()
	require.Equal(t, http.StatusOK, res2.StatusCode)
	require.Equal(t, "cloud", advice.skill)
}
