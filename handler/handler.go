// Package handler exposes the chat, recommendation and insights use cases
// as an API Gateway proxy integration. The same handler serves net/http in
// local mode.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifecompass/internal/career"
	"lifecompass/internal/domain"
	"lifecompass/internal/usecase"
)

const (
	correlationHeader = "X-Correlation-Id"
	maxBodyBytes      = 64 << 10

	// statusClientClosedRequest is the nginx convention for a caller that
	// went away before the reply was ready.
	statusClientClosedRequest = 499

	errorNotFound         = "NOT_FOUND"
	errorMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

type ChatUseCase interface {
	Reply(ctx context.Context, in usecase.ChatInput) (usecase.ChatOutput, error)
}

type AdviceUseCase interface {
	Advise(ctx context.Context, p domain.StudentProfile) (career.Bundle, error)
	Insights(ctx context.Context, skill string) []domain.MarketInsight
}

type Handler struct {
	chat        ChatUseCase
	advice      AdviceUseCase
	allowOrigin string
	log         *zap.Logger
}

type Option func(*Handler)

// WithAllowedOrigin sets Access-Control-Allow-Origin on every response.
func WithAllowedOrigin(origin string) Option {
	return func(h *Handler) {
		h.allowOrigin = strings.TrimSpace(origin)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

type chatRequest struct {
	Message string                 `json:"message"`
	Profile *domain.StudentProfile `json:"profile,omitempty"`
	History []domain.Turn          `json:"history,omitempty"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	Intent    string `json:"intent"`
	Tier      string `json:"tier"`
	Model     string `json:"model"`
	Tokens    int    `json:"tokens"`
	ElapsedMs int64  `json:"elapsedMs"`
	Source    string `json:"source"`
}

type insightsResponse struct {
	Insights []domain.MarketInsight `json:"insights"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewHandler(chat ChatUseCase, advice AdviceUseCase, opts ...Option) (*Handler, error) {
	if chat == nil {
		return nil, errors.New("handler: chat use case must not be nil")
	}
	if advice == nil {
		return nil, errors.New("handler: advice use case must not be nil")
	}
	h := &Handler{chat: chat, advice: advice, allowOrigin: "*", log: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()
	correlationID := headerValue(event.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	method := strings.ToUpper(event.HTTPMethod)
	path := strings.TrimRight(event.Path, "/")

	resp := h.route(ctx, method, path, event)
	resp.Headers[correlationHeader] = correlationID

	h.log.Info("request handled",
		zap.String("correlation_id", correlationID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}

func (h *Handler) route(ctx context.Context, method, path string, event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if method == http.MethodOptions {
		return h.respond(http.StatusNoContent, nil)
	}

	var allowed string
	switch path {
	case "/chat":
		allowed = http.MethodPost
		if method == allowed {
			return h.handleChat(ctx, event)
		}
	case "/recommendations":
		allowed = http.MethodPost
		if method == allowed {
			return h.handleRecommendations(ctx, event)
		}
	case "/insights":
		allowed = http.MethodGet
		if method == allowed {
			return h.handleInsights(ctx, event)
		}
	default:
		return h.respondError(http.StatusNotFound, errorNotFound, "no route for "+path)
	}
	resp := h.respondError(http.StatusMethodNotAllowed, errorMethodNotAllowed, "use "+allowed)
	resp.Headers["Allow"] = allowed + ", " + http.MethodOptions
	return resp
}

func (h *Handler) handleChat(ctx context.Context, event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var req chatRequest
	if err := decodeBody(event, &req); err != nil {
		return h.respondError(http.StatusBadRequest, string(usecase.ErrorInvalidInput), "request body must be valid JSON")
	}

	out, err := h.chat.Reply(ctx, usecase.ChatInput{
		Message: req.Message,
		Profile: req.Profile,
		History: req.History,
	})
	if err != nil {
		return h.useCaseError(err)
	}
	return h.respond(http.StatusOK, chatResponse{
		Reply:     out.Reply,
		Intent:    out.Intent.String(),
		Tier:      out.Tier,
		Model:     out.Model,
		Tokens:    out.Tokens,
		ElapsedMs: out.Elapsed.Milliseconds(),
		Source:    out.Source,
	})
}

func (h *Handler) handleRecommendations(ctx context.Context, event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var profile domain.StudentProfile
	if err := decodeBody(event, &profile); err != nil {
		return h.respondError(http.StatusBadRequest, string(usecase.ErrorInvalidInput), "request body must be valid JSON")
	}
	out, err := h.advice.Advise(ctx, profile)
	if err != nil {
		return h.useCaseError(err)
	}
	return h.respond(http.StatusOK, out)
}

func (h *Handler) handleInsights(ctx context.Context, event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	skill := event.QueryStringParameters["skill"]
	return h.respond(http.StatusOK, insightsResponse{Insights: h.advice.Insights(ctx, skill)})
}

func (h *Handler) useCaseError(err error) events.APIGatewayProxyResponse {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		h.log.Error("unexpected use case error", zap.Error(err))
		return h.respondError(http.StatusInternalServerError, string(usecase.ErrorInternal), errorMessage(usecase.ErrorInternal, ""))
	}

	status := http.StatusInternalServerError
	switch ucErr.Code {
	case usecase.ErrorInvalidInput:
		status = http.StatusBadRequest
	case usecase.ErrorNotConfigured:
		status = http.StatusServiceUnavailable
	case usecase.ErrorCanceled:
		status = statusClientClosedRequest
	default:
		h.log.Error("use case failed", zap.String("code", string(ucErr.Code)), zap.Error(err))
	}
	return h.respondError(status, string(ucErr.Code), errorMessage(ucErr.Code, ucErr.Reason))
}

func errorMessage(code usecase.ErrorCode, reason string) string {
	switch code {
	case usecase.ErrorInvalidInput:
		return strings.ReplaceAll(reason, "_", " ")
	case usecase.ErrorNotConfigured:
		return usecase.NotConfiguredMessage
	case usecase.ErrorCanceled:
		return "request canceled"
	default:
		return "internal error"
	}
}

func (h *Handler) respond(status int, body any) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  h.allowOrigin,
		"Access-Control-Allow-Headers": "Content-Type, " + correlationHeader,
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	}
	if body == nil {
		return events.APIGatewayProxyResponse{StatusCode: status, Headers: headers}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		h.log.Error("encode response", zap.Error(err))
		status = http.StatusInternalServerError
		raw = []byte(`{"error":"INTERNAL_ERROR","message":"internal error"}`)
	}
	headers["Content-Type"] = "application/json"
	return events.APIGatewayProxyResponse{StatusCode: status, Headers: headers, Body: string(raw)}
}

func (h *Handler) respondError(status int, code, message string) events.APIGatewayProxyResponse {
	return h.respond(status, errorResponse{Error: code, Message: message})
}

func decodeBody(event events.APIGatewayProxyRequest, v any) error {
	body := event.Body
	if event.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return err
		}
		body = string(raw)
	}
	if len(body) > maxBodyBytes {
		return errors.New("handler: body too large")
	}
	return json.Unmarshal([]byte(body), v)
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ServeHTTP adapts a net/http request to Handle.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}
	query := make(map[string]string, len(r.URL.Query()))
	for k := range r.URL.Query() {
		query[k] = r.URL.Query().Get(k)
	}

	resp, _ := h.Handle(r.Context(), events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: query,
		Body:                  string(body),
	})
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}
