// Package server exposes the projection engine over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/rpgo/savings-projector/internal/output"
)

const requestIDHeader = "X-Request-ID"

// ErrorResponse is the body of every non-2xx response. Field is set for rejected
// parameters; Year and Account locate a simulation failure.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Year    *int   `json:"year,omitempty"`
	Account string `json:"account,omitempty"`
}

// Server routes projection requests to a ProjectionEngine
type Server struct {
	settings config.ServerSettings
	engine   *calculation.ProjectionEngine
	log      *zap.Logger
}

// New builds a server whose engine honours the configured year limit
func New(settings config.ServerSettings, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	engine := calculation.NewProjectionEngine()
	engine.MaxYears = settings.MaxYears
	engine.SetLogger(calculation.NewZapLogger(log.Named("engine")))
	return &Server{settings: settings, engine: engine, log: log}
}

// Handle is the fasthttp request handler
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	requestID := string(ctx.Request.Header.Peek(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.Response.Header.Set(requestIDHeader, requestID)

	switch string(ctx.Path()) {
	case "/healthz":
		s.handleHealth(ctx)
	case "/projection":
		s.handleProjection(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "no route for "+string(ctx.Path()))
	}

	s.log.Info("request",
		zap.String("request_id", requestID),
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx, "GET")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var (
		params domain.SimulationParameters
		err    error
	)
	switch {
	case ctx.IsGet():
		params, err = parseQuery(ctx.QueryArgs())
	case ctx.IsPost():
		params, err = parseBody(ctx.PostBody())
	default:
		methodNotAllowed(ctx, "GET, POST")
		return
	}
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}

	result, err := s.engine.Project(params)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, output.NewProjectionDocument(result))
}

// statusFor maps engine errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		return fasthttp.StatusBadRequest
	case errors.Is(err, domain.ErrSimulationFailure):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}

func (s *Server) writeEngineError(ctx *fasthttp.RequestCtx, err error) {
	resp := ErrorResponse{Status: statusFor(err), Message: err.Error()}

	var invalid *domain.InvalidParameterError
	var failure *domain.SimulationFailureError
	switch {
	case errors.As(err, &invalid):
		resp.Field = invalid.Field
	case errors.As(err, &failure):
		year := failure.Year
		resp.Year = &year
		resp.Account = failure.Account
	default:
		s.log.Error("projection failed", zap.Error(err))
	}
	writeJSON(ctx, resp.Status, resp)
}

func methodNotAllowed(ctx *fasthttp.RequestCtx, allow string) {
	ctx.Response.Header.Set("Allow", allow)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"status":500,"message":"encode response"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// Serve answers requests on ln until ctx is canceled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:     s.Handle,
		Name:        "savings-projector",
		ReadTimeout: s.settings.ReadTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown()
	})
	return g.Wait()
}

// ListenAndServe listens on the configured address and calls Serve
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.settings.Addr)
	if err != nil {
		return err
	}
	s.log.Info("listening", zap.String("addr", ln.Addr().String()), zap.Int("max_years", s.settings.MaxYears))
	return s.Serve(ctx, ln)
}
