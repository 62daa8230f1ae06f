package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/registry"
	"github.com/aretw0/cellfn/pkg/value"
)

// maxBodyBytes bounds invoke request bodies.
const maxBodyBytes = 1 << 20

// Server exposes a function registry as a JSON API.
type Server struct {
	registry *registry.Registry
	metrics  http.Handler
	logger   *slog.Logger
	locale   string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLocale sets the locale used when a request does not name one.
func WithLocale(locale string) Option {
	return func(s *Server) {
		s.locale = locale
	}
}

// FunctionResponse is a descriptor with its rendered call template.
type FunctionResponse struct {
	registry.Descriptor
	Usage string `json:"usage"`
}

// InvokeRequest is the body of POST /functions/{name}/invoke. Args use the
// JSON argument encoding of value.ArgFromJSON.
type InvokeRequest struct {
	Args   []any  `json:"args"`
	Locale string `json:"locale,omitempty"`
}

// InvokeResponse carries the output of a call. Evaluation errors are part of
// a successful response: they are values.
type InvokeResponse struct {
	Function string       `json:"function"`
	Output   value.Output `json:"output"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// NewHandler creates the HTTP handler for reg.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	s := &Server{
		registry: reg,
		logger:   slog.Default(),
		locale:   pipeline.DefaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/functions", func(r chi.Router) {
		r.Get("/", s.ListFunctions)
		r.Get("/{name}", s.GetFunction)
		r.Post("/{name}/invoke", s.InvokeFunction)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// ListFunctions handles GET /functions. The optional category query parameter
// filters by category; hidden functions are listed only with all=true.
func (s *Server) ListFunctions(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))

	resp := []FunctionResponse{}
	for _, d := range s.registry.Descriptors() {
		if d.Hidden && !all {
			continue
		}
		if category != "" && !strings.EqualFold(d.Category, category) {
			continue
		}
		resp = append(resp, FunctionResponse{Descriptor: d, Usage: d.Usage()})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetFunction handles GET /functions/{name}.
func (s *Server) GetFunction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, err := s.registry.Lookup(name); err != nil {
		s.writeLookupError(w, err)
		return
	}
	d, _ := s.registry.Get(name)
	s.writeJSON(w, http.StatusOK, FunctionResponse{Descriptor: d, Usage: d.Usage()})
}

// InvokeFunction handles POST /functions/{name}/invoke.
func (s *Server) InvokeFunction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	call, err := s.registry.Lookup(name)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}

	var body InvokeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		s.logger.Warn("invoke: invalid request body", "function", name, "error", err)
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	args, err := value.ArgsFromJSON(body.Args)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	locale := body.Locale
	if locale == "" {
		locale = s.locale
	}
	d, _ := s.registry.Get(name)
	out := call(pipeline.StaticContext{LocaleName: locale}, args...)
	s.writeJSON(w, http.StatusOK, InvokeResponse{Function: d.Name, Output: out})
}

func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var unknown *registry.UnknownFunctionError
	if errors.As(err, &unknown) {
		resp.Suggestions = unknown.Suggestions
	}
	s.writeJSON(w, http.StatusNotFound, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
