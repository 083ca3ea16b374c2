package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iwvelando/mortgage-calculator/internal/cache"
	"github.com/iwvelando/mortgage-calculator/internal/calculator"
	"github.com/iwvelando/mortgage-calculator/internal/metrics"
	"github.com/iwvelando/mortgage-calculator/pkg/pseo"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	calc        *calculator.Service
	metrics     *metrics.Metrics
	pages       *pseo.PagesCache
	maxBodySize int64
	siteURL     string
	production  bool
	version     string
}

// Dependencies are the collaborators shared with the rest of the process.
// Nil fields are replaced with defaults.
type Dependencies struct {
	Logger     *zap.Logger
	Calculator *calculator.Service
	Metrics    *metrics.Metrics
}

// NewHandler constructs the HTTP handler that serves the mortgage API.
func NewHandler(cfg *Config, deps Dependencies, version string) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}
	calc := deps.Calculator
	if calc == nil {
		resultCache, err := cache.New(cfg.CacheOptions())
		if err != nil {
			logger.Warn("falling back to an uncached calculator",
				zap.String("op", "server.NewHandler"),
				zap.Error(err),
			)
			resultCache = cache.NopCache{}
		}
		calc = calculator.NewService(logger, resultCache, m)
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		calc:        calc,
		metrics:     m,
		pages:       pseo.DefaultPagesCache(),
		maxBodySize: cfg.BodySizeBytes(),
		siteURL:     cfg.SiteURL,
		production:  cfg.Production,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Calculator API
	mux.HandleFunc("POST /api/mortgage", h.handleMortgage)
	mux.HandleFunc("GET /api/schedule.pdf", h.handleSchedulePDF)

	// Generated page data
	mux.HandleFunc("GET /api/mortgage-payment/{slug}", h.handlePaymentPage)
	mux.HandleFunc("GET /api/mortgage-rates/{state}/{tier}", h.handleRatesPage)
	mux.HandleFunc("GET /sitemap.xml", h.handleSitemap)

	// Scenario files: upload, editor-driven runs and YAML export
	mux.HandleFunc("POST /api/estimate", h.handleEstimateUpload)
	mux.HandleFunc("POST /api/editor/estimate", h.handleEstimateEditor)
	mux.HandleFunc("POST /api/editor/export", h.handleConfigExport)

	// Operational endpoints
	mux.HandleFunc("GET /api/version", h.handleVersion)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.Handle("GET /metrics", m.Handler())

	var limiter *RateLimiter
	if cfg.RateLimit.Requests > 0 {
		limiter = NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())
	}

	var root http.Handler = withBodyLimit(h.maxBodySize, mux)
	root = withRateLimit(limiter, logger, root)
	root = withMetrics(m, mux, root)
	return withRequestID(root)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondCalcError maps calculator errors: validation failures are the
// client's fault, anything else is ours.
func (h *handler) respondCalcError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var inputErr *validation.InputError
	if errors.As(err, &inputErr) {
		resp := errorResponse{Error: err.Error()}
		for _, f := range inputErr.Fields {
			resp.Fields = append(resp.Fields, fieldError{Field: f.Field, Message: f.Message})
		}
		h.logFailure(r, http.StatusBadRequest, resp.Error, op)
		h.writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("calculation failed: %v", err), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logFailure(r, status, msg, op)
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) logFailure(r *http.Request, status int, msg string, op string) {
	log := h.logger.Warn
	if status >= http.StatusInternalServerError {
		log = h.logger.Error
	}
	log("request failed",
		zap.String("op", op),
		zap.String("requestId", RequestIDFromContext(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(h.logger, w, status, payload)
}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to write JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}

// bodyTooLarge reports whether err came from the body limit middleware.
func bodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
