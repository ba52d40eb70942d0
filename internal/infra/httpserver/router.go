package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/balagh-app/vision-api/internal/application/analysis"
	domain "github.com/balagh-app/vision-api/internal/domain/analysis"
	"github.com/balagh-app/vision-api/internal/middleware"
)

// Multipart framing adds overhead on top of the image itself; the precise
// size check happens against the decoded part.
const maxRequestBytes = domain.MaxUploadBytes + 1024*1024

type Router struct {
	svc *appanalysis.Service
}

// NewRouter wires the analysis endpoint plus health, metrics and the static
// upload form. Every response carries permissive cross-origin headers so any
// browser client can call the endpoint directly.
func NewRouter(svc *appanalysis.Service, checkers map[string]middleware.HealthChecker, webDir string) http.Handler {
	r := &Router{svc: svc}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	mux.Use(middleware.RequestID)
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.Get("/healthz", middleware.HealthHandler(checkers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/analyze-image", r.wrap(r.handleAnalyzeImage))

	if webDir != "" {
		mux.Handle("/*", http.FileServer(http.Dir(webDir)))
	}

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps pipeline failures to HTTP responses. Validation errors become
// 400 with a detail body. An unavailable inference service degrades to an
// empty 200 report rather than exposing internals. Anything unclassified is
// a 500, still with the three-array body so the equal-length contract holds
// on every path.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		if domain.IsValidationError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
			return
		}
		if errors.Is(err, domain.ErrInferenceUnavailable) {
			log.Printf("request_id=%s inference degraded: %v", middleware.RequestIDFrom(req.Context()), err)
			middleware.IncrementAnalysesDegraded()
			writeJSON(w, http.StatusOK, domain.EmptyReport())
			return
		}
		log.Printf("request_id=%s unexpected error: %v", middleware.RequestIDFrom(req.Context()), err)
		writeJSON(w, http.StatusInternalServerError, domain.EmptyReport())
	}
}

// POST /analyze-image
// multipart/form-data with a single binary field "file".
func (r *Router) handleAnalyzeImage(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxRequestBytes)

	file, header, err := req.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.ErrTooLarge
		}
		return domain.ErrMissingFile
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.ErrTooLarge
		}
		return err
	}

	middleware.IncrementAnalyses()
	report, err := r.svc.Analyze(req.Context(), appanalysis.Upload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
	})
	if err != nil {
		return err
	}
	if report.Len() == 0 {
		middleware.IncrementAnalysesEmpty()
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
