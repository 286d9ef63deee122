package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"babd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListBackends() []types.Backend
	DefaultBackend() string
	StatusAll() types.StatusResponse
	Status(id string) (types.BackendStatus, error)
	VerifyReport(id string) (types.VerifyResponse, error)
	Languages(id string) (types.Backend, map[string]string, error)
	ArtifactPath(id string) (string, error)
	EnsureDownloaded(ctx context.Context, id string, force bool) error
	Remove(id string) error
	Translate(ctx context.Context, req types.TranslateRequest) (types.TranslateResponse, error)
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.ModelsResponse{
			Models:         svc.ListBackends(),
			DefaultBackend: svc.DefaultBackend(),
		})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.StatusAll())
	})

	r.Get("/status/{backend}", func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Status(chi.URLParam(r, "backend"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, st)
	})

	r.Get("/verify/{backend}", func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.VerifyReport(chi.URLParam(r, "backend"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, rep)
	})

	r.Get("/languages/{backend}", func(w http.ResponseWriter, r *http.Request) {
		b, table, err := svc.Languages(chi.URLParam(r, "backend"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, types.LanguagesResponse{Backend: b.ID, Scheme: b.Scheme, Languages: table})
	})

	r.Post("/download", func(w http.ResponseWriter, r *http.Request) {
		var req types.DownloadRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		id := req.Backend
		if id == "" {
			id = svc.DefaultBackend()
		}
		lvl := requestLogLevel(r)
		start := time.Now()
		joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if err := svc.EnsureDownloaded(joinedCtx, id, req.Force); err != nil {
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			logEnd(r, lvl, "download", statusForError(err), start, err)
			writeError(w, err)
			return
		}
		path, _ := svc.ArtifactPath(id)
		logEnd(r, lvl, "download", http.StatusOK, start, nil)
		writeJSON(w, types.ActionResponse{
			Success: true,
			Message: "backend downloaded",
			Backend: id,
			Path:    path,
		})
	})

	r.Post("/remove", func(w http.ResponseWriter, r *http.Request) {
		var req types.RemoveRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		id := req.Backend
		if id == "" {
			id = svc.DefaultBackend()
		}
		if err := svc.Remove(id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, types.ActionResponse{
			Success: true,
			Message: "backend removed",
			Backend: id,
		})
	})

	r.Post("/translate", func(w http.ResponseWriter, r *http.Request) {
		var req types.TranslateRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		lvl := requestLogLevel(r)
		start := time.Now()
		if lvl >= LevelInfo && zlog != nil {
			z := zlog.Info().Str("path", r.URL.Path).Str("backend", req.Backend)
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				z = z.Str("request_id", rid)
			}
			z.Msg("translate start")
		}
		// Join server base context with request context so shutdown cancels work too.
		joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if translateTimeout > 0 {
			var tcancel context.CancelFunc
			joinedCtx, tcancel = context.WithTimeout(joinedCtx, time.Duration(translateTimeout)*time.Second)
			defer tcancel()
		}
		resp, err := svc.Translate(joinedCtx, req)
		if err != nil {
			// If context was canceled (client disconnect), just return.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			logEnd(r, lvl, "translate", statusForError(err), start, err)
			writeError(w, err)
			return
		}
		logEnd(r, lvl, "translate", http.StatusOK, start, nil)
		writeJSON(w, resp)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("starting"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSONBody enforces content type and body size, then decodes into dst.
// Writes the error response itself and reports whether decoding succeeded.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		// MaxBytesReader errors land here too; keep the response uniform.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

func logEnd(r *http.Request, lvl LogLevel, op string, status int, start time.Time, err error) {
	if lvl < LevelInfo || zlog == nil {
		return
	}
	z := zlog.Info().Str("op", op).Int("status", status).Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg(op + " end")
}
