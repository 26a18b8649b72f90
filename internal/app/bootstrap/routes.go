// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	adminfeature "github.com/dalemusser/clubhub/internal/app/features/admin"
	announcementsfeature "github.com/dalemusser/clubhub/internal/app/features/announcements"
	contactfeature "github.com/dalemusser/clubhub/internal/app/features/contact"
	healthfeature "github.com/dalemusser/clubhub/internal/app/features/health"
	membersfeature "github.com/dalemusser/clubhub/internal/app/features/members"
	teamfeature "github.com/dalemusser/clubhub/internal/app/features/team"
	"github.com/dalemusser/clubhub/internal/app/system/defaultdata"
	"github.com/dalemusser/clubhub/internal/app/system/httpjson"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. ClubHub mounts the JSON API under /api
// with CORS, rate limiting, request logging, and uniform JSON error shapes
// for unmatched routes and panics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verbose := coreCfg.Env != "prod"

	var fallback []models.Member
	if appCfg.SeedDefaultMembers {
		fallback = defaultdata.Members()
	}

	r := chi.NewRouter()

	r.Use(requestLogger(logger))
	r.Use(recoverer(logger, verbose))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(appCfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	limiter := ratelimit.New(appCfg.RateLimitRequests, appCfg.RateLimitWindow)

	r.Route("/api", func(api chi.Router) {
		api.Use(limiter.Middleware)

		healthHandler := healthfeature.NewHandler(deps.ClubHubMongoClient, coreCfg.Env, logger)
		api.Mount("/health", healthfeature.Routes(healthHandler))

		api.Route("/contact", func(rt chi.Router) {
			contactfeature.NewHandler(deps.ClubHubMongoDatabase, verbose, logger).MountRoutes(rt)
		})
		api.Route("/team", func(rt chi.Router) {
			teamfeature.NewHandler(deps.ClubHubMongoDatabase, verbose, logger).MountRoutes(rt)
		})
		api.Route("/members", func(rt chi.Router) {
			membersfeature.NewHandler(deps.ClubHubMongoDatabase, fallback, verbose, logger).MountRoutes(rt)
		})
		api.Route("/announcements", func(rt chi.Router) {
			announcementsfeature.NewHandler(deps.ClubHubMongoDatabase, verbose, logger).MountRoutes(rt)
		})
		api.Route("/admin", func(rt chi.Router) {
			adminfeature.NewHandler(deps.ClubHubMongoDatabase, verbose, logger).MountRoutes(rt)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpjson.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r, nil
}

// splitOrigins parses the comma-separated CORS allow-list.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", ratelimit.ClientIP(r)))
		})
	}
}

// recoverer turns a handler panic into a 500 JSON envelope instead of a
// dropped connection.
func recoverer(logger *zap.Logger, verbose bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path))
					httpjson.ServerError(w, nil, verbose)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// statusWriter captures the response status for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
