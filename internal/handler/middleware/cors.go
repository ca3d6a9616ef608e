package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"bengkel-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the booking front-ends read X-Request-ID and send the
// access_token cookie. A "*" origin switches to allow-all without credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  withHeader(cfg.AllowHeaders, RequestIDHeader),
		ExposeHeaders: withHeader(cfg.ExposeHeaders, RequestIDHeader),
		MaxAge:        cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if cfg.AllowCredentials {
			slog.Warn("CORS allows every origin; credentials disabled", "configured_origins", cfg.AllowOrigins)
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}

	slog.Info("CORS middleware initialized",
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"allow_origins", corsCfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}

func withHeader(headers []string, header string) []string {
	canonical := http.CanonicalHeaderKey(header)
	for _, h := range headers {
		if http.CanonicalHeaderKey(h) == canonical {
			return headers
		}
	}
	return append(slices.Clone(headers), header)
}
