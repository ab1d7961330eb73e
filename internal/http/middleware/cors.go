package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the dashboard origins. "*" (or an empty list) allows any origin without credentials.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, "Content-Disposition"},
		MaxAge:        24 * time.Hour,
	}

	allowed := []string{}
	for _, o := range origins {
		switch {
		case o == "*":
			cfg.AllowAllOrigins = true
		case strings.HasPrefix(o, "http://"), strings.HasPrefix(o, "https://"):
			allowed = append(allowed, o)
		default:
			log.Printf("warning: ignoring CORS origin %q (scheme required)", o)
		}
	}

	if cfg.AllowAllOrigins || len(allowed) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
