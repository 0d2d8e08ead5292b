package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery returns a gin middleware for recovering from panics. API paths
// get a JSON 500; public redirect paths degrade to the fallback redirect,
// since the caller there is a browser following a shared link and must
// never see a raw error page.
func Recovery(fallbackURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("Panic recovered")

				if strings.HasPrefix(c.Request.URL.Path, "/api/") {
					c.JSON(http.StatusInternalServerError, gin.H{
						"code":    500,
						"message": "Internal server error",
					})
				} else {
					c.Redirect(http.StatusFound, fallbackURL)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
