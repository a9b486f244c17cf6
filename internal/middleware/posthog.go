package middleware

import (
	"net/http"
	"strings"

	"github.com/deudalibre/debt_payoff_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths lists endpoints that never produce telemetry events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware emits one PostHog event per successful authenticated
// request, named after the matched route. Requests that fail, hit an
// untracked path, or carry no user identity are skipped. With no client
// configured the middleware is a pass-through.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		// "/api/v1/debts/:id" -> "api_v1_debts_:id"; unmatched routes
		// produce an empty name and are dropped
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a named event from a handler, with the authenticated
// user as the distinct ID. A nil or unconfigured client drops the event.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	posthogClient.Enqueue(userID, eventName, properties)
}
