package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// EventSink receives usage events. *utils.PosthogClientWrapper is the
// production sink.
type EventSink interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

const analyticsKey = contextKey("analytics")

// untrackedPaths are never reported as page events.
var untrackedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Analytics makes sink available to TrackEvent and reports every successful
// authenticated request as an event named after its route template
// ("/api/v1/transfers/:kind/confirm" -> "api_v1_transfers_:kind_confirm").
func Analytics(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil {
			c.Next()
			return
		}
		c.Set(string(analyticsKey), sink)
		c.Next()

		if untrackedPaths[c.Request.URL.Path] || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		route := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if route == "" {
			return
		}
		props := map[string]any{"status_code": c.Writer.Status()}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		TrackEvent(c, route, props)
	}
}

// TrackEvent reports a named event for the signed-in user. It is a no-op
// outside Analytics or for anonymous requests.
func TrackEvent(c *gin.Context, event string, props map[string]any) {
	v, ok := c.Get(string(analyticsKey))
	if !ok {
		return
	}
	sink, ok := v.(EventSink)
	if !ok {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}

	if props == nil {
		props = make(map[string]any)
	}
	props["method"] = c.Request.Method
	props["path"] = c.Request.URL.Path
	if sess, ok := GetSessionFromContext(c); ok {
		if layout, ok := domain.LayoutFor(sess.Roles()); ok {
			props["layout"] = layout.Name
		}
	}
	sink.Enqueue(userID, event, props)
}
