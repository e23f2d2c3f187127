package handlers

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the Slate backend!"})
}

func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// StatusSource is the slice of the store the diagnostic endpoint needs.
type StatusSource interface {
	Available() bool
	Collections(ctx context.Context) ([]string, error)
}

// TestDatabase reports store connectivity. It always answers 200: an
// enumeration failure is rendered into the body as a truncated message
// instead of failing the request.
func TestDatabase(store StatusSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      envFlag("DATABASE_URL"),
			"database_name":     envFlag("DATABASE_NAME"),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if store.Available() {
			response["connection_status"] = "Connected"

			names, err := store.Collections(c.Request.Context())
			if err != nil {
				response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

func envFlag(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
