// Package handlers contains the HTTP surface: one create and one list
// handler per entity, plus the greeting and diagnostic endpoints. Handlers
// are closures over the narrow repository interface they need.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"slate/database"
)

// respondStoreError maps a store failure to its response class: 503 when
// no database was configured, 500 for anything else. The underlying error
// is logged, not leaked.
func respondStoreError(c *gin.Context, err error, msg string) {
	if errors.Is(err, database.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
		return
	}

	logrus.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// normalizeAll renders raw records for the wire. Always returns a non-nil
// slice so an empty listing serializes as [].
func normalizeAll(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, database.NormalizeDocument(doc))
	}
	return out
}
