package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"slate/database"
	"slate/models"
)

func CreateClient(repo database.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var client models.Client
		if err := c.ShouldBindJSON(&client); err != nil {
			logrus.WithError(err).Warn("Invalid client payload")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		client.SetDefaults()

		id, err := repo.CreateClient(c.Request.Context(), &client)
		if err != nil {
			respondStoreError(c, err, "failed to create client")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListClients(repo database.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := repo.ListClients(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "failed to list clients")
			return
		}

		c.JSON(http.StatusOK, normalizeAll(docs))
	}
}
