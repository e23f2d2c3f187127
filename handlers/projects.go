package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"slate/database"
	"slate/models"
)

func CreateProject(repo database.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var project models.Project
		if err := c.ShouldBindJSON(&project); err != nil {
			logrus.WithError(err).Warn("Invalid project payload")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		project.SetDefaults()

		id, err := repo.CreateProject(c.Request.Context(), &project)
		if err != nil {
			respondStoreError(c, err, "failed to create project")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListProjects(repo database.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := repo.ListProjects(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "failed to list projects")
			return
		}

		c.JSON(http.StatusOK, normalizeAll(docs))
	}
}
