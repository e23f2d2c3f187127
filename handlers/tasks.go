package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"slate/database"
	"slate/models"
)

func CreateTask(repo database.TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var task models.Task
		if err := c.ShouldBindJSON(&task); err != nil {
			logrus.WithError(err).Warn("Invalid task payload")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		task.SetDefaults()

		id, err := repo.CreateTask(c.Request.Context(), &task)
		if err != nil {
			respondStoreError(c, err, "failed to create task")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

// ListTasks accepts an optional project_id query parameter narrowing the
// listing to one project.
func ListTasks(repo database.TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := database.TaskFilter{ProjectID: c.Query("project_id")}

		docs, err := repo.ListTasks(c.Request.Context(), filter)
		if err != nil {
			respondStoreError(c, err, "failed to list tasks")
			return
		}

		c.JSON(http.StatusOK, normalizeAll(docs))
	}
}
