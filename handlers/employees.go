package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"slate/database"
	"slate/models"
)

func CreateEmployee(repo database.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var employee models.Employee
		if err := c.ShouldBindJSON(&employee); err != nil {
			logrus.WithError(err).Warn("Invalid employee payload")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		employee.SetDefaults()

		id, err := repo.CreateEmployee(c.Request.Context(), &employee)
		if err != nil {
			respondStoreError(c, err, "failed to create employee")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListEmployees(repo database.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := repo.ListEmployees(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "failed to list employees")
			return
		}

		c.JSON(http.StatusOK, normalizeAll(docs))
	}
}
