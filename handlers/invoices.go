package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"slate/database"
	"slate/models"
)

func CreateInvoice(repo database.InvoiceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var invoice models.Invoice
		if err := c.ShouldBindJSON(&invoice); err != nil {
			logrus.WithError(err).Warn("Invalid invoice payload")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		invoice.SetDefaults()

		id, err := repo.CreateInvoice(c.Request.Context(), &invoice)
		if err != nil {
			respondStoreError(c, err, "failed to create invoice")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

// ListInvoices accepts optional client_id and project_id query parameters;
// both apply when both are given.
func ListInvoices(repo database.InvoiceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := database.InvoiceFilter{
			ClientID:  c.Query("client_id"),
			ProjectID: c.Query("project_id"),
		}

		docs, err := repo.ListInvoices(c.Request.Context(), filter)
		if err != nil {
			respondStoreError(c, err, "failed to list invoices")
			return
		}

		c.JSON(http.StatusOK, normalizeAll(docs))
	}
}
