package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zanzibar-explore/tours-backend/internal/httperr"
)

// dateFormat is the wire format for date-only fields.
const dateFormat = "2006-01-02"

func writeError(c *gin.Context, err error) {
	c.JSON(httperr.Status(err), gin.H{"error": httperr.Message(err)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
