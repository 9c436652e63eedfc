package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const InternalErrorMessage = "internal server error"

type ErrorBody struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// AbortError writes the error body and stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
