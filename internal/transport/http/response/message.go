package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/model"
)

// publicMessages maps domain errors to the text clients see. Order matters:
// wrapped validation errors are matched before the kind that wraps them.
var publicMessages = []struct {
	err     error
	message string
}{
	{model.ErrInstructionsTooShort, "Instructions must be at least 50 characters long"},
	{app.ErrMissingFields, "Missing required fields"},
	{app.ErrDuplicateUsername, "Username already exists"},
	{app.ErrInvalidCredentials, "Username or password incorrect"},
	{app.ErrUnauthenticated, "You are not logged in"},
	{app.ErrUserNotFound, "User not found"},
	{app.ErrInvalidInput, "Data entered is invalid"},
}

// Message renders err for a response body. Errors outside the table keep
// their own text.
func Message(err error) string {
	for _, m := range publicMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return err.Error()
}

func Fail(c *gin.Context, status int, err error) {
	Error(c, status, Message(err))
}

func AbortFail(c *gin.Context, status int, err error) {
	AbortError(c, status, Message(err))
}
