package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform result contract every endpoint returns.
// Success is true iff ErrorMessages is empty; Result is set iff
// Success is true.
type Envelope struct {
	Success       bool     `json:"success"`
	StatusCode    int      `json:"statusCode"`
	Result        any      `json:"result,omitempty"`
	ErrorMessages []string `json:"errorMessages"`
}

func OK(result any) Envelope {
	return Envelope{
		Success:       true,
		StatusCode:    http.StatusOK,
		Result:        result,
		ErrorMessages: []string{},
	}
}

func Created(result any) Envelope {
	return Envelope{
		Success:       true,
		StatusCode:    http.StatusCreated,
		Result:        result,
		ErrorMessages: []string{},
	}
}

func NoContent() Envelope {
	return Envelope{
		Success:       true,
		StatusCode:    http.StatusNoContent,
		ErrorMessages: []string{},
	}
}

func Failure(statusCode int, messages ...string) Envelope {
	return Envelope{
		Success:       false,
		StatusCode:    statusCode,
		ErrorMessages: messages,
	}
}

// Write sends the envelope with a matching HTTP status. A 204 reply may
// not carry a body, so the NoContent envelope travels on a 200.
func Write(c *gin.Context, env Envelope) {
	status := env.StatusCode
	if status == http.StatusNoContent {
		status = http.StatusOK
	}
	c.JSON(status, env)
}
