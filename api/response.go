package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fintrack/apperr"
	"fintrack/config"
)

// ErrorResponse is the uniform error body. Details carries the individual
// rule violations when a validation pipeline collects several.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// OK writes a 200 with the entity as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the entity as the body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail maps a service error to its HTTP shape. Typed errors carry their own
// status; anything else is logged and hidden behind a 500.
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, ErrorResponse{Error: ae.Message, Details: ae.Details})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: config.SafeErrorMessage(err, "Internal Server Error")})
}
