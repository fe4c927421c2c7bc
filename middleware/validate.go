package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/apperr"
	"fintrack/validation"
)

const validatedBodyKey = "validatedBody"

// Validate adapts a validation pipeline to gin. The JSON body is decoded
// once, the guards run in order, and the first failure aborts with its
// mapped status before the handler runs. On success the sanitized body is
// stored on the context for the handler.
func Validate(guards ...validation.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := &validation.Request{
			Body:   map[string]interface{}{},
			Params: map[string]string{},
			Query:  c.Request.URL.Query(),
		}
		for _, p := range c.Params {
			req.Params[p.Key] = p.Value
		}
		if c.Request.Body != nil && c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req.Body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
				return
			}
		}

		for _, g := range guards {
			if err := g(req); err != nil {
				abortWithError(c, err)
				return
			}
		}

		c.Set(validatedBodyKey, req.Body)
		c.Next()
	}
}

// ValidatedBody returns the sanitized body left behind by Validate.
func ValidatedBody(c *gin.Context) map[string]interface{} {
	if v, exists := c.Get(validatedBodyKey); exists {
		if m, ok := v.(map[string]interface{}); ok {
			return m
		}
	}
	return map[string]interface{}{}
}

func abortWithError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		body := gin.H{"error": ae.Message}
		if len(ae.Details) > 0 {
			body["details"] = ae.Details
		}
		c.AbortWithStatusJSON(ae.Status, body)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
