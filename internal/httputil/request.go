package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ContextURL is the key of the public base URL of the API in the gin context.
const ContextURL = "baseURL"

// BindData binds the JSON body of the request to data.
//
// Fields missing in the body keep the value they have in data. This is
// what PATCH endpoints use: data is prefilled with the current resource.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return validationError(validationErrors)
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ParseUUID parses the path parameter param as UUID.
func ParseUUID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}

// BindQuery binds the query parameters of the request to filter.
func BindQuery(c *gin.Context, filter any) error {
	if err := c.ShouldBindQuery(filter); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidQuery, err)
	}
	return nil
}

// BaseURL returns the public base URL of the API as set by the URL
// middleware.
func BaseURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}
