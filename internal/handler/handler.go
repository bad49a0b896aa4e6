// Package handler shapes HTTP requests and responses for the API. Handlers
// bind and validate payloads, normalize them into explicit values, and hand
// off to the service layer; they never touch the store directly.
package handler

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/validation"
)

// MessageResponse acknowledges an operation that returns no record.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindRequest decodes the body into req, normalizes it and validates it. A
// wrong-typed field is reported under that field's own rule message next to
// the remaining violations; only JSON the decoder cannot parse at all falls
// back to the generic message.
func bindRequest(c echo.Context, req validation.RuleMessager, normalize func()) error {
	if err := c.Bind(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if v, ok := c.Echo().Validator.(*validation.Validator); ok {
				normalize()
				return v.ValidateDecoded(req, typeErr.Field)
			}
		}
		return apperrors.InvalidInput("Request body must be valid JSON")
	}
	normalize()
	return c.Validate(req)
}

// parseID reads the :id path param. A malformed id cannot match any record,
// so it reports the same 404 as an unknown one.
func parseID(c echo.Context, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NotFound(resource)
	}
	return id, nil
}
