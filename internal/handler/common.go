package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/haidrrry/travellingapp/internal/auth"
	"github.com/haidrrry/travellingapp/internal/errors"
)

// dateLayouts are the accepted wire formats for dates. Form-driven clients
// send plain calendar dates; API clients send RFC 3339.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// currentUser extracts the authenticated user's id from the verified token
// the JWT middleware stored on the context.
func currentUser(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.ErrUnauthorized
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return uuid.Nil, errors.ErrUnauthorized
	}
	id, err := claims.Subject()
	if err != nil {
		return uuid.Nil, errors.ErrUnauthorized
	}
	return id, nil
}

// fail maps a domain error onto the failure envelope and writes it.
func fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// badRequest writes a 400 failure envelope with the given message. Used for
// bind and DTO validation failures before any service is involved.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
		Success: false,
		Message: message,
		Code:    "VALIDATION_ERROR",
	})
}
