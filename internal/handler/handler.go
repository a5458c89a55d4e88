package handler

import (
	"github.com/labstack/echo/v4"

	"invoicedash/internal/errors"
)

// formValues flattens the submitted form into the untyped map the validation
// layer reads. Repeated fields keep their first value.
func formValues(c echo.Context) (map[string]string, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(params))
	for key, vals := range params {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	return values, nil
}

// domainError converts a service error into the HTTP error echo renders.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
