// Package openapi validates incoming requests against the embedded API description
// before they reach the echo handlers.
package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"apparel/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var document []byte

// Document returns the raw embedded API description.
func Document() []byte {
	return slices.Clone(document)
}

// Validator matches requests to documented operations and checks their parameters and
// bodies. Requests to undocumented routes are passed through untouched.
type Validator struct {
	router routers.Router
}

// NewValidator loads and validates the embedded document.
func NewValidator(ctx context.Context) (*Validator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	return &Validator{router: router}, nil
}

// OnError renders a rejected request. err is an errs.ValueIsInvalidError naming the
// offending field where one can be determined.
type OnError func(ctx echo.Context, err error) error

// Middleware returns an echo middleware that rejects requests which do not conform to
// the document.
func (v *Validator) Middleware(onError OnError) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := v.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return onError(c, toValidationError(validateErr))
			}

			return next(c)
		}
	}
}

func toValidationError(err error) error {
	field := fieldOf(err)
	if field == "" {
		field = "body"
	}
	return errs.NewValueIsInvalidErrorWithCause(field, err)
}

// fieldOf names the parameter or body property a validation error refers to, using
// dotted paths for nested properties.
func fieldOf(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return ""
	}
	if reqErr.Parameter != nil {
		return reqErr.Parameter.Name
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		return strings.Join(schemaErr.JSONPointer(), ".")
	}
	return ""
}
