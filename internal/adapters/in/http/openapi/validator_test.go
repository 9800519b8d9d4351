package openapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apparel/internal/adapters/in/http/openapi"
	"apparel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_LoadsEmbeddedDocument(t *testing.T) {
	v, err := openapi.NewValidator(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Contains(t, string(openapi.Document()), "openapi: 3.0.3")
}

func TestValidator_Middleware(t *testing.T) {
	v, err := openapi.NewValidator(t.Context())
	require.NoError(t, err)

	var rejected error
	e := echo.New()
	e.Use(v.Middleware(func(c echo.Context, err error) error {
		rejected = err
		return c.NoContent(http.StatusBadRequest)
	}))
	e.POST("/orders/:id/timeline", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	post := func(body string) int {
		req := httptest.NewRequest(http.MethodPost,
			"/orders/6f1c1a52-3b0e-4f4e-9a61-0d3f1b7f0c11/timeline", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, post(`{"kind":"note","message":"hello"}`))
	assert.NoError(t, rejected)

	assert.Equal(t, http.StatusBadRequest, post(`{"kind":"gossip","message":"hello"}`))
	require.Error(t, rejected)
	assert.ErrorIs(t, rejected, errs.ErrValueIsInvalid)
	assert.Equal(t, "kind", errs.Field(rejected))
}
