package handlers

import (
	"errors"
	"testing"

	xhttp "github.com/Bigsouley03/cat-payment-app/pkg/http"
	"github.com/stretchr/testify/assert"
)

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) Get() error { return f.err }

func TestGetHealth(t *testing.T) {
	h := NewHealthHandler(&fakeHealthService{})

	ctx := newRequestCtx("GET", "/api/health", nil)
	h.GetHealth(ctx)

	assert.Equal(t, xhttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "success", string(ctx.Response.Body()))
}

func TestGetHealth_Failing(t *testing.T) {
	h := NewHealthHandler(&fakeHealthService{err: errors.New("pg unreachable")})

	ctx := newRequestCtx("GET", "/api/health", nil)
	h.GetHealth(ctx)

	assert.Equal(t, xhttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, "unhealthy", string(ctx.Response.Body()))
}
