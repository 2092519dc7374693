package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/specialistvlad/pkgplan/internal/plan"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	a, _, _ := newTestApp(t, Config{DescriptorPath: "pkg"})

	rec := httptest.NewRecorder()
	a.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Plan-Fingerprint"))

	a.lastPlan = &plan.Plan{Fingerprint: "abc"}
	rec = httptest.NewRecorder()
	a.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "abc", rec.Header().Get("X-Plan-Fingerprint"))
}
