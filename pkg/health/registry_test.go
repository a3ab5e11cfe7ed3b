package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func check(name string, status Status) Checker {
	return NewCheck(name, func(context.Context) Result {
		return Result{Status: status}
	})
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		checkers []Checker
		expected Status
	}{
		{name: "no checkers", expected: StatusUp},
		{name: "all up", checkers: []Checker{check("postgres", StatusUp), Optional(check("kafka", StatusUp))}, expected: StatusUp},
		{name: "optional down", checkers: []Checker{check("postgres", StatusUp), Optional(check("kafka", StatusDown))}, expected: StatusDegraded},
		{name: "required down", checkers: []Checker{check("postgres", StatusDown), Optional(check("kafka", StatusDown))}, expected: StatusDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := NewRegistry(tc.checkers...).CheckAll(context.Background())

			assert.Equal(t, tc.expected, res.Status)
			assert.Len(t, res.Checks, len(tc.checkers))
		})
	}
}

func TestReadinessHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		registry *Registry
		expected int
	}{
		{name: "degraded stays ready", registry: NewRegistry(Optional(check("kafka", StatusDown))), expected: http.StatusOK},
		{name: "down is unavailable", registry: NewRegistry(check("postgres", StatusDown)), expected: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health/ready", ReadinessHandler(tc.registry, DefaultTimeout))

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}
