package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/jobboard-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/jobboard-api/pkg/jwt"
)

type fakeChecker struct {
	exists bool
	err    error
	calls  int
}

func (f *fakeChecker) Exists(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.exists, f.err
}

func companyApp(checker *fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/empresa", apphttp.AuthMiddleware(testTokens), apphttp.RequireCompany(checker),
		func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app
}

func companyToken(t *testing.T, companyID, role string) string {
	return bearer(t, testTokens, pkgjwt.Identity{UserID: testUserID, Role: role, CompanyID: companyID})
}

func callCompany(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/empresa", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestRequireCompany(t *testing.T) {
	tests := []struct {
		name      string
		checker   *fakeChecker
		companyID string
		role      string
		want      int
		wantCalls int
	}{
		{"empresa existente", &fakeChecker{exists: true}, testCompanyID, "employer", http.StatusOK, 1},
		{"empresa eliminada", &fakeChecker{}, testCompanyID, "employer", http.StatusForbidden, 1},
		{"sin empresa en el token", &fakeChecker{exists: true}, "", "employer", http.StatusForbidden, 0},
		{"fallo de almacenamiento", &fakeChecker{err: errors.New("conexión rechazada")}, testCompanyID, "employer", http.StatusServiceUnavailable, 1},
		{"admin sin verificación", &fakeChecker{}, "", "admin", http.StatusOK, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := callCompany(t, companyApp(tt.checker), companyToken(t, tt.companyID, tt.role))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.checker.calls)
		})
	}
}
