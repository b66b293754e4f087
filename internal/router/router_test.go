package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bistro/internal/auth"
	"bistro/internal/handler"
	"bistro/internal/model"
	"bistro/internal/service"
)

type fakeUsers struct {
	service.UserService
	admins  map[string]bool
	updated []string
}

func (f *fakeUsers) IsAdmin(_ context.Context, email string) (bool, error) {
	return f.admins[email], nil
}

func (f *fakeUsers) Promote(_ context.Context, id string) (*model.UpdateResult, error) {
	f.updated = append(f.updated, id)
	return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUsers) ListUsers(context.Context) ([]model.User, error) {
	return []model.User{}, nil
}

type fakeStats struct{}

func (fakeStats) AdminStats(context.Context) (*model.AdminStats, error) {
	return &model.AdminStats{}, nil
}

func (fakeStats) OrderStats(context.Context) ([]model.CategoryStat, error) {
	return []model.CategoryStat{}, nil
}

func newTestRouter(t *testing.T) (*echo.Echo, *auth.JWTService, *fakeUsers) {
	t.Helper()
	jwtService := auth.NewJWTService("router-secret")
	users := &fakeUsers{admins: map[string]bool{"chef@bistro.test": true}}

	e := echo.New()
	Register(e, zap.NewNop(), jwtService, users, Handlers{
		Auth:   handler.NewAuthHandler(service.NewAuthService(jwtService)),
		User:   handler.NewUserHandler(users),
		Stats:  handler.NewStatsHandler(fakeStats{}),
		Health: handler.NewHealthHandler(func(context.Context) error { return nil }),
	})
	return e, jwtService, users
}

func bearer(t *testing.T, svc *auth.JWTService, email string) string {
	t.Helper()
	token, err := svc.GenerateToken(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_AdminRoutes(t *testing.T) {
	e, jwtService, _ := newTestRouter(t)
	forged, err := auth.NewJWTService("someone-else").GenerateToken(map[string]interface{}{"email": "chef@bistro.test"})
	require.NoError(t, err)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodPatch, "/users/admin/65f1a2b3c4d5e6f708192a3b"},
		{http.MethodDelete, "/users/65f1a2b3c4d5e6f708192a3b"},
		{http.MethodPost, "/menu"},
		{http.MethodGet, "/admin-stats"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			cases := []struct {
				name       string
				header     string
				wantStatus int
				wantBody   string
			}{
				{name: "no token", wantStatus: http.StatusUnauthorized, wantBody: `{"error":"unauthorized access","code":"UNAUTHORIZED"}`},
				{name: "forged token", header: "Bearer " + forged, wantStatus: http.StatusForbidden, wantBody: `{"error":"forbidden access","code":"FORBIDDEN"}`},
				{name: "non admin", header: bearer(t, jwtService, "guest@bistro.test"), wantStatus: http.StatusForbidden, wantBody: `{"error":"forbidden access","code":"FORBIDDEN"}`},
			}
			for _, tc := range cases {
				req := httptest.NewRequest(r.method, r.path, nil)
				if tc.header != "" {
					req.Header.Set(echo.HeaderAuthorization, tc.header)
				}
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, req)

				assert.Equal(t, tc.wantStatus, rec.Code, tc.name)
				assert.JSONEq(t, tc.wantBody, rec.Body.String(), tc.name)
			}
		})
	}
}

func TestRouter_AdminAllowed(t *testing.T) {
	e, jwtService, users := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, jwtService, "chef@bistro.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":0,"menuItems":0,"orders":0,"revenue":0}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPatch, "/users/admin/65f1a2b3c4d5e6f708192a3b", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, jwtService, "chef@bistro.test"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"65f1a2b3c4d5e6f708192a3b"}, users.updated)
}

func TestRouter_AdminCheckIsSelfOnly(t *testing.T) {
	e, jwtService, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/admin/chef@bistro.test", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, jwtService, "chef@bistro.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/users/admin/chef@bistro.test", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, jwtService, "guest@bistro.test"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	e, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handler.RootMessage, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order-stats", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
