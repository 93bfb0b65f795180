package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycrmsystems/elatco-will-system/internal/config"
	"github.com/mycrmsystems/elatco-will-system/internal/sessions"
)

// fake sessions repo
type fakeSessionsRepo struct {
	store map[string]*sessions.Session
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *sessions.Session) error {
	if f.store == nil {
		f.store = map[string]*sessions.Session{}
	}
	f.store[s.RefreshToken] = s
	return nil
}
func (f *fakeSessionsRepo) GetByRefresh(ctx context.Context, refresh string) (*sessions.Session, error) {
	s, ok := f.store[refresh]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (f *fakeSessionsRepo) DeleteByRefresh(ctx context.Context, refresh string) error {
	delete(f.store, refresh)
	return nil
}

func testAuthRouter(repo *fakeSessionsRepo) (*gin.Engine, *config.Config) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "auth-test-secret-32-bytes-xxxxxxxx"
	cfg.JWT.AccessTokenTTL = 15 * time.Minute
	cfg.JWT.RefreshTokenTTL = 24 * time.Hour
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "s3cret"

	h := NewAuthHandler(cfg, sessions.NewService(repo))
	r := gin.New()
	h.Register(r.Group("/"))
	return r, cfg
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeSessionsRepo{}
	r, _ := testAuthRouter(repo)

	w := postJSON(r, "/auth/login", `{"email":"Admin@Example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got["accessToken"])
	assert.NotEmpty(t, got["refreshToken"])

	// refresh session was persisted
	assert.Len(t, repo.store, 1)
}

func TestLoginWrongCredentials(t *testing.T) {
	r, _ := testAuthRouter(&fakeSessionsRepo{})

	w := postJSON(r, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/auth/login", `{"email":"other@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/auth/login", `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshRejectsForeignSubject(t *testing.T) {
	repo := &fakeSessionsRepo{}
	r, _ := testAuthRouter(repo)

	// a session minted for any other subject must not refresh the admin area
	require.NoError(t, repo.Create(context.Background(), &sessions.Session{
		RefreshToken: "foreign",
		Subject:      "someone-else",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}))

	w := postJSON(r, "/auth/refresh", `{"refresh_token":"foreign"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshFlow(t *testing.T) {
	repo := &fakeSessionsRepo{}
	r, _ := testAuthRouter(repo)

	w := postJSON(r, "/auth/login", `{"email":"admin@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	refresh := login["refreshToken"].(string)

	w = postJSON(r, "/auth/refresh", `{"refresh_token":"`+refresh+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/auth/refresh", `{"refresh_token":"bogus"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutDeletesSession(t *testing.T) {
	repo := &fakeSessionsRepo{}
	r, _ := testAuthRouter(repo)

	w := postJSON(r, "/auth/login", `{"email":"admin@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	refresh := login["refreshToken"].(string)

	w = postJSON(r, "/auth/logout", `{"refresh_token":"`+refresh+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.store)

	// the deleted refresh token no longer works
	w = postJSON(r, "/auth/refresh", `{"refresh_token":"`+refresh+`"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
