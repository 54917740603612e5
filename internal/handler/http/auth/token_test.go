package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	userUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/user"
)

type stubUserRepo struct {
	users     map[string]*entity.User
	lastSaved *entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}}
}

func (s *stubUserRepo) addUser(t *testing.T, id int64, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	s.users[username] = &entity.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = int64(len(s.users) + 1)
	s.users[u.Username] = u
	s.lastSaved = u
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.users[username], nil
}

func (s *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

type allowAllPolicy struct{}

func (allowAllPolicy) ValidatePassword(_, _ string) error { return nil }

func TestTokenHandler_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecretForHandlers)

	repo := newStubUserRepo()
	repo.addUser(t, 7, "alice", "correct horse battery")
	svc := &userUC.Service{Repo: repo, Policy: allowAllPolicy{}}

	handler := auth.TokenHandler(svc, time.Hour)

	body := `{"username": "alice", "password": "correct horse battery"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("response should carry a token")
	}

	// The issued token must be accepted by the Authz middleware.
	var gotUserID int64
	middleware := auth.Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = auth.UserIDFromContext(r.Context())
	}))
	authedReq := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	authedReq.Header.Set("Authorization", "Bearer "+resp.Token)
	middleware.ServeHTTP(httptest.NewRecorder(), authedReq)

	if gotUserID != 7 {
		t.Errorf("user ID carried by issued token = %d, want 7", gotUserID)
	}
}

func TestTokenHandler_CustomSecretEnv(t *testing.T) {
	auth.SetSecretEnv("BLOG_SIGNING_KEY")
	t.Cleanup(func() { auth.SetSecretEnv("JWT_SECRET") })
	t.Setenv("BLOG_SIGNING_KEY", testSecretForHandlers)
	t.Setenv("JWT_SECRET", "a-different-secret-that-must-not-be-used")

	repo := newStubUserRepo()
	repo.addUser(t, 7, "alice", "correct horse battery")
	svc := &userUC.Service{Repo: repo, Policy: allowAllPolicy{}}

	body := `{"username": "alice", "password": "correct horse battery"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	auth.TokenHandler(svc, time.Hour).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Tokens signed with the configured key must round-trip through Authz.
	var gotUserID int64
	middleware := auth.Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = auth.UserIDFromContext(r.Context())
	}))
	authedReq := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	authedReq.Header.Set("Authorization", "Bearer "+resp.Token)
	middleware.ServeHTTP(httptest.NewRecorder(), authedReq)

	if gotUserID != 7 {
		t.Errorf("user ID carried by issued token = %d, want 7", gotUserID)
	}
}

func TestTokenHandler_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecretForHandlers)

	repo := newStubUserRepo()
	repo.addUser(t, 7, "alice", "correct horse battery")
	svc := &userUC.Service{Repo: repo, Policy: allowAllPolicy{}}

	handler := auth.TokenHandler(svc, time.Hour)

	body := `{"username": "alice", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestTokenHandler_UnknownUser(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecretForHandlers)

	svc := &userUC.Service{Repo: newStubUserRepo(), Policy: allowAllPolicy{}}
	handler := auth.TokenHandler(svc, time.Hour)

	body := `{"username": "nobody", "password": "whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	// Unknown users and wrong passwords must be indistinguishable.
	if !strings.Contains(rec.Body.String(), "invalid username or password") {
		t.Errorf("body = %q, want the uniform credential error", rec.Body.String())
	}
}

func TestTokenHandler_MalformedRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecretForHandlers)

	svc := &userUC.Service{Repo: newStubUserRepo(), Policy: allowAllPolicy{}}
	handler := auth.TokenHandler(svc, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

const testSecretForHandlers = "test-secret-key-at-least-32-characters-long-for-testing"
