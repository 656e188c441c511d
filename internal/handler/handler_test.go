package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-go/internal/config"
	"github.com/tasknest/tasknest-go/internal/middleware"
	"github.com/tasknest/tasknest-go/internal/repository"
	"github.com/tasknest/tasknest-go/internal/service"
	"github.com/tasknest/tasknest-go/migrations"
)

const testSecret = "test-secret"

type testEnv struct {
	db     *sql.DB
	router chi.Router
}

// setupTestEnv wires the full stack against an in-memory SQLite database,
// with the same routes main registers.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := repository.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Migrate(db))

	cfg := config.Config{JWTSecret: testSecret, TokenTTL: time.Hour}

	authHandler := NewAuthHandler(service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.TokenTTL))
	taskHandler := NewTaskHandler(service.NewTaskService(repository.NewTaskRepository(db)))

	r := chi.NewRouter()
	r.Post("/register", authHandler.HandleRegister)
	r.Post("/login", authHandler.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.JWTSecret))
		r.Post("/tasks", taskHandler.HandleCreateTask)
		r.Get("/tasks", taskHandler.HandleListTasks)
		r.Put("/tasks/{id}", taskHandler.HandleUpdateTask)
		r.Delete("/tasks/{id}", taskHandler.HandleDeleteTask)
	})

	return testEnv{db: db, router: r}
}

func (e testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func (e testEnv) register(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodPost, "/register", "", map[string]string{
		"username": username,
		"password": password,
	})
}

func (e testEnv) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
}

func (e testEnv) loginToken(t *testing.T, username, password string) string {
	t.Helper()

	w := e.login(t, username, password)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody[map[string]string](t, w)
	require.NotEmpty(t, body["token"])
	return body["token"]
}
