package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simplesocial/internal/config"
	"simplesocial/internal/models"
	"simplesocial/internal/storage"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestRepository(t *testing.T, token string, handler http.HandlerFunc) *Repository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Backend: config.Backend{BaseURL: server.URL}}
	client := NewClient(cfg, staticToken(token), zap.NewNop())
	return NewRepository(client)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestUserRepository_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/jwt/login", r.URL.Path)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "user@example.com", r.PostForm.Get("username"))
			assert.Equal(t, "secret", r.PostForm.Get("password"))

			writeJSON(w, http.StatusOK, map[string]string{"access_token": "jwt-123", "token_type": "bearer"})
		})

		token, err := repo.User.Login(context.Background(), "user@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "jwt-123", token)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "LOGIN_BAD_CREDENTIALS"})
		})

		token, err := repo.User.Login(context.Background(), "user@example.com", "wrong")

		assert.Empty(t, token)
		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, "login", authErr.Op)
	})

	t.Run("Empty token", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{})
		})

		_, err := repo.User.Login(context.Background(), "user@example.com", "secret")

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
	})
}

func TestUserRepository_Register(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/register", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"email": "new@example.com", "password": "secret"}, body)

			writeJSON(w, http.StatusCreated, map[string]string{"id": "u-1", "email": "new@example.com"})
		})

		err := repo.User.Register(context.Background(), "new@example.com", "secret")

		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"String detail", `{"detail":"REGISTER_USER_ALREADY_EXISTS"}`, "REGISTER_USER_ALREADY_EXISTS"},
		{"Structured detail", `{"detail":{"code":"REGISTER_INVALID_PASSWORD","reason":"too short"}}`,
			`{"code":"REGISTER_INVALID_PASSWORD","reason":"too short"}`},
		{"Missing detail", `{}`, "Registration failed"},
		{"Null detail", `{"detail":null}`, "Registration failed"},
		{"Not JSON", `<html>oops</html>`, "Registration failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				io.WriteString(w, tt.body)
			})

			err := repo.User.Register(context.Background(), "new@example.com", "secret")

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.message, authErr.Message)
		})
	}
}

func TestUserRepository_CurrentUser(t *testing.T) {
	t.Run("Uses explicit token", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/me", r.URL.Path)
			assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, models.User{ID: "u-1", Email: "user@example.com", IsActive: true})
		})

		user, err := repo.User.CurrentUser(context.Background(), "fresh-token")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
		assert.True(t, user.IsActive)
	})

	t.Run("Numeric id", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"id": 7, "email": "user@example.com"}`)
		})

		user, err := repo.User.CurrentUser(context.Background(), "fresh-token")

		require.NoError(t, err)
		assert.Equal(t, models.ID("7"), user.ID)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Unauthorized"})
		})

		user, err := repo.User.CurrentUser(context.Background(), "stale")

		assert.Nil(t, user)
		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
	})
}

func TestPostRepository_Feed(t *testing.T) {
	t.Run("Keeps server order and sends bearer token", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/feed", r.URL.Path)
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			io.WriteString(w, `[
				{"id": 3, "email": "c@example.com", "created_at": "2024-05-03T00:00:00", "file_type": "image", "url": "http://cdn/x/c.jpg", "is_owner": false},
				{"id": 1, "email": "a@example.com", "created_at": "2024-05-01T00:00:00", "file_type": "video", "url": "http://cdn/x/a.mp4", "is_owner": true}
			]`)
		})

		posts, err := repo.Post.Feed(context.Background())

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, models.PostID("3"), posts[0].ID)
		assert.Equal(t, models.PostID("1"), posts[1].ID)
	})

	t.Run("Empty feed", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[]`)
		})

		posts, err := repo.Post.Feed(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("No token sends no header", func(t *testing.T) {
		repo := newTestRepository(t, "", func(w http.ResponseWriter, r *http.Request) {
			_, present := r.Header["Authorization"]
			assert.False(t, present)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Unauthorized"})
		})

		_, err := repo.Post.Feed(context.Background())

		var netErr *NetworkError
		require.True(t, errors.As(err, &netErr))
		assert.Equal(t, http.StatusUnauthorized, netErr.StatusCode)
	})
}

func TestPostRepository_Feed_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	cfg := &config.Config{Backend: config.Backend{BaseURL: server.URL}}
	server.Close()

	repo := NewRepository(NewClient(cfg, staticToken("t"), nil))
	_, err := repo.Post.Feed(context.Background())

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, 0, netErr.StatusCode)
	assert.Error(t, errors.Unwrap(err))
}

func TestPostRepository_Upload(t *testing.T) {
	media := &storage.Media{Name: "photo.png", ContentType: "image/png", Data: []byte("png-bytes"), Size: 9}

	t.Run("Multipart with file and caption", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/upload", r.URL.Path)
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			require.NoError(t, r.ParseMultipartForm(1<<20))

			assert.Equal(t, "sunny day", r.FormValue("caption"))
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			data, _ := io.ReadAll(file)

			assert.Equal(t, "photo.png", header.Filename)
			assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
			assert.Equal(t, "png-bytes", string(data))

			writeJSON(w, http.StatusOK, map[string]string{"id": "p-1"})
		})

		err := repo.Post.Upload(context.Background(), media, "sunny day")

		assert.NoError(t, err)
	})

	t.Run("Server error", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		err := repo.Post.Upload(context.Background(), media, "")

		var netErr *NetworkError
		require.True(t, errors.As(err, &netErr))
		assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
		assert.Contains(t, err.Error(), "upload")
	})

	t.Run("Nil media", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		assert.Error(t, repo.Post.Upload(context.Background(), nil, ""))
	})
}

func TestPostRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/posts/42", r.URL.Path)
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		})

		assert.NoError(t, repo.Post.Delete(context.Background(), "42"))
	})

	t.Run("Forbidden", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]string{"detail": "not yours"})
		})

		err := repo.Post.Delete(context.Background(), "42")

		var netErr *NetworkError
		require.True(t, errors.As(err, &netErr))
		assert.Equal(t, http.StatusForbidden, netErr.StatusCode)
	})

	t.Run("Empty id", func(t *testing.T) {
		repo := newTestRepository(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		assert.Error(t, repo.Post.Delete(context.Background(), ""))
	})
}
