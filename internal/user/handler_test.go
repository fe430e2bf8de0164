package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
	"github.com/lucalvex/hub-projeto-diag-api/internal/user"
)

type fakeRepo struct {
	users map[string]*user.User
}

func (f *fakeRepo) Create(u *user.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeRepo) GetByID(id string) (*user.User, error) {
	return f.users[id], nil
}

func (f *fakeRepo) GetByUsername(username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func TestGetUser(t *testing.T) {
	known := &user.User{ID: uuid.New(), Username: "maria", Email: "maria@example.com", Name: "Maria Souza"}
	repo := &fakeRepo{users: map[string]*user.User{known.ID.String(): known}}
	h := user.NewHandler(user.NewService(repo))

	call := func(userID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		if userID != "" {
			req = req.WithContext(auth.WithClaims(req.Context(), &auth.Claims{UserID: userID}))
		}
		rec := httptest.NewRecorder()
		h.GetUser(rec, req)
		return rec
	}

	t.Run("Found", func(t *testing.T) {
		rec := call(known.ID.String())
		require.Equal(t, http.StatusOK, rec.Code)

		var got user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "maria", got.Username)
		assert.Equal(t, "Maria Souza", got.DisplayName())
	})

	t.Run("UnknownUser", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, call(uuid.NewString()).Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, call("nao-e-uuid").Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("").Code)
	})
}
