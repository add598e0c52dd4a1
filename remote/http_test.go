package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/requests", r.URL.Path)

		json.NewEncoder(w).Encode([]models.Request{
			{ID: "r1", UserID: 1, Type: "Leave", Comment: "x", Status: models.StatusSubmitted},
			{ID: "r2", UserID: 2, Type: "Sick", Comment: "y", Status: models.StatusApproved},
		})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, 5*time.Second)
	requests, err := store.FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "r1", requests[0].ID)
	assert.Equal(t, models.StatusApproved, requests[1].Status)
}

func TestCreateSendsStagedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/requests", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload models.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 1, payload.UserID)
		assert.Equal(t, "Leave", payload.Type)
		assert.Equal(t, models.StatusSubmitted, payload.Status)
		assert.False(t, payload.CreatedAt.IsZero())

		// The server assigns its own id.
		payload.ID = "srv-1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, 5*time.Second)
	created, err := store.Create(context.Background(), models.Request{
		ID:        "staged-1",
		UserID:    1,
		Type:      "Leave",
		Comment:   "Need 2 days",
		Status:    models.StatusSubmitted,
		CreatedAt: time.Now().UTC(),
	})

	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)
}

func TestPatchStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/requests/r1", r.URL.Path)

		var payload map[string]models.Status
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, models.StatusApproved, payload["status"])

		json.NewEncoder(w).Encode(models.Request{
			ID: "r1", UserID: 1, Type: "Leave", Comment: "x", Status: models.StatusApproved,
		})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, 5*time.Second)
	updated, err := store.PatchStatus(context.Background(), "r1", models.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestNon2xxIsSyncFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, 5*time.Second)

	_, err := store.FetchAll(context.Background())
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeSyncFailure))

	_, err = store.PatchStatus(context.Background(), "r1", models.StatusApproved)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeSyncFailure))
}

func TestUnreachableStoreIsSyncFailure(t *testing.T) {
	// Reserve a port and close it so nothing is listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	store := NewHTTPStore(url, time.Second)
	_, err := store.Create(context.Background(), models.Request{})

	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeSyncFailure))
}
