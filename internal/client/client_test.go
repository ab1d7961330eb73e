package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goods/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGoodsSendsPagingAndOmitsEmptySearch(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"name":"Gadget","status":"locked"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)

	goods, info, err := c.ListGoods(context.Background(), "", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.Good{{ID: 2, Name: "Gadget", Status: models.StatusLocked}}, goods)
	assert.Equal(t, http.StatusOK, info.StatusCode)
	assert.Equal(t, "application/json", info.ContentType)

	_, _, err = c.ListGoods(context.Background(), "wid get", 10, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"limit=1&offset=1", "limit=10&offset=0&search=wid+get"}, seen)
}

func TestSetStatusPostsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lock", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "locked", body["status"])
		_, _ = w.Write([]byte(`{"message":"Good 1 status set to locked.","id":1,"status":"locked"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, time.Second).SetStatus(context.Background(), 1, models.StatusLocked)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLocked, res.Status)
	assert.Equal(t, "Good 1 status set to locked.", res.Message)
}

func TestErrorPayloadBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"good 99 not found","code":"not_found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).SetStatus(context.Background(), 99, models.StatusLocked)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "404 good 99 not found", apiErr.Error())
}

func TestNonJSONErrorStillReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, info, err := New(srv.URL, time.Second).ListGoods(context.Background(), "", 10, 0)
	require.Error(t, err)
	assert.Equal(t, "502 Bad Gateway", err.Error())
	assert.Contains(t, string(info.Body), "bad gateway")
}

func TestTimeoutIsAFailure(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, _, err := New(srv.URL, 50*time.Millisecond).ListGoods(context.Background(), "", 10, 0)
	require.Error(t, err)
}
