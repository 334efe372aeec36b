package automation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		RetryDelay: 10 * time.Millisecond,
	}, testLogger())
}

func TestLinkedInAuth(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linkedin/auth", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "user@example.com", payload["email"])
		assert.Equal(t, "cookie-value", payload["li_at_cookie"])

		json.NewEncoder(w).Encode(LinkedInAuthResult{
			Success:     true,
			ProfileName: "Jane Doe",
			SessionID:   "sess-1",
		})
	}))

	result, err := client.LinkedInAuth(context.Background(), "user@example.com", "pw", "cookie-value")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Jane Doe", result.ProfileName)
	assert.Equal(t, "sess-1", result.SessionID)
}

func TestLinkedInProfilePosts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linkedin/profile-posts", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sess-1", payload["session_id"])
		assert.Equal(t, "jane-doe", payload["public_id"])
		assert.Equal(t, float64(5), payload["max_posts"])

		json.NewEncoder(w).Encode(LinkedInPostsResult{
			Success: true,
			Posts: []PostItem{
				{ExternalID: "7100000000000000001", Content: "post body", URL: "https://www.linkedin.com/feed/update/urn:li:activity:7100000000000000001", Author: "Jane Doe"},
			},
			FetchedCount: 1,
		})
	}))

	result, err := client.LinkedInProfilePosts(context.Background(), "sess-1", "jane-doe", 5)
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "7100000000000000001", result.Posts[0].ExternalID)
}

func TestTwitterTimeline(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/twitter/timeline", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sess-2", payload["session_id"])
		assert.Equal(t, float64(20), payload["max_tweets"])

		json.NewEncoder(w).Encode(TwitterTimelineResult{
			Success:      true,
			Tweets:       []PostItem{{ExternalID: "1800000000000000001", Content: "tweet"}},
			FetchedCount: 1,
		})
	}))

	result, err := client.TwitterTimeline(context.Background(), "sess-2", 20)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.FetchedCount)
}

func TestPostRetriesTransportFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(SessionTestResult{Success: true, ProfileName: "Jane Doe"})
	}))

	result, err := client.LinkedInTest(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPostExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.TwitterTest(context.Background(), "sess-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestPostRespectsContextCancellation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.LinkedInDisconnect(ctx, "sess-1")
	require.Error(t, err)
}

func TestAuthErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(LinkedInAuthResult{Success: false, Error: "invalid credentials"})
	}))

	result, err := client.LinkedInAuth(context.Background(), "user@example.com", "wrong", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "invalid credentials", result.Error)
	assert.Equal(t, int32(1), calls.Load())
}
