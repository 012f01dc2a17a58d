package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "test-key", "test-model", 0.7)
	return srv, client
}

func replyWith(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	return body
}

func TestAdviseSendsExpectedRequest(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(replyWith("Eat more protein."))
	})

	reply, err := client.Advise(context.Background(), "How do I build muscle?")
	require.NoError(t, err)
	assert.Equal(t, "Eat more protein.", reply)

	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotBody.Contents, 1, "exactly one turn per request, no history")
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "How do I build muscle?", gotBody.Contents[0].Parts[0].Text)
	require.NotEmpty(t, gotBody.SystemInstruction.Parts)
	assert.Equal(t, systemInstruction, gotBody.SystemInstruction.Parts[0].Text)
	assert.InDelta(t, 0.7, gotBody.GenerationConfig.Temperature, 0.001)
}

func TestAdviseNonOKStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	})

	_, err := client.Advise(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAdviseEmptyCandidates(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Advise(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestAdviseMalformedJSON(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Advise(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
