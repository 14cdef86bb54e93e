package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAzureClientComplete(t *testing.T) {
	var (
		gotPath    string
		gotKey     string
		gotVersion string
		gotBody    []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		gotVersion = r.URL.Query().Get("api-version")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`)
	}))
	defer server.Close()

	client := NewAzureClient(AzureClientConfig{
		Endpoint:   server.URL,
		APIKey:     "secret",
		Deployment: "gpt-4",
		APIVersion: "2023-03-15-preview",
	})

	reply, err := client.Complete(context.Background(), BuildMessages(SystemInstruction, "", nil, "hi"))
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "2023-03-15-preview", gotVersion)
	assert.Contains(t, gotPath, "chat/completions")

	var payload struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	require.Len(t, payload.Messages, 2)
	assert.Equal(t, "system", payload.Messages[0].Role)
	assert.Equal(t, "user", payload.Messages[1].Role)
	assert.Equal(t, "hi", payload.Messages[1].Content)
}

func TestAzureClientCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	client := NewAzureClient(AzureClientConfig{
		Endpoint:   server.URL,
		APIKey:     "secret",
		Deployment: "gpt-4",
		APIVersion: "2023-03-15-preview",
	})

	_, err := client.Complete(context.Background(), BuildMessages(SystemInstruction, "", nil, "hi"))
	require.EqualError(t, err, "empty completion choices")
}

func TestAzureClientCompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"error":{"message":"bad key"}}`)
	}))
	defer server.Close()

	client := NewAzureClient(AzureClientConfig{
		Endpoint:   server.URL,
		APIKey:     "wrong",
		Deployment: "gpt-4",
		APIVersion: "2023-03-15-preview",
	})

	_, err := client.Complete(context.Background(), BuildMessages(SystemInstruction, "", nil, "hi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion request")
}
