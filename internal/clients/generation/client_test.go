package generation_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heroforge/heroforge-api/internal/clients/generation"
	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
)

// chatStub fakes the chat completions endpoint, returning content as the
// single choice's message body.
func chatStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		body := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
}

func newClient(t *testing.T, baseURL string) generation.Client {
	t.Helper()
	client, err := generation.New(&generation.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestGenerateNarrative_Success(t *testing.T) {
	payload := `{"name":"Kaelen Stormguard","backstory":"Raised by border wardens.","appearance":"Scarred, broad-shouldered, grey cloak.","personality":"Stoic and loyal."}`
	server := chatStub(t, payload)
	defer server.Close()

	client := newClient(t, server.URL)

	out, err := client.GenerateNarrative(context.Background(), &generation.NarrativeInput{
		Archetype: entities.ArchetypeWarrior,
		Tone:      "heroic",
	})
	require.NoError(t, err)

	assert.Equal(t, "Kaelen Stormguard", out.Name)
	assert.Equal(t, "Raised by border wardens.", out.Backstory)
	assert.Equal(t, "Scarred, broad-shouldered, grey cloak.", out.Appearance)
	assert.Equal(t, "Stoic and loyal.", out.Personality)
}

func TestGenerateNarrative_MalformedJSON(t *testing.T) {
	server := chatStub(t, "Once upon a time there was a warrior...")
	defer server.Close()

	client := newClient(t, server.URL)

	_, err := client.GenerateNarrative(context.Background(), &generation.NarrativeInput{
		Archetype: entities.ArchetypeMage,
	})
	assert.Error(t, err)
	assert.True(t, errors.IsGenerationFailed(err))
}

func TestGenerateNarrative_IncompleteCharacter(t *testing.T) {
	server := chatStub(t, `{"name":"Nameless"}`)
	defer server.Close()

	client := newClient(t, server.URL)

	_, err := client.GenerateNarrative(context.Background(), &generation.NarrativeInput{
		Archetype: entities.ArchetypeRogue,
	})
	assert.Error(t, err)
	assert.True(t, errors.IsGenerationFailed(err))
}

func TestGenerateNarrative_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	_, err := client.GenerateNarrative(context.Background(), &generation.NarrativeInput{
		Archetype: entities.ArchetypeBard,
	})
	assert.Error(t, err)
	assert.True(t, errors.IsGenerationFailed(err))
}

func TestGeneratePortrait_Success(t *testing.T) {
	imageBytes := []byte("fake-png-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/images/generations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[{"b64_json":%q}]}`, base64.StdEncoding.EncodeToString(imageBytes))
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	out, err := client.GeneratePortrait(context.Background(), &generation.PortraitInput{
		Description: "Scarred, broad-shouldered, grey cloak.",
	})
	require.NoError(t, err)
	assert.Equal(t, imageBytes, out.Image)
}

func TestGeneratePortrait_EmptyDescription(t *testing.T) {
	client := newClient(t, "http://127.0.0.1:1")

	_, err := client.GeneratePortrait(context.Background(), &generation.PortraitInput{Description: "  "})
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := generation.New(&generation.Config{})
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
