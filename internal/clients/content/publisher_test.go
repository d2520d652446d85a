package content_test

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

	"github.com/heroforge/heroforge-api/internal/clients/content"
	"github.com/heroforge/heroforge-api/internal/errors"
)

func pinStub(t *testing.T, cid string, gotName *string, gotData *[]byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/pins", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		buf, err := io.ReadAll(file)
		require.NoError(t, err)

		*gotName = header.Filename
		*gotData = buf

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"cid":%q}`, cid)
	}))
}

func TestPublishBytes_Success(t *testing.T) {
	var gotName string
	var gotData []byte
	server := pinStub(t, "QmImage123", &gotName, &gotData)
	defer server.Close()

	publisher, err := content.NewPinning(&content.PinningConfig{Endpoint: server.URL, Token: "secret"})
	require.NoError(t, err)

	out, err := publisher.PublishBytes(context.Background(), &content.PublishBytesInput{
		Data:        []byte("png-bytes"),
		DisplayName: "hero-portrait.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, "ipfs://QmImage123", out.URI)
	assert.Equal(t, "hero-portrait.png", gotName)
	assert.Equal(t, []byte("png-bytes"), gotData)
}

func TestPublishJSON_Success(t *testing.T) {
	var gotName string
	var gotData []byte
	server := pinStub(t, "QmMeta456", &gotName, &gotData)
	defer server.Close()

	publisher, err := content.NewPinning(&content.PinningConfig{Endpoint: server.URL})
	require.NoError(t, err)

	doc := map[string]string{"name": "Kaelen"}
	out, err := publisher.PublishJSON(context.Background(), &content.PublishJSONInput{
		Value:       doc,
		DisplayName: "hero-metadata.json",
	})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://QmMeta456", out.URI)

	var round map[string]string
	require.NoError(t, json.Unmarshal(gotData, &round))
	assert.Equal(t, doc, round)
}

func TestPublishBytes_EmptyData(t *testing.T) {
	publisher, err := content.NewPinning(&content.PinningConfig{Endpoint: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = publisher.PublishBytes(context.Background(), &content.PublishBytesInput{})
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPublish_RejectionMapsToPublishFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer server.Close()

	publisher, err := content.NewPinning(&content.PinningConfig{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = publisher.PublishBytes(context.Background(), &content.PublishBytesInput{
		Data:        []byte("png-bytes"),
		DisplayName: "hero.png",
	})
	assert.Error(t, err)
	assert.True(t, errors.IsPublishFailed(err))
}

func TestPublish_TransportErrorMapsToPublishFailed(t *testing.T) {
	publisher, err := content.NewPinning(&content.PinningConfig{Endpoint: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = publisher.PublishBytes(context.Background(), &content.PublishBytesInput{
		Data:        []byte("png-bytes"),
		DisplayName: "hero.png",
	})
	assert.Error(t, err)
	assert.True(t, errors.IsPublishFailed(err))
}

func TestNewPinning_RequiresEndpoint(t *testing.T) {
	_, err := content.NewPinning(&content.PinningConfig{})
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
