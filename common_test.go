package pamfax

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFile_Binary(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointGetFile, r.URL.Path)
		assert.Equal(t, "CwPx31xjl9k7Cp", r.URL.Query().Get("file_uuid"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="Tropo.pdf"`)
		_, _ = w.Write([]byte(samplePDF))
	})

	file, err := newTestClient(server).GetFile(context.Background(), "CwPx31xjl9k7Cp")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "Tropo.pdf", file.Name)
	assert.Equal(t, samplePDF, string(file.Data))
}

func TestGetFile_JSONErrorAnswer(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(w, `{"result":{"code":"file_not_found","count":0,"message":"File not found"}}`)
	})

	_, err := newTestClient(server).GetFile(context.Background(), "missing")
	assert.True(t, IsCode(err, "file_not_found"))
}

func TestGetFile_JSONSuccessIsMalformed(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(w, `{`+okResult+`}`)
	})

	_, err := newTestClient(server).GetFile(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetFileTo_Streams(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG\r\n\x1a\nrest"))
	})

	var buf bytes.Buffer
	contentType, err := newTestClient(server).GetFileTo(context.Background(), "x", &buf)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "\x89PNG\r\n\x1a\nrest", buf.String())
}

func TestGetFileTo_HTTPError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	var buf bytes.Buffer
	_, err := newTestClient(server).GetFileTo(context.Background(), "x", &buf)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Zero(t, buf.Len())
}

func TestGetFileTo_NilWriter(t *testing.T) {
	_, err := NewClient(WithUserToken("t")).GetFileTo(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ErrNilWriter)
}

func TestGetPagePreview_InvalidPage(t *testing.T) {
	_, err := NewClient().GetPagePreview(context.Background(), "uuid", 0)
	assert.ErrorIs(t, err, ErrInvalidPageRange)
}

func TestListCurrencies_OptionalCode(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.Query().Get("code"))
		mu.Unlock()
		writeJSONBody(w, `{`+okResult+`,"Currencies":{"type":"list","content":[{"code":"JPY"}]}}`)
	})

	cli := newTestClient(server)
	_, err := cli.ListCurrencies(context.Background(), "")
	require.NoError(t, err)
	payload, err := cli.ListCurrencies(context.Background(), "JPY")
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, []string{"", "JPY"}, seen)
	mu.Unlock()

	var currencies List[struct {
		Code string `json:"code"`
	}]
	require.NoError(t, payload.Decode("Currencies", &currencies))
	assert.Equal(t, "JPY", currencies.Content[0].Code)
}
