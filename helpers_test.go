package pamfax

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const okResult = `"result":{"code":"success","count":1,"message":""}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// newTestClient returns a logged-in client talking to server.
func newTestClient(server *httptest.Server, opts ...Option) Client {
	base := []Option{
		WithBaseURL(server.URL),
		WithAPIKey("key", "secret"),
		WithUserToken("token"),
		WithUserIP("10.0.0.1"),
	}
	return NewClient(append(base, opts...)...)
}

func writeJSONBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = io.WriteString(w, body)
}

func faxStateBody(containerState string, fileStates ...string) string {
	files := make([]string, 0, len(fileStates))
	for i, state := range fileStates {
		files = append(files, fmt.Sprintf(`{"file_order":%d,"state":%q}`, i, state))
	}

	return fmt.Sprintf(`{%s,"Files":{"type":"list","content":[%s]},"FaxContainer":{"uuid":"ebKVV4XGwx99Wu","state":%q,"price":18.36,"pages":102,"cover_id":3}}`,
		okResult, strings.Join(files, ","), containerState)
}

// sequenceHandler answers each request with the next body and repeats the last one.
func sequenceHandler(calls *atomic.Int32, bodies ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1))
		if n > len(bodies) {
			n = len(bodies)
		}
		writeJSONBody(w, bodies[n-1])
	}
}
