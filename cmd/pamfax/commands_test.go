package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pamfax "github.com/dynaptico/pamfax-go"
)

const okResult = `"result":{"code":"success","count":1,"message":""}`

type fakePamFax struct {
	mu         sync.Mutex
	paths      []string
	stateCalls atomic.Int32
	sendCode   string
}

func (f *fakePamFax) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.mu.Unlock()

	if r.URL.Path != pamfax.EndpointVerifyUser && r.URL.Query().Get("usertoken") != "tok-1" {
		writeBody(w, `{"result":{"code":"invalid_token","count":0,"message":""}}`)
		return
	}

	switch r.URL.Path {
	case pamfax.EndpointVerifyUser:
		writeBody(w, `{`+okResult+`,"UserToken":{"token":"tok-1"}}`)
	case pamfax.EndpointCreate:
		writeBody(w, `{`+okResult+`,"FaxContainer":{"uuid":"ebKVV4XGwx99Wu","state":"editing"}}`)
	case pamfax.EndpointAddFile:
		writeBody(w, `{`+okResult+`,"FaxContainerFile":{"name":"doc.pdf","file_uuid":"JNMi19AeQ6QkoC","state":""}}`)
	case pamfax.EndpointAddRecipient:
		writeBody(w, `{`+okResult+`,"FaxRecipient":{"number":"+14155551212","price_per_page":0.09}}`)
	case pamfax.EndpointGetFaxState:
		if f.stateCalls.Add(1) == 1 {
			writeBody(w, `{`+okResult+`,"FaxContainer":{"uuid":"ebKVV4XGwx99Wu","state":"converting"},"Files":{"type":"list","content":[{"file_order":0,"state":""}]}}`)
			return
		}
		writeBody(w, `{`+okResult+`,"FaxContainer":{"uuid":"ebKVV4XGwx99Wu","state":"ready_to_send","price":0.09},"Files":{"type":"list","content":[{"file_order":0,"state":"converted"}]}}`)
	case pamfax.EndpointSend:
		if f.sendCode != "" {
			writeBody(w, `{"result":{"code":"`+f.sendCode+`","count":0,"message":""}}`)
			return
		}
		writeBody(w, `{`+okResult+`}`)
	case pamfax.EndpointGetFile:
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4\n%%EOF\n"))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakePamFax) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func writeBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func runCLI(t *testing.T, server *httptest.Server, failLog string, args ...string) (string, string, error) {
	t.Helper()
	clearPamFaxEnv(t)

	base := []string{
		"--api-key", "key",
		"--api-secret", "secret",
		"--username", "alice",
		"--password", "pw",
		"--base-url", server.URL,
		"--env-file", "",
		"--fail-log", failLog,
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append(base, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeSampleDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), 0o600))
	return path
}

func TestSendCommand(t *testing.T) {
	fake := &fakePamFax{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	_, logs, err := runCLI(t, server, filepath.Join(t.TempDir(), "fail.log"),
		"send", "--to", "+14155551212", "--file", writeSampleDocument(t), "--interval", "1ms")
	require.NoError(t, err)

	assert.Equal(t, []string{
		pamfax.EndpointVerifyUser,
		pamfax.EndpointCreate,
		pamfax.EndpointAddFile,
		pamfax.EndpointAddRecipient,
		pamfax.EndpointGetFaxState,
		pamfax.EndpointGetFaxState,
		pamfax.EndpointSend,
	}, fake.called())
	assert.Contains(t, logs, `msg="Fax job ready"`)
	assert.Contains(t, logs, "state=ready_to_send")
	assert.Contains(t, logs, `msg="Fax submitted"`)
}

func TestSendCommand_NoSendPrintsState(t *testing.T) {
	fake := &fakePamFax{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	out, _, err := runCLI(t, server, "", "--format", "yaml",
		"send", "--to", "+14155551212", "--file", writeSampleDocument(t), "--interval", "1ms", "--no-send")
	require.NoError(t, err)

	assert.Contains(t, out, "container_state: ready_to_send\n")
	assert.NotContains(t, fake.called(), pamfax.EndpointSend)
}

func TestSendCommand_NotEnoughCredit(t *testing.T) {
	fake := &fakePamFax{sendCode: pamfax.CodeNotEnoughCredit}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	failLog := filepath.Join(t.TempDir(), "fail.log")

	_, _, err := runCLI(t, server, failLog,
		"send", "--to", "+14155551212", "--file", writeSampleDocument(t), "--interval", "1ms")
	require.Error(t, err)
	assert.True(t, pamfax.IsCode(err, pamfax.CodeNotEnoughCredit))
	assert.Contains(t, err.Error(), "--later")

	content, readErr := os.ReadFile(failLog)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "fax=ebKVV4XGwx99Wu\ttarget=send")
}

func TestSendCommand_RequiresRecipient(t *testing.T) {
	server := httptest.NewServer(&fakePamFax{})
	t.Cleanup(server.Close)

	_, _, err := runCLI(t, server, "", "send", "--file", writeSampleDocument(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--to")
}

func TestStateCommand_WithUserToken(t *testing.T) {
	fake := &fakePamFax{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	out, _, err := runCLI(t, server, "", "--user-token", "tok-1", "state")
	require.NoError(t, err)

	assert.Equal(t, []string{pamfax.EndpointGetFaxState}, fake.called(), "a user token skips VerifyUser")
	assert.Contains(t, out, `"container_state": "converting"`)
	assert.Contains(t, out, `"converting": true`)
}

func TestFileCommand_NamesDownloadByType(t *testing.T) {
	server := httptest.NewServer(&fakePamFax{})
	t.Cleanup(server.Close)
	dir := t.TempDir()

	_, _, err := runCLI(t, server, "", "file", "CwPx31xjl9k7Cp", "--dir", dir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "CwPx31xjl9k7Cp.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4\n%%EOF\n", string(content))

	_, err = os.Stat(filepath.Join(dir, "CwPx31xjl9k7Cp.download"))
	assert.True(t, os.IsNotExist(err))
}

func TestSendCommand_NoWaitPrintsSession(t *testing.T) {
	fake := &fakePamFax{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	out, logs, err := runCLI(t, server, "",
		"send", "--to", "+14155551212", "--file", writeSampleDocument(t), "--wait=false")
	require.NoError(t, err)

	assert.Contains(t, out, `"fax_uuid": "ebKVV4XGwx99Wu"`)
	assert.Contains(t, out, `"user_token": "tok-1"`)
	assert.NotContains(t, logs, "tok-1", "the session token stays out of the console log")
	assert.NotContains(t, fake.called(), pamfax.EndpointGetFaxState)
}

type streamingUploader struct {
	pamfax.FaxJobAPI
	filename string
	reader   io.Reader
	content  string
}

func (u *streamingUploader) AddFileReader(ctx context.Context, filename string, r io.Reader) (*pamfax.FaxContainerFileResponse, error) {
	u.filename = filename
	u.reader = r
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	u.content = string(data)
	return &pamfax.FaxContainerFileResponse{}, nil
}

func TestUploadFile_StreamsFromDisk(t *testing.T) {
	path := writeSampleDocument(t)
	uploader := &streamingUploader{}

	_, err := uploadFile(context.Background(), uploader, path)
	require.NoError(t, err)

	assert.Equal(t, path, uploader.filename)
	assert.IsType(t, &os.File{}, uploader.reader, "documents are streamed, not read into memory first")
	assert.Equal(t, "%PDF-1.4\n%%EOF\n", uploader.content)

	_, err = uploadFile(context.Background(), uploader, filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
