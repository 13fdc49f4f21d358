package pamfax

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConverting(t *testing.T) {
	tests := []struct {
		name  string
		files []FaxStateFile
		want  bool
	}{
		{"no files", nil, false},
		{"all converted", []FaxStateFile{{State: FileStateConverted}, {State: FileStateConverted}}, false},
		{"pending file", []FaxStateFile{{State: FileStateConverted}, {State: FileStatePending}}, true},
		{"converting file", []FaxStateFile{{State: FileStateConverting}, {State: FileStateConverted}}, true},
		{"error state only", []FaxStateFile{{State: "error"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConverting(&FaxState{Files: tt.files}))
		})
	}
}

func TestIsConverting_Nil(t *testing.T) {
	assert.False(t, IsConverting(nil))
}

func TestGetFaxState_Decodes(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointGetFaxState, r.URL.Path)
		writeJSONBody(w, faxStateBody("ready_to_send", "converted"))
	})

	state, err := newTestClient(server).GetFaxState(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ContainerStateReadyToSend, state.ContainerState)
	assert.Equal(t, "ebKVV4XGwx99Wu", state.Container.UUID)
	require.NotNil(t, state.Container.Pages)
	assert.Equal(t, 102, *state.Container.Pages)
	assert.Len(t, state.Files, 1)
	assert.False(t, state.Converting)
}

func TestGetFaxState_RecomputedOnEachFetch(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, sequenceHandler(&calls,
		faxStateBody("editing", "converting"),
		faxStateBody("ready_to_send", "converted"),
	))
	cli := newTestClient(server)

	first, err := cli.GetFaxState(context.Background())
	require.NoError(t, err)
	second, err := cli.GetFaxState(context.Background())
	require.NoError(t, err)

	assert.True(t, first.Converting)
	assert.True(t, IsConverting(first))
	assert.False(t, second.Converting)
	assert.False(t, IsConverting(second))
	assert.NotSame(t, first, second)
}

func TestGetFaxState_FilesWithoutContent(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(w, `{`+okResult+`,"Files":{"type":"list"},"FaxContainer":{"uuid":"x","state":"editing"}}`)
	})

	state, err := newTestClient(server).GetFaxState(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Files)
	assert.False(t, state.Converting)
}

func TestGetFaxState_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing files", `{` + okResult + `,"FaxContainer":{"uuid":"x","state":"editing"}}`},
		{"missing container", `{` + okResult + `,"Files":{"type":"list"}}`},
		{"null container", `{` + okResult + `,"Files":{"type":"list"},"FaxContainer":null}`},
		{"not json", `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSONBody(w, tt.body)
			})

			_, err := newTestClient(server).GetFaxState(context.Background())
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGetFaxState_RequestFailed(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := newTestClient(server).GetFaxState(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestGetFaxState_APIError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(w, `{"result":{"code":"fax_not_found","count":0,"message":"Fax not found"}}`)
	})

	_, err := newTestClient(server).GetFaxState(context.Background())
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeFaxNotFound))
	assert.Contains(t, err.Error(), "Fax not found")
}

func TestWaitForFaxReady_StopsAtReadyToSend(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, sequenceHandler(&calls,
		faxStateBody("converting"),
		faxStateBody("converting"),
		faxStateBody("ready_to_send"),
		faxStateBody("sending"),
	))

	state, err := newTestClient(server).WaitForFaxReady(context.Background(), 5*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, ContainerStateReadyToSend, state.ContainerState)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWaitForFaxReady_WaitsForFileConversion(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, sequenceHandler(&calls,
		faxStateBody("ready_to_send", "converted", "converting"),
		faxStateBody("ready_to_send", "converted", "converted"),
	))

	state, err := newTestClient(server).WaitForFaxReady(context.Background(), 5*time.Millisecond)
	require.NoError(t, err)

	assert.False(t, state.Converting)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWaitForFaxReady_FailedJob(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, sequenceHandler(&calls,
		faxStateBody("converting"),
		faxStateBody("failed"),
	))

	_, err := newTestClient(server).WaitForFaxReady(context.Background(), 5*time.Millisecond)
	assert.ErrorIs(t, err, ErrFaxJobFailed)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWaitForFaxReady_PropagatesFetchError(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSONBody(w, faxStateBody("converting"))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := newTestClient(server).WaitForFaxReady(context.Background(), 5*time.Millisecond)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWaitForFaxReady_NonPositiveIntervalIsClamped(t *testing.T) {
	assert.Equal(t, DefaultPollInterval, normalizePollInterval(0))
	assert.Equal(t, DefaultPollInterval, normalizePollInterval(-time.Second))
	assert.Equal(t, 3*time.Second, normalizePollInterval(3*time.Second))

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(w, faxStateBody("ready_to_send", "converted"))
	})

	state, err := newTestClient(server).WaitForFaxReady(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, ContainerStateReadyToSend, state.ContainerState)
}

func TestWaitForFaxReady_ContextCancelled(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(w, faxStateBody("editing", "converting"))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server).WaitForFaxReady(ctx, 5*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForFaxReady_ProcessingTimeout(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(w, faxStateBody("converting"))
	})

	cli := newTestClient(server, WithProcessingTimeout(50*time.Millisecond))

	_, err := cli.WaitForFaxReady(context.Background(), 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// slowPollServer answers bodies in order after delay and records when each
// request arrived and when its response was written.
type slowPollServer struct {
	mu       sync.Mutex
	started  []time.Time
	finished []time.Time
}

func (s *slowPollServer) handler(delay time.Duration, bodies ...string) http.HandlerFunc {
	var calls atomic.Int32
	next := sequenceHandler(&calls, bodies...)
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.started = append(s.started, time.Now())
		s.mu.Unlock()

		time.Sleep(delay)

		s.mu.Lock()
		s.finished = append(s.finished, time.Now())
		s.mu.Unlock()
		next(w, r)
	}
}

func (s *slowPollServer) assertIdleGaps(t *testing.T, polls int, interval time.Duration) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	require.Len(t, s.started, polls)
	for i := 1; i < polls; i++ {
		gap := s.started[i].Sub(s.finished[i-1])
		assert.GreaterOrEqual(t, gap, interval, "poll %d started %v after the previous response", i+1, gap)
	}
}

func TestWaitForFaxReady_FullIntervalAfterSlowFetch(t *testing.T) {
	const (
		delay    = 60 * time.Millisecond
		interval = 40 * time.Millisecond
	)

	slow := &slowPollServer{}
	server := newTestServer(t, slow.handler(delay,
		faxStateBody("converting", "converting"),
		faxStateBody("converting", "converting"),
		faxStateBody("ready_to_send", "converted"),
	))

	state, err := newTestClient(server).WaitForFaxReady(context.Background(), interval)
	require.NoError(t, err)
	assert.Equal(t, ContainerStateReadyToSend, state.ContainerState)

	slow.assertIdleGaps(t, 3, interval)
}

func TestWaitForPreview_FullIntervalAfterSlowFetch(t *testing.T) {
	const (
		delay    = 60 * time.Millisecond
		interval = 40 * time.Millisecond
	)

	slow := &slowPollServer{}
	server := newTestServer(t, slow.handler(delay,
		`{`+okResult+`,"Status":{"open":2,"done":0},"PreviewPages":{"type":"list"}}`,
		`{`+okResult+`,"Status":{"open":0,"done":2},"PreviewPages":{"type":"list"}}`,
	))

	_, err := newTestClient(server).WaitForPreview(context.Background(), "ebKVV4XGwx99Wu", interval)
	require.NoError(t, err)

	slow.assertIdleGaps(t, 2, interval)
}
