package pamfax

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// faxStateResponse is the wire shape of FaxJob/GetFaxState.
// Files and FaxContainer stay raw so a missing member can be told apart from an empty one.
type faxStateResponse struct {
	Result       Result          `json:"result"`
	Files        json.RawMessage `json:"Files"`
	FaxContainer json.RawMessage `json:"FaxContainer"`
}

// GetFaxState fetches the build progress of the current fax job.
func (c *client) GetFaxState(ctx context.Context) (*FaxState, error) {
	var resp faxStateResponse
	if err := c.get(ctx, OperationGetFaxState, EndpointGetFaxState, nil, &resp); err != nil {
		return nil, err
	}

	return newFaxState(resp)
}

func newFaxState(resp faxStateResponse) (*FaxState, error) {
	if isAbsent(resp.FaxContainer) {
		return nil, errMalformed(OperationGetFaxState, "response has no FaxContainer")
	}

	var container FaxContainer
	if err := json.Unmarshal(resp.FaxContainer, &container); err != nil {
		return nil, errMalformed(OperationGetFaxState, "decode FaxContainer: %v", err)
	}

	if isAbsent(resp.Files) {
		return nil, errMalformed(OperationGetFaxState, "response has no Files")
	}

	// A Files member without content means no files have been added yet.
	var files List[FaxStateFile]
	if err := json.Unmarshal(resp.Files, &files); err != nil {
		return nil, errMalformed(OperationGetFaxState, "decode Files: %v", err)
	}

	return &FaxState{
		Result:         resp.Result,
		ContainerState: container.State,
		Container:      container,
		Files:          files.Content,
		Converting:     filesConverting(files.Content),
	}, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// IsConverting reports whether any file of the job is still pending or converting.
func IsConverting(state *FaxState) bool {
	if state == nil {
		return false
	}
	return filesConverting(state.Files)
}

func filesConverting(files []FaxStateFile) bool {
	for _, file := range files {
		if file.State == FileStatePending || file.State == FileStateConverting {
			return true
		}
	}
	return false
}

// WaitForFaxReady polls the fax job until it is ready to send (or already sending/sent),
// it fails, or ctx ends. A non-positive pollInterval is clamped to DefaultPollInterval.
func (c *client) WaitForFaxReady(ctx context.Context, pollInterval time.Duration) (*FaxState, error) {
	return waitWithPolling(ctx, pollInterval, OperationFaxReady, c.processingTimeout, c.GetFaxState, func(state *FaxState) (bool, error) {
		switch {
		case state.ContainerState.Failed():
			return false, fmt.Errorf("fax job %s is %s: %w", state.Container.UUID, state.ContainerState, ErrFaxJobFailed)
		case state.ContainerState.Ready() && !state.Converting:
			return true, nil
		default:
			return false, nil
		}
	})
}
