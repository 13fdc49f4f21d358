package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var failureLogMu sync.Mutex

// logFailure appends one tab separated line per failed operation.
func logFailure(path, faxUUID, target string, err error) error {
	if path == "" {
		return nil
	}

	if faxUUID == "" {
		faxUUID = "-"
	}
	line := fmt.Sprintf("%s\tlevel=ERROR\tfax=%s\ttarget=%s\tmessage=%v\n",
		time.Now().Format(time.RFC3339), faxUUID, target, err)

	failureLogMu.Lock()
	defer failureLogMu.Unlock()

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return mkErr
		}
	}

	f, openErr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if openErr != nil {
		return openErr
	}
	defer f.Close()

	_, writeErr := f.WriteString(line)
	return writeErr
}

// recordFailure writes err to the fail log and returns it, joined with any
// error hit while writing the log.
func recordFailure(path, faxUUID, target string, err error) error {
	if logErr := logFailure(path, faxUUID, target, err); logErr != nil {
		return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
	}
	return err
}
