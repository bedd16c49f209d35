package spawn

import (
	"bytes"
	"io"
	"sync"
)

// outputCapture buffers a process stream while optionally teeing it to
// another writer.
type outputCapture struct {
	buffer bytes.Buffer
	tee    io.Writer
	mu     sync.Mutex
}

// newOutputCapture creates a capture. If tee is non-nil, output is written
// to it in addition to being buffered.
func newOutputCapture(tee io.Writer) *outputCapture {
	return &outputCapture{tee: tee}
}

// Write buffers p and forwards it to the tee writer.
func (oc *outputCapture) Write(p []byte) (int, error) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.buffer.Write(p)
	if oc.tee == nil {
		return len(p), nil
	}

	n, err := oc.tee.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	return len(p), nil
}

// String returns everything captured so far. A nil capture holds nothing.
func (oc *outputCapture) String() string {
	if oc == nil {
		return ""
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.buffer.String()
}
