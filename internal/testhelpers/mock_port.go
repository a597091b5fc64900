// Package testhelpers provides a recording mock of terminal.Port so editor
// and renderer tests can drive the editing loop deterministically without a
// real tty. Grounded on the MockTerminal at testing/mock_terminal.go: a
// thread-safe recorder of every call, plus queued input the test feeds in
// ahead of time.
package testhelpers

import (
	"fmt"
	"sync"
	"time"

	"github.com/quillline/lineedit/errkind"
	"github.com/quillline/lineedit/infrastructure/terminal"
)

// MockPort implements terminal.Port. Input bytes are served from a queue
// populated by Feed; Written frames accumulate in Output; every call is
// also recorded in Calls for assertions against call order.
type MockPort struct {
	mu sync.Mutex

	tty      bool
	cols     int
	input    []byte
	inPos    int
	raw      bool
	Output   []byte
	Calls    []string
	WriteErr error
}

// NewMockPort creates a MockPort that reports as a tty with the given
// column count.
func NewMockPort(cols int) *MockPort {
	return &MockPort{tty: true, cols: cols}
}

// Feed appends bytes to the queue ReadByte will serve.
func (m *MockPort) Feed(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = append(m.input, b...)
}

// SetTTY controls IsTTY's return value (for exercising the §4.7
// non-terminal fallback path).
func (m *MockPort) SetTTY(tty bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tty = tty
}

// SetColumns changes the column count Columns() reports, simulating a
// terminal resize observed at the next render (§4.4 Non-goals).
func (m *MockPort) SetColumns(cols int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cols = cols
}

func (m *MockPort) record(call string) {
	m.Calls = append(m.Calls, call)
}

func (m *MockPort) EnterRaw() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("EnterRaw")
	if !m.tty {
		return errkind.NotATerminal
	}
	m.raw = true
	return nil
}

func (m *MockPort) LeaveRaw() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("LeaveRaw")
	m.raw = false
	return nil
}

func (m *MockPort) ReadByte(timeout time.Duration) (byte, terminal.ReadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inPos >= len(m.input) {
		m.record("ReadByte(timeout)")
		return 0, terminal.ReadTimeout, nil
	}
	b := m.input[m.inPos]
	m.inPos++
	m.record(fmt.Sprintf("ReadByte() = %#x", b))
	return b, terminal.ReadOK, nil
}

func (m *MockPort) Write(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(fmt.Sprintf("Write(%q)", p))
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Output = append(m.Output, p...)
	return nil
}

func (m *MockPort) IsTTY() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("IsTTY")
	return m.tty
}

func (m *MockPort) Columns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Columns")
	if m.cols <= 0 {
		return 80
	}
	return m.cols
}

func (m *MockPort) ClearScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ClearScreen")
	m.Output = append(m.Output, "\x1b[H\x1b[2J"...)
	return nil
}

var _ terminal.Port = (*MockPort)(nil)
