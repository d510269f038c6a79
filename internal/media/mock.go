package media

import (
	"sync"
	"time"

	"github.com/chillibeats/chilli/internal/catalog"
)

// Mock is a test double for Element that records every call.
type Mock struct {
	mu        sync.Mutex
	state     State
	position  time.Duration
	duration  time.Duration
	volume    float64
	muted     bool
	closed    bool
	loadErr   error
	playErr   error
	loads     []string
	playCalls int
	pauses    int
	seeks     []time.Duration
	ended     chan struct{}
}

// NewMock creates a new mock element.
func NewMock() *Mock {
	return &Mock{
		volume: 1,
		ended:  make(chan struct{}, 1),
	}
}

func (m *Mock) Load(track catalog.Track) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads = append(m.loads, track.ID)
	if m.loadErr != nil {
		m.state = Stopped
		return m.loadErr
	}
	m.state = Paused
	m.position = 0
	m.duration = track.Duration()
	return nil
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
	if m.state == Playing {
		m.state = Paused
	}
	return nil
}

func (m *Mock) SeekTo(pos time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeks = append(m.seeks, pos)
	m.position = pos
	return nil
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampVolume(level)
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Ended() <-chan struct{} { return m.ended }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.state = Stopped
	return nil
}

// Test helpers

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// Loads returns the ids passed to Load, in order.
func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seeks...)
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SimulateEnded simulates the loaded track finishing.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	m.state = Paused
	m.mu.Unlock()
	select {
	case m.ended <- struct{}{}:
	default:
	}
}

// Verify Mock implements Element at compile time.
var _ Element = (*Mock)(nil)
