package playback

import "sync"

const (
	eventBufferSize    = 16
	snapshotBufferSize = 4
)

// Subscription provides event channels for a subscriber.
//
// Snapshots always ends with the latest state: when its buffer is full the
// oldest pending snapshot is discarded. The other channels drop new events
// when full.
type Subscription struct {
	Snapshots    <-chan Snapshot
	PlayChanged  <-chan PlayChange
	TrackChanged <-chan TrackChange
	QueueChanged <-chan QueueChange
	ModeChanged  <-chan ModeChange
	Done         <-chan struct{}

	// Internal write channels
	snapshotCh chan Snapshot
	playCh     chan PlayChange
	trackCh    chan TrackChange
	queueCh    chan QueueChange
	modeCh     chan ModeChange
	doneCh     chan struct{}

	closeOnce sync.Once
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		snapshotCh: make(chan Snapshot, snapshotBufferSize),
		playCh:     make(chan PlayChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		queueCh:    make(chan QueueChange, eventBufferSize),
		modeCh:     make(chan ModeChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.Snapshots = s.snapshotCh
	s.PlayChanged = s.playCh
	s.TrackChanged = s.trackCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.doneCh) })
}

// sendSnapshot queues snap, evicting the oldest pending snapshot if needed.
// Only the store calls this, under its lock, so the loop is bounded.
func (s *Subscription) sendSnapshot(snap Snapshot) {
	for {
		select {
		case s.snapshotCh <- snap:
			return
		default:
		}
		select {
		case <-s.snapshotCh:
		default:
		}
	}
}

// sendPlay sends a play change event (non-blocking).
func (s *Subscription) sendPlay(e PlayChange) {
	select {
	case s.playCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendTrack sends a track change event (non-blocking).
func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
	}
}

// sendQueue sends a queue change event (non-blocking).
func (s *Subscription) sendQueue(e QueueChange) {
	select {
	case s.queueCh <- e:
	default:
	}
}

// sendMode sends a mode change event (non-blocking).
func (s *Subscription) sendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
	}
}
