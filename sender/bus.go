package sender

import (
	"sync"
	"time"

	"github.com/antobinary/bbb-pads/registry"
)

// Event is what subscribers receive. The payload is the typed struct
// the registry published, untouched.
type Event struct {
	Name      string      `json:"name"`
	MeetingID string      `json:"meetingId"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Bus fans events out to in-process subscribers. Publish never blocks:
// a subscriber whose channel is full misses the event.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a buffered channel on the bus. The returned
// function removes the subscription and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	ch := make(chan Event, buffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if ch, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(event, meetingID string, payload interface{}) {
	evt := Event{
		Name:      event,
		MeetingID: meetingID,
		Timestamp: time.Now(),
		Payload:   payload,
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

var _ registry.Sender = (*Bus)(nil)
