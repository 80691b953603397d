package sender

import (
	"github.com/antobinary/bbb-pads/registry"
)

// Multi publishes to every sender it wraps. With no senders it is a
// no-op, which is what the registry gets when nothing is configured.
type Multi []registry.Sender

func (m Multi) Publish(event, meetingID string, payload interface{}) {
	for _, s := range m {
		s.Publish(event, meetingID, payload)
	}
}
