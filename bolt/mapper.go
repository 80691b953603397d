package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/antobinary/bbb-pads/registry"
)

var (
	authorBucket = []byte("authors")
	padBucket    = []byte("pads")
)

// Mapper persists the author and pad mappings, keyed by the ids the
// document service issued. Edit callbacks arrive carrying only those
// ids, so the mappings have to survive a restart.
type Mapper struct {
	Driver *Driver
}

func (m *Mapper) RegisterUser(meetingID, userID, authorID string) error {
	ref := registry.UserRef{MeetingID: meetingID, UserID: userID}
	return m.put(authorBucket, authorID, ref)
}

func (m *Mapper) UnregisterUser(authorID string) error {
	return m.delete(authorBucket, authorID)
}

// ResolveUser retrieves the user registered under authorID. If no user
// was registered, ResolveUser returns the zero value.
func (m *Mapper) ResolveUser(authorID string) (registry.UserRef, error) {
	var ref registry.UserRef
	err := m.get(authorBucket, authorID, &ref)
	return ref, err
}

func (m *Mapper) RegisterPad(meetingID, groupID, padID string) error {
	ref := registry.PadRef{MeetingID: meetingID, GroupID: groupID}
	return m.put(padBucket, padID, ref)
}

func (m *Mapper) UnregisterPad(padID string) error {
	return m.delete(padBucket, padID)
}

// ResolvePad retrieves the owners registered under padID. If no pad
// was registered, ResolvePad returns the zero value.
func (m *Mapper) ResolvePad(padID string) (registry.PadRef, error) {
	var ref registry.PadRef
	err := m.get(padBucket, padID, &ref)
	return ref, err
}

func (m *Mapper) put(bucket []byte, key string, v interface{}) error {
	return m.Driver.store.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (m *Mapper) get(bucket []byte, key string, v interface{}) error {
	return m.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, v)
	})
}

func (m *Mapper) delete(bucket []byte, key string) error {
	return m.Driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}
