package etherpad

import (
	"fmt"

	"github.com/antobinary/bbb-pads/errors"
)

// method describes the parameters accepted by one API call. Calls are
// checked against this table before dispatch: an invalid call is
// rejected without reaching the network.
type method struct {
	mandatory []string
	optional  []string
}

var methods = map[string]method{
	"createAuthor":   {optional: []string{"name"}},
	"createGroup":    {},
	"createGroupPad": {mandatory: []string{"groupID", "padName"}, optional: []string{"text"}},
	"createSession":  {mandatory: []string{"groupID", "authorID", "validUntil"}},
	"deleteSession":  {mandatory: []string{"sessionID"}},
}

func validate(name string, params map[string]string) error {
	m, ok := methods[name]
	if !ok {
		return errors.New(fmt.Sprintf("unknown method %s", name), errors.BadRequest())
	}

	for _, p := range m.mandatory {
		if params[p] == "" {
			return errors.New(fmt.Sprintf("%s: missing mandatory parameter %s", name, p), errors.BadRequest())
		}
	}

	for p := range params {
		if !contains(m.mandatory, p) && !contains(m.optional, p) {
			return errors.New(fmt.Sprintf("%s: unknown parameter %s", name, p), errors.BadRequest())
		}
	}

	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
