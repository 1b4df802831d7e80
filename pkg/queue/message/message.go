package message

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Message announces a completed pipeline run to downstream consumers.
// Wire form is "name|version|cleanCount".
type Message struct {
	Name       string
	Version    string
	CleanCount int
}

func NewMessage(raw string) (*Message, error) {
	tokens := strings.Split(raw, "|")
	if len(tokens) != 3 {
		return nil, errors.New("invalid message raw input (len)")
	}

	cleanCount, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, errors.Wrap(err, "invalid message raw input (clean count)")
	}

	return &Message{
		Name:       tokens[0],
		Version:    tokens[1],
		CleanCount: cleanCount,
	}, nil
}

func (m *Message) String() string {
	return fmt.Sprintf("%s|%s|%d", m.Name, m.Version, m.CleanCount)
}
