package dialog

import (
	"time"

	"github.com/google/uuid"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

// MessageLog is the append-only conversation history of one session.
// Insertion order is display order. Entries are never updated or removed
// individually; Reset clears the whole log on restart.
//
// MessageLog is not safe for concurrent use on its own; the owning controller
// serializes access.
type MessageLog struct {
	clock    func() time.Time
	messages []domain.Message
}

// NewMessageLog returns an empty log stamping entries with the given clock.
// A nil clock defaults to time.Now.
func NewMessageLog(clock func() time.Time) *MessageLog {
	if clock == nil {
		clock = time.Now
	}
	return &MessageLog{clock: clock}
}

// Append adds a message, assigning its id and timestamp, and returns the
// stored entry.
func (l *MessageLog) Append(role domain.MessageRole, content string, coinAwarded bool) domain.Message {
	msg := domain.Message{
		ID:          uuid.NewString(),
		Role:        role,
		Content:     content,
		CoinAwarded: coinAwarded,
		CreatedAt:   l.clock(),
	}
	l.messages = append(l.messages, msg)
	return msg
}

// Messages returns a copy of the log in insertion order.
func (l *MessageLog) Messages() []domain.Message {
	out := make([]domain.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of entries.
func (l *MessageLog) Len() int { return len(l.messages) }

// Reset clears the log to empty.
func (l *MessageLog) Reset() { l.messages = nil }
