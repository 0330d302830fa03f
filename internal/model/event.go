package model

import "time"

// ChatType is the Telegram chat kind.
type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

// User is an immutable snapshot of a Telegram user taken from one update.
// LastName and Username are optional; empty means absent.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// Chat identifies the chat a message belongs to. Title and Username are
// optional; empty means absent.
type Chat struct {
	ID       int64
	Type     ChatType
	Title    string
	Username string
}

// Timestamp is a forward_date value carried into the domain. Raw is always
// the wire text; Value/Valid are set only when it parsed as a point in time.
type Timestamp struct {
	Raw   string
	Value time.Time
	Valid bool
}

// Message is the message portion of an event. Text is empty for non-text
// content; the forward fields are set only when the message was relayed
// from elsewhere.
type Message struct {
	Text            string
	ForwardFrom     *User
	ForwardFromChat *Chat
	ForwardDate     *Timestamp
}

// Event is the unit of work: one inbound update, consumed synchronously and
// discarded. A nil Message means there is nothing to reply to.
type Event struct {
	Sender  User
	Chat    Chat
	Message *Message
}
