package model

import "time"

// Session is the persisted login state for one chat: the opaque backend
// token plus the serialized user record, the bot's equivalent of the
// token/user pair a browser client would keep in local storage.
type Session struct {
	ChatID    int64
	Token     string
	User      User
	UpdatedAt time.Time
}
