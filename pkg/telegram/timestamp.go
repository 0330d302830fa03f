package telegram

import (
	"strconv"
	"strings"
	"time"
)

// Timestamp is a forward_date value as Telegram delivers it. The Bot API
// sends epoch seconds, but some gateways re-emit updates with RFC 3339
// strings, so both are accepted. An unparseable value is kept as raw text
// instead of failing the whole update.
type Timestamp struct {
	raw   string
	value time.Time
	valid bool
}

// NewTimestamp builds a valid Timestamp from a time.Time.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{
		raw:   strconv.FormatInt(t.Unix(), 10),
		value: t.UTC(),
		valid: true,
	}
}

// Time returns the parsed time and whether parsing succeeded.
func (ts *Timestamp) Time() (time.Time, bool) {
	return ts.value, ts.valid
}

// Raw returns the wire representation of the value.
func (ts *Timestamp) Raw() string {
	return ts.raw
}

// UnmarshalJSON accepts epoch seconds or an RFC 3339 string. Anything else
// is retained raw with valid=false.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	ts.raw = s
	ts.valid = false

	if unquoted := strings.Trim(s, `"`); unquoted != s {
		ts.raw = unquoted
		if t, err := time.Parse(time.RFC3339, unquoted); err == nil {
			ts.value = t.UTC()
			ts.valid = true
		}
		return nil
	}

	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		ts.value = time.Unix(sec, 0).UTC()
		ts.valid = true
	}
	return nil
}

// MarshalJSON round-trips the wire representation.
func (ts *Timestamp) MarshalJSON() ([]byte, error) {
	if ts.raw == "" {
		return []byte("0"), nil
	}
	if _, err := strconv.ParseInt(ts.raw, 10, 64); err == nil {
		return []byte(ts.raw), nil
	}
	return []byte(strconv.Quote(ts.raw)), nil
}
