package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	UserID  UserID `json:"user_id"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of most successful writes.
type MessageResponse struct {
	Message      string `json:"message"`
	CategoryID   int    `json:"category_id,omitempty"`
	CollectionID int    `json:"collection_id,omitempty"`
}

// UserID is a user identifier as its decimal text. The backend sends it as
// a JSON number, sometimes as a float, or as a string.
type UserID string

func (u *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*u = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*u = UserID(strings.TrimSpace(s))
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	if f == float64(int64(f)) {
		*u = UserID(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*u = UserID(string(data))
	return nil
}

func (u UserID) String() string { return string(u) }

// FieldError is one entry of a list-shaped error detail.
type FieldError struct {
	Loc  []any  `json:"loc,omitempty"`
	Msg  string `json:"msg"`
	Type string `json:"type,omitempty"`
}

// ErrorBody is the backend's error envelope. Detail is either a string,
// a list of field errors, or something the frontend does not interpret.
type ErrorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// DetailText flattens Detail into a message: strings verbatim, field
// error lists joined with ", ", anything else empty.
func (e ErrorBody) DetailText() string {
	raw := bytes.TrimSpace(e.Detail)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return ""
		}
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			var fe FieldError
			if err := json.Unmarshal(item, &fe); err == nil && fe.Msg != "" {
				msgs = append(msgs, fe.Msg)
				continue
			}
			var s string
			if err := json.Unmarshal(item, &s); err == nil && s != "" {
				msgs = append(msgs, s)
			}
		}
		return strings.Join(msgs, ", ")
	}
	return ""
}
