package session

import (
	"context"
	"encoding/gob"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
	"github.com/itsDrac/nft-web/pkg/config"
)

// one year; the user id is remembered like browser local storage would
const maxAge = 365 * 24 * 60 * 60

// Register types for gob encoding (used by sessions)
func init() {
	gob.Register(Flash{})
	gob.Register(Draft{})
}

const draftKey = "draft"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Type    string // "success" or "error"
	Message string
}

// Store hands out sessions backed by a signed cookie.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(key []byte, secure bool) *Store {
	cs := sessions.NewCookieStore(key)
	cs.Options.HttpOnly = true
	cs.Options.Secure = secure
	cs.Options.SameSite = http.SameSiteLaxMode
	cs.Options.Path = "/"
	cs.Options.MaxAge = maxAge
	return &Store{cookies: cs}
}

// Load returns the request's session. A missing or tampered cookie
// yields a fresh, empty session.
func (s *Store) Load(r *http.Request) *Session {
	raw, err := s.cookies.Get(r, config.SessionName)
	if err != nil {
		slog.Warn("discarding unreadable session cookie", "error", err)
	}
	return &Session{raw: raw}
}

// Session is the only state the frontend owns: the current user id, plus
// pending flash messages.
type Session struct {
	raw   *sessions.Session
	dirty bool
}

// UserID is empty until a login or registration succeeded.
func (s *Session) UserID() string {
	id, _ := s.raw.Values[config.SessionUserID].(string)
	return id
}

func (s *Session) SetUserID(id string) {
	s.raw.Values[config.SessionUserID] = id
	s.dirty = true
}

func (s *Session) AddFlash(typ, message string) {
	s.raw.AddFlash(Flash{Type: typ, Message: message})
	s.dirty = true
}

// Flashes drains the pending flash messages.
func (s *Session) Flashes() []Flash {
	var out []Flash
	for _, f := range s.raw.Flashes() {
		if fm, ok := f.(Flash); ok {
			out = append(out, fm)
		}
	}
	if len(out) > 0 {
		s.dirty = true
	}
	return out
}

// Draft is what a user typed into a form whose submission failed. It is
// shown once, on the next rendered page.
type Draft struct {
	Form   string
	Values map[string]string
}

// Value is the drafted field of form, empty when the draft belongs to
// another form.
func (d Draft) Value(form, field string) string {
	if d.Form != form {
		return ""
	}
	return d.Values[field]
}

// KeepDraft remembers the first value of every field of form.
func (s *Session) KeepDraft(form string, values url.Values) {
	d := Draft{Form: form, Values: make(map[string]string, len(values))}
	for k := range values {
		d.Values[k] = values.Get(k)
	}
	s.raw.Values[draftKey] = d
	s.dirty = true
}

// Draft drains the pending draft.
func (s *Session) Draft() Draft {
	d, ok := s.raw.Values[draftKey].(Draft)
	if !ok {
		return Draft{}
	}
	delete(s.raw.Values, draftKey)
	s.dirty = true
	return d
}

// Save writes the cookie if anything changed since Load.
func (s *Session) Save(w http.ResponseWriter, r *http.Request) error {
	if !s.dirty {
		return nil
	}
	s.dirty = false
	return s.raw.Save(r, w)
}

type ctxKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by the session middleware, or
// nil when there is none.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
