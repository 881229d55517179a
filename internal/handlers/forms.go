package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/itsDrac/nft-web/internal/middleware"
	"github.com/itsDrac/nft-web/internal/service"
	"github.com/itsDrac/nft-web/internal/session"
	"github.com/itsDrac/nft-web/pkg/config"
)

const (
	flashSuccess = "success"
	flashError   = "error"

	// htmx event the page listens for to reset a form after a success
	formSuccessEvent = "form-success"
)

var messageTmpl = template.Must(template.New("message").Parse(
	`<p class="form-message {{.Class}}" role="alert">{{.Text}}</p>`,
))

type FormHandler struct {
	forms *service.FormService
}

func NewFormHandler(forms *service.FormService) (*FormHandler, error) {
	if forms == nil {
		return nil, errors.New("form service is required")
	}
	return &FormHandler{forms: forms}, nil
}

// Submit handles POST /forms/{formID}. Unknown form ids are ignored.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formID")
	kind, ok := service.ParseKind(formID)
	if !ok {
		slog.Debug("[FORM] ignoring unknown form", "form", formID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := r.ParseForm(); err != nil {
		RespondError(w, r, http.StatusBadRequest, ErrInvalidForm, "Invalid form submission")
		return
	}

	sess := session.FromContext(r.Context())
	htmx := middleware.IsHTMX(r.Context())
	sub := service.Submission{
		Kind:   kind,
		Values: formValues(r.PostForm),
		// plain posts reload the page, which fetches the list anyway
		Refresh: htmx,
	}
	if sess != nil {
		sub.UserID = sess.UserID()
	}

	out, err := h.forms.Handle(r.Context(), sub)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if out.UserID != "" && sess != nil {
		sess.SetUserID(out.UserID)
	}

	if htmx {
		h.respondHTMX(w, r, sess, out)
		return
	}
	h.respondPlain(w, r, sess, formID, out)
}

// respondHTMX answers in place: a redirect header for navigations, else
// the message plus the refreshed container swapped out of band.
func (h *FormHandler) respondHTMX(w http.ResponseWriter, r *http.Request, sess *session.Session, out service.Outcome) {
	if out.Navigate != "" {
		if out.Message != "" && sess != nil {
			sess.AddFlash(flashSuccess, out.Message)
		}
		saveSession(w, r)
		setRequestID(w, r)
		w.Header().Set("HX-Redirect", out.Navigate)
		w.WriteHeader(http.StatusOK)
		return
	}
	saveSession(w, r)

	var buf bytes.Buffer
	if out.Message != "" {
		class := flashError
		if out.Success {
			class = flashSuccess
		}
		if err := messageTmpl.Execute(&buf, struct{ Class, Text string }{class, out.Message}); err != nil {
			slog.Error("[FORM] failed to render message", "error", err)
		}
	}
	if out.Refresh != nil {
		buf.WriteString(string(out.Refresh.Element(true)))
	}
	if out.Success {
		w.Header().Set("HX-Trigger", formSuccessEvent)
	}
	respondHTML(w, r, http.StatusOK, buf.Bytes())
}

// respondPlain serves browsers without htmx: the message becomes a flash
// and the browser is sent on or back to where the form was. A failed form
// keeps its values as a draft so the page shows it filled in again.
func (h *FormHandler) respondPlain(w http.ResponseWriter, r *http.Request, sess *session.Session, formID string, out service.Outcome) {
	if sess != nil {
		typ := flashError
		if out.Success {
			typ = flashSuccess
		}
		if out.Message != "" {
			sess.AddFlash(typ, out.Message)
		}
		if !out.Success && len(out.Values) > 0 {
			sess.KeepDraft(formID, out.Values)
		}
	}
	saveSession(w, r)

	target := out.Navigate
	if target == "" {
		target = backTo(r)
	}
	setRequestID(w, r)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// backTo is the page the form was posted from, limited to this site.
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

// formValues copies the submitted fields without the CSRF token.
func formValues(form url.Values) url.Values {
	values := make(url.Values, len(form))
	for k, v := range form {
		if k == config.CSRFFieldName {
			continue
		}
		values[k] = append([]string(nil), v...)
	}
	return values
}
