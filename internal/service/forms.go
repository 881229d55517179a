package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/itsDrac/nft-web/internal/client"
	"github.com/itsDrac/nft-web/internal/nav"
	"github.com/itsDrac/nft-web/internal/render"
)

// Kind is the closed set of forms the frontend handles.
type Kind int

const (
	FormUnknown Kind = iota
	FormLogin
	FormRegistration
	FormCreateNFT
	FormReport
	FormBid
	FormCategory
	FormCollection
)

var formIDs = map[string]Kind{
	"loginForm":        FormLogin,
	"registrationForm": FormRegistration,
	"createNftForm":    FormCreateNFT,
	"reportForm":       FormReport,
	"bidForm":          FormBid,
	"categoryForm":     FormCategory,
	"collectionForm":   FormCollection,
}

// ParseKind maps a form's id attribute to its kind.
func ParseKind(formID string) (Kind, bool) {
	k, ok := formIDs[formID]
	return k, ok
}

// ID is the form's id attribute.
func (k Kind) ID() string {
	for id, kind := range formIDs {
		if kind == k {
			return id
		}
	}
	return ""
}

// Submission is one submitted form.
type Submission struct {
	Kind   Kind
	Values url.Values
	// UserID is the session's user, empty when nobody is logged in.
	UserID string
	// Refresh asks for the changed list to be re-rendered after a
	// successful write. Callers that reload the whole page leave it off.
	Refresh bool
}

// Outcome tells the HTTP layer what the page should do next. A success
// either navigates or refreshes a list in place. A failure does neither and
// keeps Values so the form can be shown populated again.
type Outcome struct {
	Success bool
	Message string
	// Navigate is where the browser goes next.
	Navigate string
	// UserID is set when the session must remember a newly signed in user.
	UserID string
	// Refresh is the re-rendered list after a successful write, nil unless
	// the submission asked for it.
	Refresh *render.Fragment
	Values  url.Values
}

func failure(msg string, values url.Values) Outcome {
	return Outcome{Message: msg, Values: values}
}

type formHandler func(context.Context, Submission) Outcome

// FormService dispatches submissions to one handler per kind.
type FormService struct {
	backend  Backend
	fetcher  Fetcher
	handlers map[Kind]formHandler
}

func NewFormService(b Backend, f Fetcher) *FormService {
	fs := &FormService{backend: b, fetcher: f}
	fs.handlers = map[Kind]formHandler{
		FormLogin:        fs.login,
		FormRegistration: fs.register,
		FormCreateNFT:    fs.createNFT,
		FormReport:       fs.submitReport,
		FormBid:          fs.placeBid,
		FormCategory:     fs.createCategory,
		FormCollection:   fs.createCollection,
	}
	return fs
}

// Handle runs the handler for sub.Kind. Unknown kinds return
// ErrUnknownForm and nothing happens.
func (fs *FormService) Handle(ctx context.Context, sub Submission) (Outcome, error) {
	h, ok := fs.handlers[sub.Kind]
	if !ok {
		return Outcome{}, ErrUnknownForm
	}
	return h(ctx, sub), nil
}

// action names one write for its user facing messages.
type action struct {
	failed     string // prefix for backend rejections
	unexpected string // message for everything else
	// withStatus shows "<status> <text>." when a rejection has no detail,
	// otherwise the status text alone is shown
	withStatus bool
}

var (
	loginAction = action{
		failed:     "Login failed: ",
		unexpected: "An unexpected error occurred during login.",
	}
	registrationAction = action{
		failed:     "Registration failed: ",
		unexpected: "An unexpected error occurred during registration.",
	}
	nftAction = action{
		failed:     "Failed to create NFT: ",
		unexpected: "An unexpected error occurred during NFT creation.",
		withStatus: true,
	}
	reportAction = action{
		failed:     "Failed to submit report: ",
		unexpected: "An unexpected error occurred during report submission.",
	}
	bidAction = action{
		failed:     "Failed to place bid: ",
		unexpected: "An unexpected error occurred during bid submission.",
		withStatus: true,
	}
	categoryAction = action{
		failed:     "Failed to create category: ",
		unexpected: "An unexpected error occurred while creating the category.",
	}
	collectionAction = action{
		failed:     "Failed to create collection: ",
		unexpected: "An unexpected error occurred while creating the collection.",
	}
)

// fail turns a write error into the failure outcome. Backend rejections
// surface their detail; anything else gets the generic message.
func (a action) fail(kind Kind, err error, values url.Values) Outcome {
	if apiErr, ok := client.AsAPIError(err); ok {
		slog.Warn("[FORM] backend rejected submission", "form", kind.ID(), "status", apiErr.Status, "error", apiErr)
		reason := apiErr.ShortReason()
		if a.withStatus {
			reason = apiErr.Reason()
		}
		return failure(a.failed+reason, values)
	}
	slog.Error("[FORM] submission failed", "form", kind.ID(), "error", err)
	return failure(a.unexpected, values)
}

// refresh re-runs the fetcher for one container when sub asked for it. A
// silent container that failed to load yields nil.
func (fs *FormService) refresh(ctx context.Context, sub Submission, t nav.Target) *render.Fragment {
	if !sub.Refresh {
		return nil
	}
	f, err := fs.fetcher.Fetch(ctx, t)
	if err != nil && f.Empty() {
		return nil
	}
	return &f
}
