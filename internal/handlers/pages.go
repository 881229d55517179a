package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/itsDrac/nft-web/internal/client"
	"github.com/itsDrac/nft-web/internal/middleware"
	"github.com/itsDrac/nft-web/internal/model"
	"github.com/itsDrac/nft-web/internal/nav"
	"github.com/itsDrac/nft-web/internal/render"
	"github.com/itsDrac/nft-web/internal/service"
	"github.com/itsDrac/nft-web/internal/session"
)

// pageData is what every page template receives.
type pageData struct {
	Title     string
	UserID    string
	Links     []nav.Link
	Flashes   []session.Flash
	Draft     session.Draft
	CSRFField template.HTML

	NFT      *model.NFT
	NFTError string

	containers map[render.Container]render.Fragment
}

// Container renders the named container with the content the bootstrap
// fetched for it, or empty when it fetched nothing.
func (d pageData) Container(name string) template.HTML {
	c := render.Container(name)
	f, ok := d.containers[c]
	if !ok {
		f = render.Fragment{Container: c}
	}
	return f.Element(false)
}

// Value is what the user typed into field of form before its submission
// failed.
func (d pageData) Value(form, field string) string {
	return d.Draft.Value(form, field)
}

type PageHandler struct {
	fetcher   service.Fetcher
	templates *TemplateCache
}

func NewPageHandler(f service.Fetcher, tc *TemplateCache) (*PageHandler, error) {
	if tc == nil {
		return nil, errors.New("template cache is required")
	}
	return &PageHandler{
		fetcher:   f,
		templates: tc,
	}, nil
}

// Page serves p, filling its containers before the response is written.
func (h *PageHandler) Page(p nav.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, p, h.newPageData(r, p))
	}
}

// NFTDetail serves /nfts/{nftID} with the NFT's bids and the bid and
// report forms.
func (h *PageHandler) NFTDetail(w http.ResponseWriter, r *http.Request) {
	p := nav.NFTDetailPage

	nftID, err := strconv.Atoi(chi.URLParam(r, "nftID"))
	if err != nil {
		data := h.newPageData(r, nav.Page{Template: p.Template, Title: p.Title})
		data.NFTError = "NFT not found."
		w.Header().Set("X-Error-Code", ErrNFTNotFound.Error())
		h.render(w, r, http.StatusNotFound, p, data)
		return
	}

	nft, err := h.fetcher.NFT(r.Context(), nftID)
	if err != nil {
		// bids are not worth loading for an NFT that cannot be shown
		data := h.newPageData(r, nav.Page{Template: p.Template, Title: p.Title})
		status, code := http.StatusBadGateway, ErrBackend
		data.NFTError = "Error loading NFT details."
		if errors.Is(err, client.ErrNotFound) {
			status, code = http.StatusNotFound, ErrNFTNotFound
			data.NFTError = "NFT not found."
		}
		w.Header().Set("X-Error-Code", code.Error())
		slog.Warn("[PAGE] nft detail unavailable", "nft_id", nftID, "error", err)
		h.render(w, r, status, p, data)
		return
	}

	data := h.newPageData(r, p)
	data.NFT = nft
	data.Title = nft.Title
	h.render(w, r, http.StatusOK, p, data)
}

// newPageData runs the page bootstrap: one fetch per container p
// carries, in order, plus the navigation links for the current user.
func (h *PageHandler) newPageData(r *http.Request, p nav.Page) pageData {
	userID := middleware.CurrentUserID(r.Context())
	data := pageData{
		Title:      p.Title,
		UserID:     userID,
		Links:      nav.RewriteLinks(nav.Links, userID),
		CSRFField:  csrf.TemplateField(r),
		containers: make(map[render.Container]render.Fragment),
	}
	if sess := session.FromContext(r.Context()); sess != nil {
		data.Flashes = sess.Flashes()
		data.Draft = sess.Draft()
	}

	for _, t := range nav.Bootstrap(p, r.URL.Path) {
		// failures are already logged and rendered by the fetcher
		f, _ := h.fetcher.Fetch(r.Context(), t)
		data.containers[t.Container] = f
	}
	return data
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, p nav.Page, data pageData) {
	tmpl := h.templates.Get(p.Template)
	if tmpl == nil {
		RespondError(w, r, http.StatusInternalServerError, ErrTemplate, "Template not found")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("[PAGE] template execution failed", "template", p.Template, "error", err)
		RespondError(w, r, http.StatusInternalServerError, ErrTemplate, "Failed to render page")
		return
	}

	// flashes were consumed above
	saveSession(w, r)
	respondHTML(w, r, status, buf.Bytes())
}
