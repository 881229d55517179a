package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/itsDrac/nft-web/internal/nav"
	"github.com/itsDrac/nft-web/internal/render"
	"github.com/itsDrac/nft-web/internal/service"
	"github.com/itsDrac/nft-web/pkg/config"
)

// FragmentHandler serves a single container's inner markup, for htmx
// hx-get refreshes or pages hosted elsewhere.
type FragmentHandler struct {
	fetcher service.Fetcher
}

func NewFragmentHandler(f service.Fetcher) (*FragmentHandler, error) {
	return &FragmentHandler{fetcher: f}, nil
}

// Fragment handles GET /fragments/{container}. The wallet takes user_id,
// bids take nft_id. A silent container whose fetch failed answers 204 so
// htmx leaves it untouched.
func (h *FragmentHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	c := render.Container(chi.URLParam(r, "container"))
	if !c.Valid() {
		RespondError(w, r, http.StatusNotFound, ErrUnknownContainer, "Unknown container")
		return
	}

	t := nav.Target{Container: c}
	switch c {
	case render.WalletDetails:
		t.UserID = strings.TrimSpace(r.URL.Query().Get(config.UserIDParam))
		t.MissingID = t.UserID == ""
	case render.BidsList:
		id, err := strconv.Atoi(r.URL.Query().Get("nft_id"))
		if err != nil {
			RespondError(w, r, http.StatusBadRequest, ErrMissingParam, "nft_id must be a number")
			return
		}
		t.NFTID = id
	}

	f, err := h.fetcher.Fetch(r.Context(), t)
	if err != nil && f.Empty() {
		setRequestID(w, r)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondHTML(w, r, http.StatusOK, []byte(f.HTML()))
}
