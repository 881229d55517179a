package service

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/itsDrac/nft-web/internal/model"
	"github.com/itsDrac/nft-web/internal/nav"
	"github.com/itsDrac/nft-web/internal/render"
	"github.com/itsDrac/nft-web/pkg/validator"
)

const (
	msgInvalidNFTID     = "Please enter a valid number for NFT ID."
	msgMissingUsername  = "Please enter your username."
	msgInvalidBidAmount = "Please enter a valid bid amount greater than zero."

	msgOwnerMissing      = "Owner ID not found. Please log in."
	msgCategoryLogin     = "Please log in to create a category."
	msgCollectionLogin   = "Please log in to create a collection."
	msgNFTCreated        = "NFT created successfully!"
	msgReportSubmitted   = "Report submitted successfully!"
	msgBidPlaced         = "Bid placed successfully!"
	msgCategoryCreated   = "Category created successfully!"
	msgCollectionCreated = "Collection created successfully!"
)

// payload forwards every submitted field as a string.
func payload(values url.Values) model.FormPayload {
	p := make(model.FormPayload, len(values))
	for k := range values {
		p[k] = values.Get(k)
	}
	return p
}

// optionalInt reads an optional id field; blank or garbage means none.
func optionalInt(values url.Values, key string) *int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// sessionOwner converts the session user id to the backend's numeric id.
func sessionOwner(userID string) (int, bool) {
	if userID == "" {
		return 0, false
	}
	id, err := strconv.Atoi(userID)
	if err != nil {
		return 0, false
	}
	return id, true
}

func walletPath(userID string) string {
	return "/users/" + url.PathEscape(userID) + "/wallet"
}

func (fs *FormService) login(ctx context.Context, sub Submission) Outcome {
	resp, err := fs.backend.Login(ctx, payload(sub.Values))
	return fs.signedIn(sub, resp, err, loginAction)
}

func (fs *FormService) register(ctx context.Context, sub Submission) Outcome {
	resp, err := fs.backend.Register(ctx, payload(sub.Values))
	return fs.signedIn(sub, resp, err, registrationAction)
}

// signedIn finishes login and registration: remember the user and go to
// their wallet.
func (fs *FormService) signedIn(sub Submission, resp *model.AuthResponse, err error, a action) Outcome {
	if err == nil && resp.UserID == "" {
		err = ErrMissingUserID
	}
	if err != nil {
		return a.fail(sub.Kind, err, sub.Values)
	}
	id := resp.UserID.String()
	return Outcome{
		Success:  true,
		UserID:   id,
		Navigate: walletPath(id),
	}
}

func (fs *FormService) createNFT(ctx context.Context, sub Submission) Outcome {
	owner, ok := sessionOwner(sub.UserID)
	if !ok {
		return failure(msgOwnerMissing, sub.Values)
	}

	req := model.CreateNFTRequest{
		Title:        sub.Values.Get("Title"),
		Description:  sub.Values.Get("Description"),
		OwnerID:      owner,
		CollectionID: optionalInt(sub.Values, "CollectionID"),
	}
	if _, err := fs.backend.CreateNFT(ctx, req); err != nil {
		return nftAction.fail(sub.Kind, err, sub.Values)
	}
	return Outcome{
		Success:  true,
		Message:  msgNFTCreated,
		Navigate: "/nfts?user_id=" + url.QueryEscape(sub.UserID),
	}
}

func (fs *FormService) submitReport(ctx context.Context, sub Submission) Outcome {
	raw := strings.TrimSpace(sub.Values.Get("NFTID"))
	if err := validator.GetValidator().Var(raw, "required,number"); err != nil {
		return failure(msgInvalidNFTID, sub.Values)
	}
	nftID, err := strconv.Atoi(raw)
	if err != nil {
		return failure(msgInvalidNFTID, sub.Values)
	}

	body := payload(sub.Values)
	body["NFTID"] = nftID
	if _, err := fs.backend.CreateReport(ctx, body); err != nil {
		return reportAction.fail(sub.Kind, err, sub.Values)
	}
	return Outcome{
		Success: true,
		Message: msgReportSubmitted,
		Refresh: fs.refresh(ctx, sub, nav.Target{Container: render.ReportsList}),
	}
}

// bidMessages in the order they are reported when several fields fail.
var bidMessages = []struct {
	field string
	msg   string
}{
	{"BidderUsername", msgMissingUsername},
	{"BidAmount", msgInvalidBidAmount},
	{"NFTID", msgInvalidNFTID},
}

func (fs *FormService) placeBid(ctx context.Context, sub Submission) Outcome {
	req := model.PlaceBidRequest{
		BidderUsername: sub.Values.Get("BidderUsername"),
		BidAmount:      math.NaN(),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(sub.Values.Get("NFTID"))); err == nil {
		req.NFTID = n
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(sub.Values.Get("BidAmount")), 64); err == nil {
		req.BidAmount = f
	}

	if err := validator.GetValidator().Struct(req); err != nil {
		failed := validator.FailedFields(err)
		for _, m := range bidMessages {
			if failed[m.field] {
				return failure(m.msg, sub.Values)
			}
		}
		return failure(fmt.Sprintf("%s%v", bidAction.failed, err), sub.Values)
	}

	if _, err := fs.backend.PlaceBid(ctx, req); err != nil {
		return bidAction.fail(sub.Kind, err, sub.Values)
	}
	return Outcome{
		Success: true,
		Message: msgBidPlaced,
		Refresh: fs.refresh(ctx, sub, nav.Target{Container: render.BidsList, NFTID: req.NFTID}),
	}
}

func (fs *FormService) createCategory(ctx context.Context, sub Submission) Outcome {
	creator, ok := sessionOwner(sub.UserID)
	if !ok {
		return failure(msgCategoryLogin, sub.Values)
	}

	req := model.CreateCategoryRequest{
		CategoryName: sub.Values.Get("CategoryName"),
		CreatorID:    creator,
	}
	if _, err := fs.backend.CreateCategory(ctx, req); err != nil {
		return categoryAction.fail(sub.Kind, err, sub.Values)
	}
	return Outcome{
		Success: true,
		Message: msgCategoryCreated,
		Refresh: fs.refresh(ctx, sub, nav.Target{Container: render.CategoriesList}),
	}
}

func (fs *FormService) createCollection(ctx context.Context, sub Submission) Outcome {
	creator, ok := sessionOwner(sub.UserID)
	if !ok {
		return failure(msgCollectionLogin, sub.Values)
	}

	req := model.CreateCollectionRequest{
		CollectionName: sub.Values.Get("CollectionName"),
		CreatorID:      creator,
		CategoryID:     optionalInt(sub.Values, "CategoryID"),
	}
	if _, err := fs.backend.CreateCollection(ctx, req); err != nil {
		return collectionAction.fail(sub.Kind, err, sub.Values)
	}
	return Outcome{
		Success: true,
		Message: msgCollectionCreated,
		Refresh: fs.refresh(ctx, sub, nav.Target{Container: render.CollectionList}),
	}
}
