package model

// Write payloads sent to the backend. Login, registration and report
// forms forward every submitted field, so they are plain maps built by the
// form handlers; the typed payloads below carry coerced numeric fields.

type CreateNFTRequest struct {
	Title        string `json:"Title"`
	Description  string `json:"Description"`
	OwnerID      int    `json:"OwnerID"`
	CollectionID *int   `json:"CollectionID"`
}

type PlaceBidRequest struct {
	NFTID          int     `json:"NFTID" validate:"gt=0"`
	BidAmount      float64 `json:"BidAmount" validate:"finite,gt=0"`
	BidderUsername string  `json:"BidderUsername" validate:"notblank"`
}

type CreateCategoryRequest struct {
	CategoryName string `json:"CategoryName"`
	CreatorID    int    `json:"CreatorID"`
}

type CreateCollectionRequest struct {
	CollectionName string `json:"CollectionName"`
	CreatorID      int    `json:"CreatorID"`
	CategoryID     *int   `json:"CategoryID"`
}

// FormPayload is a form serialized field by field. Values are strings
// unless a handler coerced them.
type FormPayload map[string]any
