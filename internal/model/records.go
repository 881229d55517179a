package model

// Records as the marketplace backend serves them. Field names follow the
// backend's JSON keys; pointer fields are optional and may be null or absent.

type NFT struct {
	NFTID        int    `json:"NFTID"`
	Title        string `json:"Title"`
	Description  string `json:"Description"`
	OwnerID      int    `json:"OwnerID"`
	CollectionID *int   `json:"CollectionID,omitempty"`
}

type Collection struct {
	CollectionID   int    `json:"CollectionID"`
	CollectionName string `json:"CollectionName"`
	CreatorID      int    `json:"CreatorID"`
	CategoryID     *int   `json:"CategoryID,omitempty"`
}

type Category struct {
	CategoryID   int    `json:"CategoryID"`
	CategoryName string `json:"CategoryName"`
}

type Report struct {
	ReportID         int     `json:"ReportID"`
	ReporterUsername string  `json:"ReporterUsername"`
	NFTTitle         string  `json:"NFTTitle"`
	Reason           *string `json:"Reason,omitempty"`
	ReportedAt       string  `json:"ReportedAt"`
}

// Bid is one entry of an NFT's bid list. The backend orders the list;
// the frontend keeps that order.
type Bid struct {
	BidID          int     `json:"BidID,omitempty"`
	NFTID          int     `json:"NFTID,omitempty"`
	BidderID       int     `json:"BidderID,omitempty"`
	BidderUsername string  `json:"BidderUsername"`
	BidAmount      float64 `json:"BidAmount"`
	BidAt          string  `json:"BidAt"`
}

type Wallet struct {
	WalletID  int     `json:"WalletID"`
	UserID    int     `json:"UserID"`
	PublicKey string  `json:"PublicKey"`
	Balance   float64 `json:"Balance"`
}
