package render

import (
	"fmt"
	"html"
	"strconv"

	"github.com/itsDrac/nft-web/internal/model"
)

const (
	PlaceholderImage = "/static/images/placeholder.svg"
	noReason         = "No reason provided"
)

// Renderers are pure: records in, fragment out, in input order. Record
// fields are substituted into the markup verbatim.

func NFTs(nfts []model.NFT) Fragment {
	f := Fragment{Container: NFTGrid}
	if len(nfts) == 0 {
		f.Message = "No NFTs found."
		return f
	}
	for _, nft := range nfts {
		inner := fmt.Sprintf(`<a href="/nfts/%d" class="nft-card-link">`+
			`<div class="nft-card-image"><img src="%s" alt="%s"></div>`+
			`<div class="nft-card-content">`+
			`<h3 class="nft-card-title">%s</h3>`+
			`<p class="nft-card-description">%s</p>`+
			`<div class="nft-card-footer">`+
			`<span class="nft-card-owner">Owner ID: %d</span>`+
			`<span class="nft-card-id">#%d</span>`+
			`</div></div></a>`,
			nft.NFTID, PlaceholderImage, nft.Title, nft.Title, nft.Description, nft.OwnerID, nft.NFTID)
		f.Blocks = append(f.Blocks, Block{Tag: "div", Class: "nft-card", Inner: inner})
	}
	return f
}

func Collections(collections []model.Collection) Fragment {
	f := Fragment{Container: CollectionList}
	if len(collections) == 0 {
		f.Message = "No collections found."
		return f
	}
	for _, c := range collections {
		category := ""
		if c.CategoryID != nil {
			category = fmt.Sprintf(`<span class="collection-category">Category ID: %d</span>`, *c.CategoryID)
		}
		inner := fmt.Sprintf(`<h3>%s</h3><div class="collection-meta">`+
			`<span class="collection-creator">Creator ID: %d</span>%s</div>`,
			c.CollectionName, c.CreatorID, category)
		f.Blocks = append(f.Blocks, Block{Tag: "div", Class: "collection-item", Inner: inner})
	}
	return f
}

func Categories(categories []model.Category) Fragment {
	f := Fragment{Container: CategoriesList}
	if len(categories) == 0 {
		f.Message = "No categories found."
		return f
	}
	for _, c := range categories {
		f.Blocks = append(f.Blocks, Block{
			Tag:   "li",
			Class: "category-item",
			Inner: "<h4>" + c.CategoryName + "</h4>",
		})
	}
	return f
}

func Reports(reports []model.Report) Fragment {
	f := Fragment{Container: ReportsList}
	if len(reports) == 0 {
		f.Message = "No reports found."
		return f
	}
	for _, r := range reports {
		reason := noReason
		if r.Reason != nil && *r.Reason != "" {
			reason = *r.Reason
		}
		inner := fmt.Sprintf(`<p><strong>Report ID:</strong> %d</p>`+
			`<p><strong>Reported By:</strong> %s</p>`+
			`<p><strong>Reported NFT:</strong> %s</p>`+
			`<p><strong>Reason:</strong> %s</p>`+
			`<p><strong>Reported At:</strong> %s</p><hr>`,
			r.ReportID, r.ReporterUsername, r.NFTTitle, reason, formatTimestamp(r.ReportedAt))
		f.Blocks = append(f.Blocks, Block{Tag: "div", Class: "report-item", Inner: inner})
	}
	return f
}

// Wallet renders a single wallet as four lines; balance with 2 decimals.
func Wallet(w model.Wallet) Fragment {
	line := func(label, value string) Block {
		return Block{Tag: "p", Inner: "<strong>" + label + ":</strong> " + value}
	}
	return Fragment{
		Container: WalletDetails,
		Blocks: []Block{
			line("Wallet ID", strconv.Itoa(w.WalletID)),
			line("User ID", strconv.Itoa(w.UserID)),
			line("Public Key", w.PublicKey),
			line("Balance", fmt.Sprintf("%.2f", w.Balance)),
		},
	}
}

// Bids keeps the backend's order; the frontend never sorts bids.
func Bids(bids []model.Bid) Fragment {
	f := Fragment{Container: BidsList}
	if len(bids) == 0 {
		f.Message = "No bids found."
		return f
	}
	for _, b := range bids {
		inner := fmt.Sprintf(`<strong>%s</strong> bid %s at %s`,
			b.BidderUsername, formatNumber(b.BidAmount), formatTimestamp(b.BidAt))
		f.Blocks = append(f.Blocks, Block{Tag: "li", Inner: inner})
	}
	return f
}

// CollectionOptions fills the NFT creation dropdown. The leading "None"
// option always stays; names are shown as text, so they are escaped.
func CollectionOptions(collections []model.Collection) Fragment {
	f := Fragment{Container: CollectionSelect}
	f.Blocks = append(f.Blocks, Block{Tag: "option", Attrs: [][2]string{{"value", ""}}, Inner: "None"})
	for _, c := range collections {
		f.Blocks = append(f.Blocks, Block{
			Tag:   "option",
			Attrs: [][2]string{{"value", strconv.Itoa(c.CollectionID)}},
			Inner: html.EscapeString(c.CollectionName),
		})
	}
	return f
}

var loadErrors = map[Container]string{
	WalletDetails:  "Error loading wallet details.",
	ReportsList:    "Error loading reports.",
	CategoriesList: "Error loading categories.",
	BidsList:       "Error loading bids.",
}

// LoadError is what a container shows when its fetch failed. ok is false
// for containers that stay untouched on failure (NFTs, collections, the
// collection dropdown).
func LoadError(c Container) (Fragment, bool) {
	msg, ok := loadErrors[c]
	if !ok {
		return Fragment{Container: c}, false
	}
	return Fragment{Container: c, Message: msg}, true
}

// MissingWalletUser is shown when the wallet page path carries no user id.
func MissingWalletUser() Fragment {
	return Fragment{Container: WalletDetails, Message: "Error: User ID not found to display wallet details."}
}
