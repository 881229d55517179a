package nav

import "github.com/itsDrac/nft-web/internal/render"

// Page is one server rendered page and the containers it carries.
type Page struct {
	Template   string
	Title      string
	Containers []render.Container
}

var (
	LoginPage       = Page{Template: "login.html", Title: "Login"}
	RegisterPage    = Page{Template: "register.html", Title: "Register"}
	NFTsPage        = Page{Template: "nfts.html", Title: "NFTs", Containers: []render.Container{render.NFTGrid}}
	NFTDetailPage   = Page{Template: "nft_detail.html", Title: "NFT Details", Containers: []render.Container{render.BidsList}}
	CreateNFTPage   = Page{Template: "create_nft.html", Title: "Create NFT", Containers: []render.Container{render.CollectionSelect}}
	CollectionsPage = Page{Template: "collections.html", Title: "Collections", Containers: []render.Container{render.CollectionList}}
	CategoriesPage  = Page{Template: "categories.html", Title: "Categories", Containers: []render.Container{render.CategoriesList}}
	ReportsPage     = Page{Template: "reports.html", Title: "Reports", Containers: []render.Container{render.ReportsList}}
	WalletPage      = Page{Template: "wallet.html", Title: "Wallet", Containers: []render.Container{render.WalletDetails}}
)

// Pages lists every page; templates are parsed for each of them.
var Pages = []Page{
	LoginPage,
	RegisterPage,
	NFTsPage,
	NFTDetailPage,
	CreateNFTPage,
	CollectionsPage,
	CategoriesPage,
	ReportsPage,
	WalletPage,
}
