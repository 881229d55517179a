package nav

import (
	"net/url"
	"strings"

	"github.com/itsDrac/nft-web/pkg/config"
)

type Link struct {
	Label string
	Href  string
}

// Links is the navigation bar shown on every page.
var Links = []Link{
	{Label: "NFTs", Href: "/nfts"},
	{Label: "Create NFT", Href: "/create-nft"},
	{Label: "Collections", Href: "/collections"},
	{Label: "Categories", Href: "/categories"},
	{Label: "Reports", Href: "/reports"},
	{Label: "Login", Href: "/login"},
	{Label: "Register", Href: "/register"},
}

// authPaths never carry the user id.
var authPaths = map[string]bool{
	"/login":    true,
	"/register": true,
}

// RewriteHref appends user_id=<userID> to href. It leaves href alone when
// there is no user, when it already carries user_id=, or when it points at
// login or registration.
func RewriteHref(href, userID string) string {
	if userID == "" || strings.Contains(href, config.UserIDParam+"=") {
		return href
	}
	u, err := url.Parse(href)
	if err != nil || authPaths[strings.TrimRight(u.Path, "/")] {
		return href
	}

	base, fragment, hasFragment := strings.Cut(href, "#")
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}
	out := base + sep + config.UserIDParam + "=" + url.QueryEscape(userID)
	if hasFragment {
		out += "#" + fragment
	}
	return out
}

// RewriteLinks returns a copy of links with every href rewritten for
// userID. A signed-in user also gets a link to their wallet.
func RewriteLinks(links []Link, userID string) []Link {
	out := make([]Link, 0, len(links)+1)
	for _, l := range links {
		out = append(out, Link{Label: l.Label, Href: RewriteHref(l.Href, userID)})
	}
	if userID != "" {
		out = append(out, Link{
			Label: "My Wallet",
			Href:  RewriteHref("/users/"+url.PathEscape(userID)+"/wallet", userID),
		})
	}
	return out
}
