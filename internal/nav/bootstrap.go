package nav

import (
	"slices"
	"strconv"
	"strings"

	"github.com/itsDrac/nft-web/internal/render"
)

// Target is one fetch the page bootstrap decided to run.
type Target struct {
	Container render.Container
	// UserID is set for the wallet container.
	UserID string
	// NFTID is set for the bid list.
	NFTID int
	// MissingID means the container needs an id the path did not carry.
	MissingID bool
}

// Bootstrap inspects which containers page carries and returns one
// target per present container. Checks are independent: a page may get
// several targets. The wallet user id and the NFT id of a detail page come
// from the request path.
func Bootstrap(page Page, path string) []Target {
	var targets []Target
	for _, c := range render.Containers {
		if !slices.Contains(page.Containers, c) {
			continue
		}
		switch c {
		case render.WalletDetails:
			if id := WalletUserID(path); id != "" {
				targets = append(targets, Target{Container: c, UserID: id})
			} else {
				targets = append(targets, Target{Container: c, MissingID: true})
			}
		case render.BidsList:
			// without a numeric id in the path there is nothing to fetch
			if id, ok := NFTIDFromPath(path); ok {
				targets = append(targets, Target{Container: c, NFTID: id})
			}
		default:
			targets = append(targets, Target{Container: c})
		}
	}
	return targets
}

// WalletUserID extracts {id} from /users/{id}/wallet.
func WalletUserID(path string) string {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return ""
	}
	return segments[2]
}

// NFTIDFromPath reads the last path segment of /nfts/{id} as a number.
func NFTIDFromPath(path string) (int, bool) {
	segments := strings.Split(strings.TrimRight(path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return 0, false
	}
	id, err := strconv.Atoi(last)
	if err != nil {
		return 0, false
	}
	return id, true
}
