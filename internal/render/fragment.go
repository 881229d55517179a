package render

import (
	"html"
	"html/template"
	"strings"
)

// Container is the stable identity of a page element whose content a
// renderer fully replaces.
type Container string

const (
	NFTGrid          Container = "nftGrid"
	CollectionList   Container = "collectionList"
	CategoriesList   Container = "categoriesList"
	ReportsList      Container = "reportsList"
	WalletDetails    Container = "walletDetails"
	BidsList         Container = "bidsList"
	CollectionSelect Container = "collection"
)

// Containers lists every known container in bootstrap order.
var Containers = []Container{
	NFTGrid,
	CollectionList,
	ReportsList,
	CategoriesList,
	WalletDetails,
	CollectionSelect,
	BidsList,
}

type element struct {
	tag   string
	class string
}

var elements = map[Container]element{
	NFTGrid:          {"div", "nft-grid"},
	CollectionList:   {"div", "collection-list"},
	CategoriesList:   {"ul", "categories-list"},
	ReportsList:      {"div", "reports-list"},
	WalletDetails:    {"div", "wallet-details"},
	BidsList:         {"ul", "bids-list"},
	CollectionSelect: {"select", ""},
}

// Valid reports whether c is a known container.
func (c Container) Valid() bool {
	_, ok := elements[c]
	return ok
}

// Block is one child element of a container. Inner is markup and is
// written as is.
type Block struct {
	Tag   string
	Class string
	Attrs [][2]string
	Inner string
}

func (b Block) write(sb *strings.Builder) {
	sb.WriteString("<")
	sb.WriteString(b.Tag)
	if b.Class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(b.Class)
		sb.WriteString(`"`)
	}
	for _, kv := range b.Attrs {
		sb.WriteString(" ")
		sb.WriteString(kv[0])
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(kv[1]))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(b.Inner)
	sb.WriteString("</")
	sb.WriteString(b.Tag)
	sb.WriteString(">")
}

// Fragment is the complete new content of one container: either a
// message or an ordered list of blocks. Applying a fragment replaces
// whatever the container held before.
type Fragment struct {
	Container Container
	Blocks    []Block
	Message   string
}

// Empty reports whether the fragment renders nothing at all.
func (f Fragment) Empty() bool {
	return len(f.Blocks) == 0 && f.Message == ""
}

// HTML is the container's inner markup.
func (f Fragment) HTML() template.HTML {
	var sb strings.Builder
	if f.Message != "" {
		sb.WriteString("<p>")
		sb.WriteString(f.Message)
		sb.WriteString("</p>")
	}
	for _, b := range f.Blocks {
		b.write(&sb)
	}
	return template.HTML(sb.String())
}

// Element is the container element itself wrapping HTML(). With oob set
// it carries hx-swap-oob so htmx swaps it in place from any response.
func (f Fragment) Element(oob bool) template.HTML {
	el, ok := elements[f.Container]
	if !ok {
		el = element{tag: "div"}
	}
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(el.tag)
	sb.WriteString(` id="`)
	sb.WriteString(string(f.Container))
	sb.WriteString(`"`)
	if f.Container == CollectionSelect {
		sb.WriteString(` name="CollectionID"`)
	}
	if el.class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(el.class)
		sb.WriteString(`"`)
	}
	if oob {
		sb.WriteString(` hx-swap-oob="true"`)
	}
	sb.WriteString(">")
	sb.WriteString(string(f.HTML()))
	sb.WriteString("</")
	sb.WriteString(el.tag)
	sb.WriteString(">")
	return template.HTML(sb.String())
}
