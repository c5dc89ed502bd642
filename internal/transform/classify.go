package transform

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// elementKind is the closed set of node categories the passes dispatch on.
type elementKind int

const (
	kindOther elementKind = iota
	kindHeader
	kindFormatSpan
	kindImage
	kindList
	kindCodeBlock
	kindComment
)

var kindNames = map[elementKind]string{
	kindOther:      "other",
	kindHeader:     "header",
	kindFormatSpan: "format-span",
	kindImage:      "image",
	kindList:       "list",
	kindCodeBlock:  "code-block",
	kindComment:    "comment",
}

func (k elementKind) String() string {
	return kindNames[k]
}

// classify maps a node to its kind.
func classify(n *html.Node) elementKind {
	if n == nil {
		return kindOther
	}
	if n.Type == html.CommentNode {
		return kindComment
	}
	if n.Type != html.ElementNode {
		return kindOther
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return kindHeader
	case atom.Span:
		return kindFormatSpan
	case atom.Img:
		return kindImage
	case atom.Ol, atom.Ul:
		return kindList
	case atom.Pre:
		return kindCodeBlock
	}
	return kindOther
}

// allowsStyle reports whether elements of this kind may keep a style
// attribute past the scrubber.
func (k elementKind) allowsStyle() bool {
	switch k {
	case kindFormatSpan, kindImage, kindList:
		return true
	}
	return false
}
