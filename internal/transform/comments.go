package transform

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// comment bodies appended at the end of the document link back to the
	// anchor in the prose
	commentBodySelector = `a[href^="#cmnt_ref"]`
	// anchors in the prose pointing at a comment body
	commentAnchorSelector = `a[href^="#cmnt"], a[id^="cmnt_ref"]`
	// elements whose inline children may be bare reference markers
	proseSelector = "p, li, h1, h2, h3, h4, h5, h6"
	// inline elements an editor wraps a reference marker in
	markerHostSelector = "a, sup"
)

var (
	commentBodyMatcher   = cascadia.MustCompile(commentBodySelector)
	commentAnchorMatcher = cascadia.MustCompile(commentAnchorSelector)
	markerHostMatcher    = cascadia.MustCompile(markerHostSelector)
)

// referenceMarker matches the bracketed letters editors use as comment
// references: [a], [b], ... [aa]
var referenceMarker = regexp.MustCompile(`^\[[a-z]{1,2}\]$`)

// stripComments removes markup comments, the comment bodies an editor
// appends to the document, and every reference anchor left in the prose.
// It runs last, so it also mends the text around everything removed.
func stripComments(d *document) int {
	changed := removeMarkupComments(d.comments)
	changed += removeCommentBodies(d)
	changed += removeCommentAnchors(d)
	changed += removeReferenceMarkers(d)

	return changed + mergeAdjacentText(d.body.Get(0))
}

// collectMarkupComments finds every comment node below root. It must run
// before code blocks hold raw nodes, which the xpath navigator cannot walk.
func collectMarkupComments(root *html.Node) ([]*html.Node, error) {
	return htmlquery.QueryAll(root, "//comment()")
}

// removeMarkupComments deletes the collected comment nodes.
func removeMarkupComments(nodes []*html.Node) int {
	for _, n := range nodes {
		removeNode(n)
	}
	return len(nodes)
}

// removeCommentBodies deletes the block holding each comment body: the
// top-level element of the body that contains the back-link.
func removeCommentBodies(d *document) int {
	removed := 0
	body := d.body.Get(0)
	d.body.FindMatcher(commentBodyMatcher).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		for n.Parent != nil && n.Parent != body {
			n = n.Parent
		}
		if n.Parent == body {
			removeNode(n)
			removed++
		}
	})
	return removed
}

// removeCommentAnchors removes each anchor pointing at a comment body.
func removeCommentAnchors(d *document) int {
	removed := 0
	body := d.body.Get(0)
	d.body.FindMatcher(commentAnchorMatcher).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if !attachedTo(n, body) {
			return
		}
		removeReference(n)
		removed++
	})
	return removed
}

// removeReferenceMarkers removes links and superscripts in prose whose whole
// text is a reference marker. Brackets in running text are left alone.
func removeReferenceMarkers(d *document) int {
	removed := 0
	body := d.body.Get(0)
	d.body.Find(proseSelector).FindMatcher(markerHostMatcher).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if !attachedTo(n, body) || insideAny(n, rawTextElements) {
			return
		}
		if !IsReferenceMarker(textContent(n)) {
			return
		}
		removeReference(n)
		removed++
	})
	return removed
}

// IsReferenceMarker reports whether text, ignoring surrounding space, is a
// bracketed comment reference such as [a] or [bc].
func IsReferenceMarker(text string) bool {
	return referenceMarker.MatchString(strings.TrimSpace(text))
}

// removeReference removes n, and the <sup> around it when nothing else is
// left inside, then mends the gap it leaves.
func removeReference(n *html.Node) {
	if p := n.Parent; p != nil && p.Type == html.ElementNode && p.DataAtom == atom.Sup && onlyChild(p, n) {
		n = p
	}

	prev := lastTextLeaf(n.PrevSibling)
	next := firstTextLeaf(n.NextSibling)
	removeNode(n)
	mendGap(prev, next)
}

// attachedTo checks if root is an ancestor of n
func attachedTo(n, root *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// onlyChild checks if n is the only child of parent other than whitespace
func onlyChild(parent, n *html.Node) bool {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			continue
		}
		if c.Type != html.TextNode || strings.TrimSpace(c.Data) != "" {
			return false
		}
	}
	return true
}

// mendGap keeps the words around a removed node apart without doubling the
// space between them.
func mendGap(prev, next *html.Node) {
	if prev == nil || next == nil {
		return
	}
	switch {
	case endsWithWord(prev.Data) && startsWithWord(next.Data):
		prev.Data += " "
	case strings.HasSuffix(prev.Data, " ") && strings.HasPrefix(next.Data, " "):
		next.Data = strings.TrimPrefix(next.Data, " ")
	}
}
