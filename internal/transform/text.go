package transform

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRegex = regexp.MustCompile(`[\s\x{00a0}]+`)
	retainedChars   = map[rune]bool{
		'\t': true,
		'\n': true,
		'\r': true,
		'\f': true,
	}
)

// StripControlChars removes Unicode control characters while retaining specific whitespace chars
func StripControlChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if !unicode.IsControl(r) || retainedChars[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseWhitespace turns every run of whitespace, non-breaking spaces
// included, into a single space. It does not trim.
func CollapseWhitespace(text string) string {
	return whitespaceRegex.ReplaceAllString(text, " ")
}

// NormalizeProse performs the prose normalization steps in order
func NormalizeProse(text string) string {
	text = StripControlChars(text)
	text = norm.NFC.String(text)
	return CollapseWhitespace(text)
}

// normalizeProseText normalizes every text node below root that is not
// inside a raw-text element such as <pre>. Text that opens a block loses its
// leading space, and text left empty is removed.
func normalizeProseText(root *html.Node) int {
	changed := 0
	for _, t := range textNodes(root) {
		if insideAny(t, rawTextElements) {
			continue
		}

		text := NormalizeProse(t.Data)
		if opensBlock(t) {
			text = strings.TrimLeft(text, " ")
		}
		if text == t.Data {
			continue
		}

		changed++
		if text == "" {
			removeNode(t)
			continue
		}
		t.Data = text
	}
	return changed
}

// opensBlock checks if n is the first content of its nearest block ancestor
func opensBlock(n *html.Node) bool {
	for c := n; c.Parent != nil; c = c.Parent {
		for s := c.PrevSibling; s != nil; s = s.PrevSibling {
			if s.Type == html.ElementNode || (s.Type == html.TextNode && s.Data != "") {
				return false
			}
		}
		if isBlock(c.Parent) {
			return true
		}
	}
	return false
}

// mergeAdjacentText joins sibling text nodes below root and normalizes the
// prose again. Removing elements leaves text nodes side by side, each already
// normalized, which would otherwise render doubled spaces.
func mergeAdjacentText(root *html.Node) int {
	merged := 0
	for _, t := range textNodes(root) {
		if t.Parent == nil {
			continue
		}
		for next := t.NextSibling; next != nil && next.Type == html.TextNode; next = t.NextSibling {
			t.Data += next.Data
			removeNode(next)
			merged++
		}
	}
	return merged + normalizeProseText(root)
}
