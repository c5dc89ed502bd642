package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mrjoshuak/gdocfmt/internal/styles"
)

// codeEscaper escapes code text for output. Non-breaking spaces become the
// visible entity text and every quote, typographic or not, becomes a named
// entity.
var codeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&amp;nbsp;",
	"'", "&apos;",
	"\u2018", "&apos;",
	"\u2019", "&apos;",
	"\u201a", "&apos;",
	"\u201b", "&apos;",
	"\u2032", "&apos;",
	`"`, "&quot;",
	"\u201c", "&quot;",
	"\u201d", "&quot;",
	"\u201e", "&quot;",
	"\u201f", "&quot;",
	"\u2033", "&quot;",
)

// EscapeCode returns text as it must appear inside a rendered code block.
func EscapeCode(text string) string {
	return codeEscaper.Replace(text)
}

// specialCaseCode replaces the text below every <pre> with raw nodes holding
// the escaped text, so whitespace and quotes render exactly as escaped here
// rather than through the serializer's own escaping.
func specialCaseCode(d *document) int {
	changed := 0
	d.body.Find("pre").Each(func(_ int, s *goquery.Selection) {
		pre := s.Get(0)
		for _, t := range textNodes(pre) {
			t.Type = html.RawNode
			t.Data = EscapeCode(t.Data)
			changed++
		}

		// a newline directly after <pre> is dropped when parsed again
		if first := pre.FirstChild; first != nil && first.Type == html.RawNode && strings.HasPrefix(first.Data, "\n") {
			first.Data = "\n" + first.Data
		}
	})
	return changed
}

var monospaceFamilies = map[string]bool{
	"courier":          true,
	"courier new":      true,
	"consolas":         true,
	"monaco":           true,
	"menlo":            true,
	"lucida console":   true,
	"source code pro":  true,
	"roboto mono":      true,
	"ubuntu mono":      true,
	"inconsolata":      true,
	"fira code":        true,
	"fira mono":        true,
	"dejavu sans mono": true,
	"jetbrains mono":   true,
	"monospace":        true,
}

// isMonospaceFamily checks the first family of a font-family value
func isMonospaceFamily(value string) bool {
	first, _, _ := strings.Cut(value, ",")
	first = strings.ToLower(strings.Trim(strings.TrimSpace(first), `"'`))
	return monospaceFamilies[first]
}

// fontFamily returns the font-family an element sets through its class or
// style attribute, or "".
func fontFamily(d *document, n *html.Node) string {
	if n.Type != html.ElementNode {
		return ""
	}
	class, _ := getAttr(n, "class")
	style, _ := getAttr(n, "style")
	decls := d.classes.Lookup(strings.Fields(class)).Merge(styles.ParseDeclarations(style))
	family, _ := decls.Get("font-family")
	return family
}

// fontFamilyAt returns the nearest font-family set on t or its ancestors,
// looking no higher than stop.
func fontFamilyAt(d *document, t, stop *html.Node) string {
	for e := t.Parent; e != nil; e = e.Parent {
		if family := fontFamily(d, e); family != "" {
			return family
		}
		if e == stop {
			break
		}
	}
	return ""
}

// codeLine reports whether paragraph p is a line of code and returns its
// text. A blank paragraph counts when it holds a monospace span.
func codeLine(d *document, p *html.Node) (string, bool) {
	text := textContent(p)
	if strings.TrimSpace(text) == "" {
		mono := false
		goquery.NewDocumentFromNode(p).Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			mono = isMonospaceFamily(fontFamily(d, s.Get(0)))
			return !mono
		})
		return text, mono
	}

	for _, t := range textNodes(p) {
		if strings.TrimSpace(t.Data) == "" {
			continue
		}
		if !isMonospaceFamily(fontFamilyAt(d, t, p)) {
			return "", false
		}
	}
	return text, true
}

// promoteMonospace turns each run of consecutive code paragraphs into one
// <pre>, a line per paragraph. Runs start and end on a non-blank line.
func promoteMonospace(d *document) int {
	blocks := 0
	consumed := make(map[*html.Node]bool)

	d.body.Find("p").Each(func(_ int, s *goquery.Selection) {
		start := s.Get(0)
		if consumed[start] || start.Parent == nil {
			return
		}
		line, ok := codeLine(d, start)
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		run := []*html.Node{start}
		lines := []string{line}
		last := 0
		for n := nextElementSibling(start); n != nil && n.DataAtom == atom.P; n = nextElementSibling(n) {
			l, ok := codeLine(d, n)
			if !ok {
				break
			}
			run = append(run, n)
			lines = append(lines, l)
			if strings.TrimSpace(l) != "" {
				last = len(run) - 1
			}
		}
		run, lines = run[:last+1], lines[:last+1]

		pre := &html.Node{Type: html.ElementNode, Data: "pre", DataAtom: atom.Pre}
		pre.AppendChild(&html.Node{Type: html.TextNode, Data: strings.Join(lines, "\n")})
		start.Parent.InsertBefore(pre, start)
		for _, p := range run {
			consumed[p] = true
			removeNode(p)
		}
		blocks++
	})

	return blocks
}
