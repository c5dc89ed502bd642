// Package transform rewrites editor-exported HTML into a constrained,
// portable fragment. A Transformer parses the input, runs a fixed sequence of
// rewrite passes over the tree and renders the children of <body>.
package transform

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/gdocfmt/internal/styles"
	"github.com/mrjoshuak/gdocfmt/types"
)

// document is the per-call state shared by the passes. Nothing in it
// outlives a single Transform call.
type document struct {
	doc      *goquery.Document
	body     *goquery.Selection
	registry *styles.Registry
	classes  styles.ClassIndex
	comments []*html.Node
	opts     types.Options
	logger   *log.Logger
}

type pass struct {
	name string
	run  func(*document) int
}

// passes is the pipeline order. It is a contract: the list pass relies on the
// classes the scrubber leaves on ol/ul, the code pass relies on the inline
// pass having skipped <pre> text, and the comment pass runs last so anchors
// removed from prose cannot be re-exposed by an earlier rewrite.
var passes = []pass{
	{name: "scrub", run: scrubAttributes},
	{name: "inline", run: normalizeInline},
	{name: "lists", run: normalizeLists},
	{name: "code", run: specialCaseCode},
	{name: "comments", run: stripComments},
}

// Transformer runs the rewrite pipeline. It holds only immutable options and
// is safe for concurrent use.
type Transformer struct {
	opts   types.Options
	logger *log.Logger
}

// New creates a Transformer with the given options.
func New(opts types.Options) *Transformer {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Transformer{opts: opts, logger: logger}
}

// ProcessHTML normalizes raw with the default options.
func ProcessHTML(raw string) (string, error) {
	return New(types.DefaultOptions()).Transform(raw)
}

// Transform parses raw, applies every pass in order and returns the rendered
// fragment.
func (t *Transformer) Transform(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", WrapParseError(err, "Transform", "parsing HTML")
	}

	d, err := t.prepare(doc)
	if err != nil {
		return "", WrapParseError(err, "Transform", "preparing document")
	}

	for _, p := range passes {
		changed := p.run(d)
		t.logger.Debug("pass complete", "pass", p.name, "changed", changed)
	}

	out, err := d.body.Html()
	if err != nil {
		return "", WrapRenderError(err, "Transform", "rendering fragment")
	}
	return out, nil
}

// prepare detaches every <style> element, indexes its rules, collects the
// markup comments while the tree holds no raw nodes and, when enabled,
// promotes monospace paragraphs to code blocks while their font information
// is still available.
func (t *Transformer) prepare(doc *goquery.Document) (*document, error) {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, ErrNoBody
	}

	d := &document{
		doc:     doc,
		body:    body,
		classes: styles.ClassIndex{},
		opts:    t.opts,
		logger:  t.logger,
	}

	var rules []styles.Rule
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		sheet := s.Text()
		rules = append(rules, styles.SplitRules(sheet)...)
		if err := d.classes.IndexClasses(sheet); err != nil {
			t.logger.Debug("stylesheet classes not indexed", "err", err)
		}
		s.Remove()
	})
	d.registry = styles.NewRegistry(rules)
	t.logger.Debug("stylesheet collected", "rules", len(rules), "classes", len(d.classes))

	comments, err := collectMarkupComments(doc.Get(0))
	if err != nil {
		return nil, err
	}
	d.comments = comments

	if t.opts.MonospaceCode {
		promoted := promoteMonospace(d)
		t.logger.Debug("monospace paragraphs promoted", "blocks", promoted)
	}

	return d, nil
}
