package transform

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mrjoshuak/gdocfmt/internal/styles"
)

// formatIntent is a set of the inline formats a span can carry.
type formatIntent uint8

const (
	intentBold formatIntent = 1 << iota
	intentItalic
	intentUnderline
)

// canonical declarations for each intent
var intentDeclarations = []struct {
	intent   formatIntent
	property string
	value    string
}{
	{intentBold, "font-weight", "700"},
	{intentItalic, "font-style", "italic"},
	{intentUnderline, "text-decoration", "underline"},
}

// intentsOf reads the formatting intents out of a declaration set. The
// canonical declarations map back to the same intents.
func intentsOf(decls styles.Declarations) formatIntent {
	var intents formatIntent

	if v, ok := decls.Get("font-weight"); ok && isBoldWeight(v) {
		intents |= intentBold
	}
	if v, ok := decls.Get("font-style"); ok {
		v = strings.ToLower(v)
		if v == "italic" || strings.HasPrefix(v, "oblique") {
			intents |= intentItalic
		}
	}
	for _, prop := range []string{"text-decoration", "text-decoration-line"} {
		if v, ok := decls.Get(prop); ok && strings.Contains(strings.ToLower(v), "underline") {
			intents |= intentUnderline
		}
	}

	return intents
}

func isBoldWeight(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "bold", "bolder":
		return true
	}
	weight, err := strconv.Atoi(v)
	return err == nil && weight >= 600
}

// canonicalStyle returns the minimal declaration set for intents.
func canonicalStyle(intents formatIntent) styles.Declarations {
	var decls styles.Declarations
	for _, d := range intentDeclarations {
		if intents&d.intent != 0 {
			decls.Set(d.property, d.value)
		}
	}
	return decls
}

// NormalizeSpanStyle rewrites a span style attribute into its canonical form.
// It returns "" when the style carries no bold, italic or underline intent.
func NormalizeSpanStyle(style string) string {
	return canonicalStyle(intentsOf(styles.ParseDeclarations(style))).String()
}

// normalizeInline rewrites the styles the scrubber let through: spans keep
// their canonical formatting, images keep their width, lists keep their
// marker type. Prose text outside code blocks is normalized afterwards.
func normalizeInline(d *document) int {
	changed := 0

	d.body.Find("span").Each(func(_ int, s *goquery.Selection) {
		style, hasStyle := s.Attr("style")
		class, hasClass := s.Attr("class")
		if !hasStyle && !hasClass {
			return
		}

		decls := d.classes.Lookup(strings.Fields(class)).Merge(styles.ParseDeclarations(style))
		canonical := canonicalStyle(intentsOf(decls)).String()

		s.RemoveAttr("class")
		if canonical == "" {
			s.RemoveAttr("style")
		} else {
			s.SetAttr("style", canonical)
		}
		if canonical != style || hasClass {
			changed++
		}
	})

	d.body.Find("img").Each(func(_ int, s *goquery.Selection) {
		if keepOnly(s, "width") {
			changed++
		}
		s.RemoveAttr("class")
	})

	d.body.Find("ol, ul").Each(func(_ int, s *goquery.Selection) {
		if keepOnly(s, "list-style-type") {
			changed++
		}
	})

	changed += normalizeProseText(d.body.Get(0))
	return changed
}

// keepOnly reduces the style of s to the single named property, verbatim.
// It reports whether the attribute changed.
func keepOnly(s *goquery.Selection, property string) bool {
	style, ok := s.Attr("style")
	if !ok {
		return false
	}

	value, found := styles.ParseDeclarations(style).Get(property)
	if !found {
		s.RemoveAttr("style")
		return true
	}

	kept := styles.Declaration{Property: property, Value: value}.String()
	s.SetAttr("style", kept)
	return kept != style
}
