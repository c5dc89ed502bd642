package transform

import (
	"github.com/PuerkitoBio/goquery"
)

// scrubAttributes removes style from every element whose kind does not allow
// it, whatever the style says. The same elements lose their class attribute,
// since no rule outside the list registry reaches the output.
// Span, image and list elements are left for the later passes.
func scrubAttributes(d *document) int {
	changed := 0
	d.body.Find("*").Each(func(_ int, s *goquery.Selection) {
		if classify(s.Get(0)).allowsStyle() {
			return
		}

		touched := false
		if _, ok := s.Attr("style"); ok {
			s.RemoveAttr("style")
			touched = true
		}
		if _, ok := s.Attr("class"); ok {
			s.RemoveAttr("class")
			touched = true
		}
		if touched {
			changed++
		}
	})
	return changed
}
