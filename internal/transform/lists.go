package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mrjoshuak/gdocfmt/internal/styles"
)

const (
	listSelector     = "ol, ul"
	levelClassFormat = "level-%d"
)

var (
	levelClassRegex = regexp.MustCompile(`^level-\d+$`)
	listLevelRegex  = regexp.MustCompile(`-(\d+)$`)
)

// normalizeLists gives every list a level-N class matching its nesting depth,
// keeps its list classes in front, and rebuilds the stylesheet from the rules
// those classes reference.
func normalizeLists(d *document) int {
	changed := 0
	if d.opts.NestFlatLists {
		moved := nestFlatLists(d)
		d.logger.Debug("flat lists nested", "moved", moved)
		changed += moved
	}

	d.body.Find(listSelector).Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")

		var listClasses, others []string
		for _, token := range strings.Fields(class) {
			switch {
			case levelClassRegex.MatchString(token):
				// recomputed below
			case styles.IsListClass(token):
				listClasses = append(listClasses, token)
				if !d.registry.Reference(token) {
					d.logger.Debug("list class has no stylesheet rule", "class", token)
				}
			default:
				others = append(others, token)
			}
		}

		tokens := append(listClasses, others...)
		tokens = append(tokens, fmt.Sprintf(levelClassFormat, listDepth(s.Get(0))))
		updated := strings.Join(tokens, " ")
		if updated != class {
			s.SetAttr("class", updated)
			changed++
		}
	})

	if insertStylesheet(d) {
		changed++
	}
	return changed
}

// insertStylesheet puts the surviving list rules into a single <style> at
// the start of the body. Nothing is inserted when no rule survives.
func insertStylesheet(d *document) bool {
	sheet := d.registry.Stylesheet()
	if sheet == "" {
		return false
	}

	style := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: sheet})

	body := d.body.Get(0)
	body.InsertBefore(style, body.FirstChild)
	return true
}

// declaredLevel reads the nesting level encoded in a list class suffix,
// "lst-kix_abc-2" declaring level 2.
func declaredLevel(class string) (int, bool) {
	for _, token := range strings.Fields(class) {
		if !styles.IsListClass(token) {
			continue
		}
		m := listLevelRegex.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		level, err := strconv.Atoi(m[1])
		if err == nil {
			return level, true
		}
	}
	return 0, false
}

// nestFlatLists moves lists that editors export as flat siblings into the
// last item of the preceding list until their depth matches the level their
// class declares. It returns the number of moves.
func nestFlatLists(d *document) int {
	moved := 0
	d.body.Find(listSelector).Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		level, ok := declaredLevel(class)
		if !ok {
			return
		}

		n := s.Get(0)
		for listDepth(n) < level {
			host := listItemHost(n)
			if host == nil {
				break
			}
			n.Parent.RemoveChild(n)
			host.AppendChild(n)
			moved++
		}
	})
	return moved
}

// listItemHost returns the last item of the list immediately before n.
func listItemHost(n *html.Node) *html.Node {
	prev := prevElementSibling(n)
	if classify(prev) != kindList {
		return nil
	}
	return lastChildElement(prev, atom.Li)
}
