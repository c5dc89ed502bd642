package styles

import (
	"regexp"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ListClassPrefix marks the generated class names that editors put on list
// containers, e.g. "lst-kix_3x9hb2v1k8ld-0".
const ListClassPrefix = "lst-"

var listClassRegex = regexp.MustCompile(`\.(` + ListClassPrefix + `[A-Za-z0-9_-]+)`)

// Rule is one top-level statement of a stylesheet, kept exactly as written.
type Rule struct {
	// Text is the raw source text of the rule, from the first token of its
	// prelude up to and including the closing brace or semicolon.
	Text string
	// Prelude is the trimmed text before the opening brace: the selector list
	// of a qualified rule, or the at-keyword and its arguments.
	Prelude string
}

// ListClasses returns the list classes referenced by the rule's selector.
func (r Rule) ListClasses() []string {
	var classes []string
	seen := make(map[string]bool)
	for _, m := range listClassRegex.FindAllStringSubmatch(r.Prelude, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			classes = append(classes, m[1])
		}
	}
	return classes
}

// IsListClass reports whether a class token is a generated list class.
func IsListClass(class string) bool {
	return strings.HasPrefix(class, ListClassPrefix) && len(class) > len(ListClassPrefix)
}

// SplitRules splits stylesheet text into its top-level rules without
// reformatting them. Whitespace and comments between rules are dropped, and an
// unterminated trailing rule is discarded.
func SplitRules(sheet string) []Rule {
	var (
		rules   []Rule
		buf     strings.Builder
		prelude strings.Builder
		depth   int
		inBlock bool
		atRule  bool
	)

	flush := func() {
		rules = append(rules, Rule{
			Text:    strings.TrimSpace(buf.String()),
			Prelude: strings.TrimSpace(prelude.String()),
		})
		buf.Reset()
		prelude.Reset()
		inBlock = false
		atRule = false
	}

	s := scanner.New(sheet)
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			break
		}

		if buf.Len() == 0 {
			switch tok.Type {
			case scanner.TokenS, scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC, scanner.TokenBOM:
				continue
			case scanner.TokenAtKeyword:
				atRule = true
			}
		}

		buf.WriteString(tok.Value)
		if !inBlock && !(tok.Type == scanner.TokenChar && tok.Value == "{") {
			prelude.WriteString(tok.Value)
		}

		if tok.Type != scanner.TokenChar {
			continue
		}
		switch tok.Value {
		case "{":
			depth++
			inBlock = true
		case "}":
			if depth == 0 {
				// stray closing brace, discard what was collected
				buf.Reset()
				prelude.Reset()
				atRule = false
				continue
			}
			depth--
			if depth == 0 {
				flush()
			}
		case ";":
			if depth == 0 && atRule {
				flush()
			}
		}
	}

	return rules
}
