package styles

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

var simpleClassSelector = regexp.MustCompile(`^\.([A-Za-z_][A-Za-z0-9_-]*)$`)

// ClassIndex maps class names to the declarations of stylesheet rules whose
// selector is exactly that one class (".c3"). Editors that move formatting
// out of style attributes into generated classes emit rules of that shape.
type ClassIndex map[string]Declarations

// IndexClasses parses sheet and adds its single-class rules to the index.
// A stylesheet the parser rejects adds nothing.
func (ci ClassIndex) IndexClasses(sheet string) error {
	parsed, err := parser.Parse(sheet)
	if err != nil {
		return err
	}
	for _, rule := range parsed.Rules {
		if rule.Kind != css.QualifiedRule {
			continue
		}
		for _, selector := range rule.Selectors {
			m := simpleClassSelector.FindStringSubmatch(strings.TrimSpace(selector))
			if m == nil {
				continue
			}
			decls := ci[m[1]]
			for _, decl := range rule.Declarations {
				decls.Set(decl.Property, decl.Value)
			}
			ci[m[1]] = decls
		}
	}
	return nil
}

// Lookup merges the declarations of classes, later classes winning.
func (ci ClassIndex) Lookup(classes []string) Declarations {
	var out Declarations
	for _, class := range classes {
		if decls, ok := ci[class]; ok {
			out = out.Merge(decls)
		}
	}
	return out
}
