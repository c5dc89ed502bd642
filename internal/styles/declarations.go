// Package styles handles the CSS found in editor exports: inline style
// attributes, the document stylesheet, and the list rules that survive it.
package styles

import (
	"sort"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declaration is a single property:value pair from a style attribute.
type Declaration struct {
	Property string
	Value    string
}

// String returns the declaration in compact prop:value form.
func (d Declaration) String() string {
	return d.Property + ":" + d.Value
}

// Declarations is an ordered set of declarations keyed by property name.
// Setting an existing property replaces its value in place.
type Declarations struct {
	list []Declaration
}

// ParseDeclarations parses the contents of a style attribute. Properties are
// lowercased, values trimmed. Input that the CSS parser rejects falls back to a
// plain split on semicolons, and fragments without a colon are ignored.
func ParseDeclarations(style string) Declarations {
	var d Declarations
	if strings.TrimSpace(style) == "" {
		return d
	}

	// the parser leaves the value of an unterminated last declaration empty
	if !strings.HasSuffix(strings.TrimSpace(style), ";") {
		style += ";"
	}

	parsed, err := parser.ParseDeclarations(style)
	if err != nil {
		return parseLenient(style)
	}
	for _, decl := range parsed {
		d.Set(decl.Property, decl.Value)
	}
	return d
}

func parseLenient(style string) Declarations {
	var d Declarations
	for _, part := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		d.Set(prop, value)
	}
	return d
}

// Set adds or replaces a declaration. Empty properties or values are ignored.
func (d *Declarations) Set(property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	if property == "" || value == "" {
		return
	}
	for i := range d.list {
		if d.list[i].Property == property {
			d.list[i].Value = value
			return
		}
	}
	d.list = append(d.list, Declaration{Property: property, Value: value})
}

// Get returns the value for property.
func (d Declarations) Get(property string) (string, bool) {
	property = strings.ToLower(property)
	for _, decl := range d.list {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Len returns the number of declarations.
func (d Declarations) Len() int {
	return len(d.list)
}

// All returns the declarations in insertion order.
func (d Declarations) All() []Declaration {
	out := make([]Declaration, len(d.list))
	copy(out, d.list)
	return out
}

// Merge returns a new set holding d overlaid with other; values from other win.
func (d Declarations) Merge(other Declarations) Declarations {
	var out Declarations
	for _, decl := range d.list {
		out.Set(decl.Property, decl.Value)
	}
	for _, decl := range other.list {
		out.Set(decl.Property, decl.Value)
	}
	return out
}

// String serializes the set in canonical form: declarations sorted by
// property name and joined with semicolons, without a trailing semicolon.
func (d Declarations) String() string {
	sorted := d.All()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Property < sorted[j].Property
	})

	parts := make([]string, len(sorted))
	for i, decl := range sorted {
		parts[i] = decl.String()
	}
	return strings.Join(parts, ";")
}
