package styles

import "strings"

// Registry maps list classes to the stylesheet rules that style them and
// tracks which classes are still referenced by list elements. It lives for a
// single document.
type Registry struct {
	rules      []Rule
	byClass    map[string][]int
	referenced map[string]bool
}

// NewRegistry indexes every rule whose selector names a list class. Rules
// without a list class are not retained.
func NewRegistry(rules []Rule) *Registry {
	r := &Registry{
		byClass:    make(map[string][]int),
		referenced: make(map[string]bool),
	}
	for _, rule := range rules {
		classes := rule.ListClasses()
		if len(classes) == 0 {
			continue
		}
		idx := len(r.rules)
		r.rules = append(r.rules, rule)
		for _, class := range classes {
			r.byClass[class] = append(r.byClass[class], idx)
		}
	}
	return r
}

// Reference records that a surviving list element carries class. It reports
// whether the stylesheet had any rule for it.
func (r *Registry) Reference(class string) bool {
	r.referenced[class] = true
	return len(r.byClass[class]) > 0
}

// Rules returns the rules for class in source order.
func (r *Registry) Rules(class string) []Rule {
	var out []Rule
	for _, idx := range r.byClass[class] {
		out = append(out, r.rules[idx])
	}
	return out
}

// Surviving returns, in source order, every rule that names at least one
// referenced class.
func (r *Registry) Surviving() []Rule {
	keep := make([]bool, len(r.rules))
	for class := range r.referenced {
		for _, idx := range r.byClass[class] {
			keep[idx] = true
		}
	}

	var out []Rule
	for i, rule := range r.rules {
		if keep[i] {
			out = append(out, rule)
		}
	}
	return out
}

// Stylesheet renders the surviving rules, one per line, each unchanged.
func (r *Registry) Stylesheet() string {
	surviving := r.Surviving()
	texts := make([]string, len(surviving))
	for i, rule := range surviving {
		texts[i] = rule.Text
	}
	return strings.Join(texts, "\n")
}
