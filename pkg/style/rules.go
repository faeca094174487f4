package style

import (
	"strings"
)

// Separator is the separator mark carried by a rule entry
type Separator int

const (
	SeparatorNone     Separator = iota // classification rule, no mark
	SeparatorBlank                     // blank line between the neighbouring non-empty groups
	SeparatorAttached                  // neighbouring groups stay adjacent
)

// Rule is one entry of the rule table. An entry with a nil Match and a
// separator mark is a marker, not a classification rule.
type Rule struct {
	Example          string // sample statement captured by the rule
	Match            Predicate
	Sort             Comparator       // nil keeps declaration order
	SortNamedMembers MemberComparator // nil keeps declaration order
	Separator        Separator
}

// IsMarker reports whether the entry only carries a separator mark.
func (r Rule) IsMarker() bool {
	return r.Match == nil && r.Separator != SeparatorNone
}

type options struct {
	literalNamespaceCase bool
}

// Option customizes the rule table
type Option func(*options)

// WithLiteralNamespaceCase makes the lowercase default+namespace rows repeat
// the uppercase predicate, as the table this style originates from does.
// Under this option "import foo, * as bar from ..." matches no rule.
func WithLiteralNamespaceCase() Option {
	return func(o *options) {
		o.literalNamespaceCase = true
	}
}

func blank() Rule    { return Rule{Separator: SeparatorBlank} }
func attached() Rule { return Rule{Separator: SeparatorAttached} }

// Rules builds the ordered rule table from the given capabilities.
func Rules(api API, opts ...Option) []Rule {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	and := api.And

	rules := []Rule{
		{
			Example: `import "foo"`,
			Match:   and(api.HasNoMember, api.IsAbsoluteModule),
		},
		blank(),
		{
			Example: `import "./foo"`,
			Match:   and(api.HasNoMember, api.IsRelativeModule),
		},
		blank(),
		frameworkRule(api),
		attached(),
	}

	rules = append(rules, memberRules(api, api.IsAbsoluteModule, `"bar"`, o)...)
	rules = append(rules, blank())
	rules = append(rules, memberRules(api, api.IsRelativeModule, `"./bar"`, o)...)
	rules = append(rules, blank())

	return rules
}

// memberShape is one member-shape block of the table: its shape predicates,
// a sample clause and whether named members are ordered.
type memberShape struct {
	clause      string
	match       []Predicate
	sortMembers bool
	namespace   bool
}

// memberRules returns the fifteen shape x first-character rules for one
// module locality (absolute or relative).
func memberRules(api API, locality Predicate, source string, o options) []Rule {
	and, not, member := api.And, api.Not, api.Member

	shapes := []memberShape{
		{clause: "* as %s", match: []Predicate{api.HasOnlyNamespaceMember}},
		{clause: "%s, * as bar", match: []Predicate{api.HasDefaultMember, api.HasNamespaceMember}, namespace: true},
		{clause: "%s", match: []Predicate{api.HasOnlyDefaultMember}},
		{clause: "%s, {bar, …}", match: []Predicate{api.HasDefaultMember, api.HasNamedMembers}, sortMembers: true},
		{clause: "{%s, bar, …}", match: []Predicate{api.HasOnlyNamedMembers}, sortMembers: true},
	}

	lowerCase := member(api.StartsWithLowerCase)

	var rules []Rule
	for _, shape := range shapes {
		cases := []struct {
			name  string
			first Predicate
		}{
			{"_", not(member(api.StartsWithAlphanumeric))},
			{"Foo", member(api.StartsWithUpperCase)},
			{"foo", lowerCase},
		}
		if shape.namespace && o.literalNamespaceCase {
			cases[2].first = member(api.StartsWithUpperCase)
		}

		for _, c := range cases {
			predicates := append(append([]Predicate{}, shape.match...), locality, c.first)
			rule := Rule{
				Example: "import " + strings.Replace(shape.clause, "%s", c.name, 1) + " from " + source,
				Match:   and(predicates...),
				Sort:    api.ByMember(api.Unicode),
			}
			if shape.sortMembers {
				rule.SortNamedMembers = api.ByName(api.Unicode)
			}
			rules = append(rules, rule)
		}
	}
	return rules
}
