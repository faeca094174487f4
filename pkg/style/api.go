package style

// Predicate reports whether an import belongs to a group
type Predicate func(m ImportedModule) bool

// NamePredicate classifies a local binding name
type NamePredicate func(name string) bool

// StringComparator orders two strings, returning a negative number, zero or a positive number
type StringComparator func(a, b string) int

// Comparator orders two imports of the same group
type Comparator func(a, b ImportedModule) int

// MemberComparator orders two named members of one import statement
type MemberComparator func(a, b NamedMember) int

// API is the capability surface the rule table is composed from. The rule
// table never implements a primitive itself; it only combines these.
type API interface {
	// And is true iff every predicate is true. Evaluation stops at the first false.
	And(predicates ...Predicate) Predicate
	Not(predicate Predicate) Predicate
	// Member lifts a name predicate to the import's primary name.
	Member(predicate NamePredicate) Predicate

	HasNoMember(m ImportedModule) bool
	HasDefaultMember(m ImportedModule) bool
	HasNamedMembers(m ImportedModule) bool
	HasNamespaceMember(m ImportedModule) bool
	HasOnlyDefaultMember(m ImportedModule) bool
	HasOnlyNamedMembers(m ImportedModule) bool
	HasOnlyNamespaceMember(m ImportedModule) bool
	IsAbsoluteModule(m ImportedModule) bool
	IsRelativeModule(m ImportedModule) bool

	StartsWithAlphanumeric(name string) bool
	StartsWithLowerCase(name string) bool
	StartsWithUpperCase(name string) bool

	// Unicode orders by code point.
	Unicode(a, b string) int
	// Naturally orders embedded digit runs numerically.
	Naturally(a, b string) int

	ByMember(cmp StringComparator) Comparator
	ByModuleName(cmp StringComparator) Comparator
	ByName(cmp StringComparator) MemberComparator
	ByAlias(cmp StringComparator) MemberComparator
}
