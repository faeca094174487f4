// Package styleapi provides the default capabilities the import style is
// composed from: member-shape and locality predicates, name-shape
// predicates, combinators and comparators.
package styleapi

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/maruel/natural"

	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
)

type api struct{}

// New returns the default capability set.
func New() style.API {
	return api{}
}

func (api) And(predicates ...style.Predicate) style.Predicate {
	return func(m style.ImportedModule) bool {
		for _, p := range predicates {
			if !p(m) {
				return false
			}
		}
		return true
	}
}

func (api) Not(predicate style.Predicate) style.Predicate {
	return func(m style.ImportedModule) bool {
		return !predicate(m)
	}
}

func (api) Member(predicate style.NamePredicate) style.Predicate {
	return func(m style.ImportedModule) bool {
		return predicate(m.PrimaryName())
	}
}

func (api) HasNoMember(m style.ImportedModule) bool {
	return m.Members == style.MemberNone
}

func (api) HasDefaultMember(m style.ImportedModule) bool {
	switch m.Members {
	case style.MemberDefault, style.MemberDefaultNamespace, style.MemberDefaultNamed:
		return true
	}
	return false
}

func (api) HasNamedMembers(m style.ImportedModule) bool {
	return m.Members == style.MemberNamed || m.Members == style.MemberDefaultNamed
}

func (api) HasNamespaceMember(m style.ImportedModule) bool {
	return m.Members == style.MemberNamespace || m.Members == style.MemberDefaultNamespace
}

func (api) HasOnlyDefaultMember(m style.ImportedModule) bool {
	return m.Members == style.MemberDefault
}

func (api) HasOnlyNamedMembers(m style.ImportedModule) bool {
	return m.Members == style.MemberNamed
}

func (api) HasOnlyNamespaceMember(m style.ImportedModule) bool {
	return m.Members == style.MemberNamespace
}

func (a api) IsAbsoluteModule(m style.ImportedModule) bool {
	return !a.IsRelativeModule(m)
}

func (api) IsRelativeModule(m style.ImportedModule) bool {
	return strings.HasPrefix(m.ModuleName, ".")
}

// StartsWithAlphanumeric only accepts ASCII letters and digits.
func (api) StartsWithAlphanumeric(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// StartsWithLowerCase is true when the first rune is unchanged by lowercasing.
func (api) StartsWithLowerCase(name string) bool {
	r, ok := firstRune(name)
	return ok && unicode.ToLower(r) == r
}

// StartsWithUpperCase is true when the first rune is unchanged by uppercasing.
func (api) StartsWithUpperCase(name string) bool {
	r, ok := firstRune(name)
	return ok && unicode.ToUpper(r) == r
}

func firstRune(name string) (rune, bool) {
	if name == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, true
}

// Unicode compares by code point. Byte order of UTF-8 is code point order.
func (api) Unicode(a, b string) int {
	return strings.Compare(a, b)
}

func (api) Naturally(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

func (api) ByMember(cmp style.StringComparator) style.Comparator {
	return func(a, b style.ImportedModule) int {
		return cmp(a.PrimaryName(), b.PrimaryName())
	}
}

func (api) ByModuleName(cmp style.StringComparator) style.Comparator {
	return func(a, b style.ImportedModule) int {
		return cmp(a.ModuleName, b.ModuleName)
	}
}

func (api) ByName(cmp style.StringComparator) style.MemberComparator {
	return func(a, b style.NamedMember) int {
		return cmp(a.ImportedName, b.ImportedName)
	}
}

func (api) ByAlias(cmp style.StringComparator) style.MemberComparator {
	return func(a, b style.NamedMember) int {
		return cmp(a.LocalAlias, b.LocalAlias)
	}
}
