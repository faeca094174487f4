package style

import (
	"regexp"
)

// fixedOrder lists the framework modules that lead their group, in order.
var fixedOrder = [...]string{"react", "prop-types"}

// FixedOrder returns a copy of the framework modules that lead their group.
func FixedOrder() []string {
	return append([]string(nil), fixedOrder[:]...)
}

var frameworkModule = regexp.MustCompile(`^(react|prop-types|redux|mobx|classcat|enzyme)`)

// IsFrameworkModule reports whether the specifier starts with one of the
// framework module names.
func IsFrameworkModule(m ImportedModule) bool {
	return frameworkModule.MatchString(m.ModuleName)
}

func fixedIndex(name string) int {
	for i, fixed := range fixedOrder {
		if fixed == name {
			return i
		}
	}
	return len(fixedOrder)
}

// FrameworkComparator orders module names with the fixed order first and the rest
// by the given fallback.
func FrameworkComparator(fallback StringComparator) StringComparator {
	return func(a, b string) int {
		ia, ib := fixedIndex(a), fixedIndex(b)
		if ia != ib {
			return ia - ib
		}
		return fallback(a, b)
	}
}

func frameworkRule(api API) Rule {
	return Rule{
		Example:          `import React from "react"`,
		Match:            IsFrameworkModule,
		Sort:             api.ByModuleName(FrameworkComparator(api.Naturally)),
		SortNamedMembers: api.ByAlias(api.Unicode),
	}
}
