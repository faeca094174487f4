package style

import (
	"fmt"
)

// MemberSet describes which kinds of bindings an import statement declares
type MemberSet int

const (
	MemberNone             MemberSet = iota // import "foo"
	MemberDefault                           // import foo from "foo"
	MemberNamespace                         // import * as foo from "foo"
	MemberNamed                             // import {foo} from "foo"
	MemberDefaultNamespace                  // import foo, * as bar from "foo"
	MemberDefaultNamed                      // import foo, {bar} from "foo"
)

var memberSetNames = map[MemberSet]string{
	MemberNone:             "none",
	MemberDefault:          "default",
	MemberNamespace:        "namespace",
	MemberNamed:            "named",
	MemberDefaultNamespace: "default+namespace",
	MemberDefaultNamed:     "default+named",
}

func (s MemberSet) String() string {
	if name, ok := memberSetNames[s]; ok {
		return name
	}
	return fmt.Sprintf("MemberSet(%d)", int(s))
}

// NamedMember is one binding of a named import list
type NamedMember struct {
	ImportedName string // name exported by the module
	LocalAlias   string // locally bound name, equal to ImportedName without an "as" clause
	IsTypeOnly   bool   // "type" modifier (TypeScript)
}

// ImportedModule is the host-supplied description of one import statement
type ImportedModule struct {
	ModuleName      string
	Members         MemberSet
	DefaultMember   string
	NamespaceMember string
	NamedMembers    []NamedMember
}

// PrimaryName returns the binding used for character-class predicates and
// module-level ordering: the default name, else the namespace name, else the
// local alias of the first named member.
func (m ImportedModule) PrimaryName() string {
	switch {
	case m.DefaultMember != "":
		return m.DefaultMember
	case m.NamespaceMember != "":
		return m.NamespaceMember
	case len(m.NamedMembers) > 0:
		return m.NamedMembers[0].LocalAlias
	}
	return ""
}

// Shape returns the member set implied by the given bindings. The second
// result is false when the combination cannot occur in an import statement.
func Shape(defaultMember, namespaceMember string, namedCount int) (MemberSet, bool) {
	hasDefault := defaultMember != ""
	hasNamespace := namespaceMember != ""
	hasNamed := namedCount > 0

	switch {
	case hasNamespace && hasNamed:
		return MemberNone, false
	case hasDefault && hasNamespace:
		return MemberDefaultNamespace, true
	case hasDefault && hasNamed:
		return MemberDefaultNamed, true
	case hasDefault:
		return MemberDefault, true
	case hasNamespace:
		return MemberNamespace, true
	case hasNamed:
		return MemberNamed, true
	}
	return MemberNone, true
}

// Validate checks that Members agrees with the populated binding fields.
func (m ImportedModule) Validate() error {
	if m.ModuleName == "" {
		return fmt.Errorf("empty module name")
	}

	want, ok := Shape(m.DefaultMember, m.NamespaceMember, len(m.NamedMembers))
	if !ok {
		return fmt.Errorf("module %q: namespace and named members cannot be combined", m.ModuleName)
	}
	if m.Members != want {
		return fmt.Errorf("module %q: member set %s does not match bindings (%s)", m.ModuleName, m.Members, want)
	}

	for i, named := range m.NamedMembers {
		if named.ImportedName == "" || named.LocalAlias == "" {
			return fmt.Errorf("module %q: named member %d has an empty name", m.ModuleName, i)
		}
	}
	return nil
}
