package style_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
)

func TestStyle_PrimaryName(t *testing.T) {
	tests := []struct {
		name   string
		module style.ImportedModule
		want   string
	}{
		{"no member", style.ImportedModule{ModuleName: "a"}, ""},
		{"default", style.ImportedModule{DefaultMember: "Foo", NamespaceMember: "ns"}, "Foo"},
		{"namespace", style.ImportedModule{NamespaceMember: "ns"}, "ns"},
		{
			"first named alias",
			style.ImportedModule{NamedMembers: []style.NamedMember{
				{ImportedName: "z", LocalAlias: "Zed"},
				{ImportedName: "a", LocalAlias: "a"},
			}},
			"Zed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.module.PrimaryName())
		})
	}
}

func TestStyle_Shape(t *testing.T) {
	tests := []struct {
		def, ns string
		named   int
		want    style.MemberSet
		ok      bool
	}{
		{"", "", 0, style.MemberNone, true},
		{"a", "", 0, style.MemberDefault, true},
		{"", "a", 0, style.MemberNamespace, true},
		{"", "", 2, style.MemberNamed, true},
		{"a", "b", 0, style.MemberDefaultNamespace, true},
		{"a", "", 1, style.MemberDefaultNamed, true},
		{"", "b", 1, style.MemberNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			req := require.New(t)
			got, ok := style.Shape(tt.def, tt.ns, tt.named)
			req.Equal(tt.ok, ok)
			req.Equal(tt.want, got)
		})
	}
}

func TestStyle_Validate(t *testing.T) {
	req := require.New(t)

	req.NoError(style.ImportedModule{ModuleName: "a"}.Validate())
	req.NoError(style.ImportedModule{
		ModuleName:    "a",
		Members:       style.MemberDefaultNamed,
		DefaultMember: "A",
		NamedMembers:  []style.NamedMember{{ImportedName: "b", LocalAlias: "c"}},
	}.Validate())

	err := style.ImportedModule{ModuleName: "a", Members: style.MemberDefault}.Validate()
	req.ErrorContains(err, "member set default does not match bindings (none)")

	req.Error(style.ImportedModule{Members: style.MemberNone}.Validate())
	req.Error(style.ImportedModule{
		ModuleName:      "a",
		Members:         style.MemberNamed,
		NamespaceMember: "ns",
		NamedMembers:    []style.NamedMember{{ImportedName: "b", LocalAlias: "b"}},
	}.Validate())
}

func TestStyle_MemberSet_String(t *testing.T) {
	req := require.New(t)
	req.Equal("default+namespace", style.MemberDefaultNamespace.String())
	req.Equal("MemberSet(42)", style.MemberSet(42).String())
}
