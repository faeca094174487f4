package formatter

import (
	"strings"

	"github.com/siyuan-infoblox/js-imports-group/pkg/parser"
	"github.com/siyuan-infoblox/js-imports-group/pkg/sorter"
	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
)

// renderBlock emits the sorted imports one statement per line, with an
// empty line after every group that asks for a separator except the last.
func renderBlock(imports []parser.Import, groups []sorter.Group, eol string) string {
	var lines []string
	for i, group := range groups {
		for _, entry := range group.Entries {
			imp := imports[entry.Index]
			lines = append(lines, renderImport(imp, entry.Module)+imp.Trailing)
		}
		if group.SeparatorAfter && i < len(groups)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, eol)
}

// renderImport returns the statement for the sorted record. The original text
// is kept unless the named members were reordered.
func renderImport(imp parser.Import, module style.ImportedModule) string {
	if sameMembers(imp.Module.NamedMembers, module.NamedMembers) {
		return imp.Text
	}

	var b strings.Builder
	b.WriteString("import ")
	if imp.Keyword != "" {
		b.WriteString(imp.Keyword)
		b.WriteByte(' ')
	}

	var clause []string
	if module.DefaultMember != "" {
		clause = append(clause, module.DefaultMember)
	}
	if module.NamespaceMember != "" {
		clause = append(clause, "* as "+module.NamespaceMember)
	}
	if len(module.NamedMembers) > 0 {
		clause = append(clause, renderNamedMembers(module.NamedMembers, imp.Specifiers, imp.Padded))
	}
	if len(clause) > 0 {
		b.WriteString(strings.Join(clause, ", "))
		b.WriteString(" from ")
	}

	b.WriteByte(imp.Quote)
	b.WriteString(module.ModuleName)
	b.WriteByte(imp.Quote)
	if imp.Attributes != "" {
		b.WriteByte(' ')
		b.WriteString(imp.Attributes)
	}
	if imp.Semicolon {
		b.WriteByte(';')
	}
	return b.String()
}

func renderNamedMembers(members []style.NamedMember, written map[style.NamedMember]string, padded bool) string {
	specs := make([]string, 0, len(members))
	for _, member := range members {
		if spec, ok := written[member]; ok {
			specs = append(specs, spec)
			continue
		}
		spec := member.ImportedName
		if member.LocalAlias != member.ImportedName {
			spec += " as " + member.LocalAlias
		}
		if member.IsTypeOnly {
			spec = "type " + spec
		}
		specs = append(specs, spec)
	}

	if padded {
		return "{ " + strings.Join(specs, ", ") + " }"
	}
	return "{" + strings.Join(specs, ", ") + "}"
}

func sameMembers(a, b []style.NamedMember) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
