package sorter

import (
	"fmt"
	"sort"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
)

// Entry is one import placed in the output order
type Entry struct {
	Index  int                  // position of the import in the input
	Module style.ImportedModule // copy with named members in their final order
}

// Group is a run of imports assigned to the same rule
type Group struct {
	Rule           int // index into the rule table
	Entries        []Entry
	SeparatorAfter bool // a blank line follows the group
}

// UnmatchedImportError reports an import that no classification rule accepts
type UnmatchedImportError struct {
	Index      int
	ModuleName string
}

func (e *UnmatchedImportError) Error() string {
	return fmt.Sprintf("%s: %q (import #%d)", errors.ErrUnmatchedImport, e.ModuleName, e.Index+1)
}

func (e *UnmatchedImportError) Unwrap() error {
	return errors.ErrUnmatchedImport
}

// Classify returns the index of the first classification rule matching the
// import, or -1 when none does.
func Classify(rules []style.Rule, module style.ImportedModule) int {
	for i, rule := range rules {
		if rule.Match == nil {
			continue
		}
		if rule.Match(module) {
			return i
		}
	}
	return -1
}

// Sort assigns every import to its rule, orders the imports of each group
// and decides where blank lines go. Groups come back in rule table order.
func Sort(rules []style.Rule, modules []style.ImportedModule) ([]Group, error) {
	buckets := make([][]Entry, len(rules))
	for i, module := range modules {
		if err := module.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidImport, err)
		}
		ruleIndex := Classify(rules, module)
		if ruleIndex < 0 {
			return nil, &UnmatchedImportError{Index: i, ModuleName: module.ModuleName}
		}
		buckets[ruleIndex] = append(buckets[ruleIndex], Entry{Index: i, Module: module})
	}

	var groups []Group
	pending := false
	for i, rule := range rules {
		if rule.IsMarker() {
			if rule.Separator == style.SeparatorBlank && len(groups) > 0 {
				pending = true
			}
			continue
		}

		entries := buckets[i]
		if len(entries) == 0 {
			continue
		}
		if pending {
			groups[len(groups)-1].SeparatorAfter = true
			pending = false
		}

		sortEntries(entries, rule)
		groups = append(groups, Group{Rule: i, Entries: entries})
	}
	if pending {
		groups[len(groups)-1].SeparatorAfter = true
	}

	return groups, nil
}

// sortEntries orders the entries of one group and the named members of each entry
func sortEntries(entries []Entry, rule style.Rule) {
	if rule.Sort != nil {
		sort.SliceStable(entries, func(i, j int) bool {
			return rule.Sort(entries[i].Module, entries[j].Module) < 0
		})
	}

	if rule.SortNamedMembers == nil {
		return
	}
	for i := range entries {
		members := entries[i].Module.NamedMembers
		if len(members) == 0 {
			continue
		}
		sorted := make([]style.NamedMember, len(members))
		copy(sorted, members)
		sort.SliceStable(sorted, func(a, b int) bool {
			return rule.SortNamedMembers(sorted[a], sorted[b]) < 0
		})
		entries[i].Module.NamedMembers = sorted
	}
}

// Flatten returns the entries of all groups in output order.
func Flatten(groups []Group) []Entry {
	var entries []Entry
	for _, group := range groups {
		entries = append(entries, group.Entries...)
	}
	return entries
}

// Modules returns the sorted import records of all groups in output order.
func Modules(groups []Group) []style.ImportedModule {
	entries := Flatten(groups)
	modules := make([]style.ImportedModule, 0, len(entries))
	for _, entry := range entries {
		modules = append(modules, entry.Module)
	}
	return modules
}
