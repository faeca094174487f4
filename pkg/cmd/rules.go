package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
	"github.com/siyuan-infoblox/js-imports-group/pkg/styleapi"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

// RulesCommand holds the flags for the rules command
type RulesCommand struct {
	format string
}

// ruleView is the printable form of one rule table entry
type ruleView struct {
	Index         int    `yaml:"index"`
	Kind          string `yaml:"kind"`
	Example       string `yaml:"example,omitempty"`
	Sorted        bool   `yaml:"sorted"`
	MembersSorted bool   `yaml:"members_sorted"`
}

// NewRulesCommand creates the command printing the rule table
func NewRulesCommand() *cobra.Command {
	c := &RulesCommand{}

	cobraCmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the import rule table",
		Long: `Print the ordered rule table imports are classified with. Each classification
rule shows a sample import it captures; separator entries show where blank
lines go between non-empty groups.`,
		Args: cobra.NoArgs,
		RunE: c.Run,
	}

	cobraCmd.Flags().StringVarP(&c.format, "format", "f", formatTable, "Output format: table or yaml")

	return cobraCmd
}

// Run executes the rules command
func (c *RulesCommand) Run(cmd *cobra.Command, _ []string) error {
	// inherited from the root command, absent when run standalone
	literal, _ := cmd.Flags().GetBool("literal-namespace-case")

	var opts []style.Option
	if literal {
		opts = append(opts, style.WithLiteralNamespaceCase())
	}
	views := ruleViews(style.Rules(styleapi.New(), opts...))

	switch c.format {
	case formatTable:
		return writeRulesTable(cmd.OutOrStdout(), views)
	case formatYAML:
		return writeRulesYAML(cmd.OutOrStdout(), views)
	}
	return fmt.Errorf(errors.ErrMsgUnknownRulesFormat, c.format)
}

func ruleViews(rules []style.Rule) []ruleView {
	views := make([]ruleView, 0, len(rules))
	for i, rule := range rules {
		view := ruleView{Index: i, Kind: "rule"}
		switch {
		case rule.IsMarker() && rule.Separator == style.SeparatorBlank:
			view.Kind = "blank line"
		case rule.IsMarker():
			view.Kind = "attached"
		default:
			view.Example = rule.Example
			view.Sorted = rule.Sort != nil
			view.MembersSorted = rule.SortNamedMembers != nil
		}
		views = append(views, view)
	}
	return views
}

func writeRulesTable(w io.Writer, views []ruleView) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"#", "Kind", "Example", "Sorted", "Members sorted"})
	rules := 0
	for _, view := range views {
		if view.Kind != "rule" {
			tbl.AppendRow(table.Row{view.Index, view.Kind, "", "", ""})
			continue
		}
		rules++
		tbl.AppendRow(table.Row{view.Index, view.Kind, view.Example, yesNo(view.Sorted), yesNo(view.MembersSorted)})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("Total: %d rules, %d separators", rules, len(views)-rules)})

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderRules, err)
	}
	return nil
}

func writeRulesYAML(w io.Writer, views []ruleView) error {
	data, err := yaml.Marshal(views)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderRules, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderRules, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
