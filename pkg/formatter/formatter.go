package formatter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/parser"
	"github.com/siyuan-infoblox/js-imports-group/pkg/sorter"
	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
	"github.com/siyuan-infoblox/js-imports-group/pkg/styleapi"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
)

// diffContext is the number of unchanged lines shown around a change
const diffContext = 3

type FormatterConfig struct {
	FilePath             string       // path to the source file
	InPlace              bool         // whether to modify the file in place
	Diff                 bool         // print a diff instead of the file
	Check                bool         // only report files whose imports are not sorted
	LiteralNamespaceCase bool         // keep the duplicated default+namespace predicate
	Extensions           []string     // extensions processed when walking directories
	Exclude              []string     // directory names skipped when walking directories
	Out                  io.Writer    // output, stdout when nil
	Logger               *slog.Logger // diagnostics, discarded when nil
}

// formatter handles the import grouping logic
type formatter struct {
	config FormatterConfig
	parser *parser.Parser
	rules  []style.Rule
}

// New creates a new formatter with the rule table built from the default capabilities
func New(config FormatterConfig) *formatter {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Extensions == nil {
		config.Extensions = utils.DefaultExtensions
	}
	if config.Exclude == nil {
		config.Exclude = utils.DefaultExclude
	}

	var opts []style.Option
	if config.LiteralNamespaceCase {
		opts = append(opts, style.WithLiteralNamespaceCase())
	}

	return &formatter{
		config: config,
		parser: parser.New(),
		rules:  style.Rules(styleapi.New(), opts...),
	}
}

func (g *formatter) getFilePath() string {
	return g.config.FilePath
}

func (g *formatter) getInPlace() bool {
	return g.config.InPlace
}

func (g *formatter) out() io.Writer {
	return g.config.Out
}

func (g *formatter) log() *slog.Logger {
	return g.config.Logger
}

// Format returns content with its leading import block grouped and sorted.
// Content without imports is returned unchanged.
func (g *formatter) Format(ctx context.Context, filename string, content []byte) ([]byte, error) {
	file, err := g.parser.Parse(ctx, filename, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}
	if len(file.Imports) == 0 {
		return content, nil
	}

	modules := make([]style.ImportedModule, len(file.Imports))
	for i, imp := range file.Imports {
		modules[i] = imp.Module
	}

	groups, err := sorter.Sort(g.rules, modules)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToSortImports, err)
	}
	g.log().Debug("sorted imports", "file", filename, "imports", len(modules), "groups", len(groups))

	eol := lineEnding(content)
	var buf bytes.Buffer
	buf.Write(content[:file.Start])
	buf.WriteString(renderBlock(file.Imports, groups, eol))
	buf.Write(joinRest(content[file.End:], groups[len(groups)-1].SeparatorAfter, eol))
	return buf.Bytes(), nil
}

// lineEnding returns the line ending of the first line of content
func lineEnding(content []byte) string {
	if newline := bytes.IndexByte(content, '\n'); newline > 0 && content[newline-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// joinRest returns the content following the import block. With a closing
// separator, code that follows the block is preceded by exactly one empty line.
func joinRest(rest []byte, separator bool, eol string) []byte {
	if !separator {
		return rest
	}

	newline := bytes.IndexByte(rest, '\n')
	if newline < 0 || len(bytes.TrimSpace(rest[:newline])) > 0 {
		// no line break after the block, or a comment trails the last import
		return rest
	}

	code := rest[newline+1:]
	for {
		next := bytes.IndexByte(code, '\n')
		if next < 0 || len(bytes.TrimSpace(code[:next])) > 0 {
			break
		}
		code = code[next+1:]
	}
	if len(bytes.TrimSpace(code)) == 0 {
		return []byte(eol)
	}
	return append([]byte(eol+eol), code...)
}

// processFile formats one file and reports whether its content changed
func (g *formatter) processFile(ctx context.Context, path string, single bool) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	output, err := g.Format(ctx, path, src)
	if err != nil {
		return false, err
	}
	changed := !bytes.Equal(src, output)

	switch {
	case g.config.Check:
		if changed {
			color.New(color.FgYellow).Fprintf(g.out(), errors.InfoMsgNeedsFormatting+"\n", path)
		}
	case g.config.Diff:
		if changed {
			writeDiff(g.out(), path, string(src), string(output))
		}
	case g.getInPlace():
		if changed {
			info, err := os.Stat(path)
			if err != nil {
				return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
			}
			if err := os.WriteFile(path, output, info.Mode().Perm()); err != nil {
				return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
			}
		}
	case single:
		if _, err := g.out().Write(output); err != nil {
			return false, err
		}
	}
	return changed, nil
}

// ProcessFile processes the configured source file and groups its imports
func (g *formatter) ProcessFile(ctx context.Context) error {
	path := g.getFilePath()
	g.log().Debug("processing file", "file", path, "project", utils.FindProjectRoot(path))

	changed, err := g.processFile(ctx, path, true)
	if err != nil {
		return err
	}
	if g.config.Check && changed {
		return fmt.Errorf("%w: %s", errors.ErrFilesNotFormatted, path)
	}
	return nil
}

// ProcessFiles processes multiple source files and groups their imports
func (g *formatter) ProcessFiles(ctx context.Context, filePaths []string) error {
	processedCount := 0
	errorCount := 0
	unsortedCount := 0

	for _, filePath := range filePaths {
		g.config.FilePath = filePath
		changed, err := g.processFile(ctx, filePath, false)
		if err != nil {
			color.New(color.FgRed).Fprintf(g.out(), errors.InfoMsgErrorProcessing+"\n", filePath, err)
			g.log().Debug("file failed", "file", filePath, "error", err)
			errorCount++
			continue
		}
		processedCount++
		if changed {
			unsortedCount++
		}
		if g.getInPlace() && !g.config.Check && !g.config.Diff {
			fmt.Fprintf(g.out(), errors.InfoMsgProcessedFiles+"\n", filePath)
		}
	}

	fmt.Fprintf(g.out(), errors.InfoMsgProcessedCount, processedCount)
	if errorCount > 0 {
		color.New(color.FgRed).Fprintf(g.out(), errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Fprintln(g.out())

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	if g.config.Check && unsortedCount > 0 {
		return fmt.Errorf("%w: "+errors.ErrMsgFilesNeedFormatting, errors.ErrFilesNotFormatted, unsortedCount)
	}
	return nil
}

// ProcessPath processes a file or directory path
func (g *formatter) ProcessPath(ctx context.Context, path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		g.config.FilePath = path
		return g.ProcessFile(ctx)
	}

	// When processing directories, in-place mode is recommended
	if !g.getInPlace() && !g.config.Check && !g.config.Diff {
		color.New(color.FgYellow).Fprintf(g.out(), errors.WarnMsgProcessingDirWithoutInPlace+"\n")
		fmt.Fprintf(g.out(), errors.InfoMsgUseInPlaceFlag+"\n\n")
	}

	files, err := utils.FindSourceFiles(path, g.config.Extensions, g.config.Exclude)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
	}

	if len(files) == 0 {
		fmt.Fprintf(g.out(), errors.InfoMsgNoSourceFilesFound+"\n", path)
		return nil
	}

	fmt.Fprintf(g.out(), errors.InfoMsgFoundSourceFiles+"\n", len(files), path)
	if root := utils.FindProjectRoot(path); root != "" {
		fmt.Fprintf(g.out(), errors.InfoMsgProjectRoot, root)
		if name := utils.GetPackageName(root); name != "" {
			fmt.Fprintf(g.out(), " (%s)", name)
		}
		fmt.Fprintln(g.out())
	}
	fmt.Fprintln(g.out())

	return g.ProcessFiles(ctx, files)
}

// writeDiff prints the changed lines between before and after with a few
// lines of context
func writeDiff(w io.Writer, path, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	fmt.Fprintf(w, "--- %s\n+++ %s\n", path, path)
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for i, diff := range diffs {
		text := splitLines(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range text {
				removed.Fprintf(w, "-%s\n", line)
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range text {
				added.Fprintf(w, "+%s\n", line)
			}
		case diffmatchpatch.DiffEqual:
			for _, line := range contextLines(text, i > 0, i < len(diffs)-1) {
				fmt.Fprintf(w, " %s\n", line)
			}
		}
	}
}

// contextLines keeps the lines of an unchanged chunk that border a change
func contextLines(lines []string, afterChange, beforeChange bool) []string {
	var head, tail []string
	if afterChange {
		head = lines[:min(diffContext, len(lines))]
	}
	if beforeChange {
		tail = lines[max(len(lines)-diffContext, 0):]
	}
	if len(head)+len(tail) >= len(lines) && afterChange && beforeChange {
		return lines
	}
	out := append([]string{}, head...)
	if len(out) > 0 && len(tail) > 0 {
		out = append(out, "...")
	}
	return append(out, tail...)
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
