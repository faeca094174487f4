package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
)

// grammars maps language names to their tree-sitter GetLanguage functions
var grammars = map[string]func() unsafe.Pointer{
	"javascript": javascript.GetLanguage,
	"typescript": typescript.GetLanguage,
	"tsx":        tsx.GetLanguage,
}

// extensions maps file extensions to language names
var extensions = map[string]string{
	".js":  "javascript",
	".jsx": "javascript",
	".mjs": "javascript",
	".cjs": "javascript",
	".ts":  "typescript",
	".mts": "typescript",
	".cts": "typescript",
	".tsx": "tsx",
}

// Language returns the grammar name used for the file, if any.
func Language(filename string) (string, bool) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(filename))]
	return lang, ok
}

// SupportedExtensions returns the file extensions the parser has a grammar for.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	return exts
}

// Import is one parsed import statement
type Import struct {
	Module     style.ImportedModule
	Text       string // statement as written
	Start      int    // byte offset of the statement
	End        int
	Quote      byte   // quote character of the module specifier
	Keyword    string // "type" or "typeof" after "import", empty otherwise
	Semicolon  bool
	Attributes string // import attributes clause, e.g. `with { type: "json" }`
	Padded     bool   // named list written as "{ a }"
	Trailing   string // comment on the statement's last line, with its leading space
	// Specifiers holds each named member as written, e.g. `"z-z" as zz`
	Specifiers map[style.NamedMember]string
}

// File is the leading import block of a source file
type File struct {
	Imports []Import
	Start   int // byte span of the block, Start == End when there are no imports
	End     int
}

// Parser reads import blocks from JavaScript and TypeScript sources
type Parser struct {
	parsers map[string]*sitter.Parser
}

// New creates a Parser. Grammars are loaded on first use.
func New() *Parser {
	return &Parser{parsers: make(map[string]*sitter.Parser)}
}

func (p *Parser) parserFor(lang string) *sitter.Parser {
	if tsParser, ok := p.parsers[lang]; ok {
		return tsParser
	}
	tsParser := sitter.NewParser()
	tsParser.SetLanguage(sitter.NewLanguage(grammars[lang]()))
	p.parsers[lang] = tsParser
	return tsParser
}

// Parse extracts the leading import block: the run of top-level import
// statements starting at the first one. Imports after other code are left
// alone.
func (p *Parser) Parse(ctx context.Context, filename string, content []byte) (*File, error) {
	lang, ok := Language(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFileType, filename)
	}

	tree, err := p.parserFor(lang).ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter %s: %w", lang, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &File{}
	if root.IsNull() {
		return file, nil
	}

	started := false
	comment := -1
	for idx := range root.NamedChildCount() {
		child := root.NamedChild(idx)
		switch child.Type() {
		case "import_statement":
			if comment >= 0 {
				return nil, fmt.Errorf("%w: "+errors.ErrMsgCommentInImportBlock, errors.ErrUnsupportedImportBlock, comment)
			}
			imp, err := parseImport(child, content)
			if err != nil {
				return nil, err
			}
			if !started {
				started = true
				file.Start = imp.Start
			}
			file.Imports = append(file.Imports, imp)
			file.End = imp.End
		case "comment", "hash_bang_line":
			if !started || comment >= 0 {
				continue
			}
			if attachTrailing(file, child, content) {
				continue
			}
			comment = int(child.StartByte())
		case "ERROR":
			return nil, fmt.Errorf("%w at byte %d", errors.ErrSyntax, child.StartByte())
		default:
			if started {
				return file, nil
			}
		}
	}
	return file, nil
}

// attachTrailing moves a single-line comment that follows the last import on
// the same line into that import, so it travels with the statement.
func attachTrailing(file *File, n sitter.Node, content []byte) bool {
	last := &file.Imports[len(file.Imports)-1]
	start, end := int(n.StartByte()), int(n.EndByte())
	if n.Type() != "comment" || last.Trailing != "" || start < file.End {
		return false
	}
	if strings.ContainsAny(string(content[file.End:end]), "\r\n") {
		return false
	}
	last.Trailing = string(content[file.End:end])
	last.End = end
	file.End = end
	return true
}

func text(n sitter.Node, content []byte) string {
	return string(content[n.StartByte():n.EndByte()])
}

func containsError(n sitter.Node) bool {
	if n.Type() == "ERROR" {
		return true
	}
	for idx := range n.NamedChildCount() {
		if containsError(n.NamedChild(idx)) {
			return true
		}
	}
	return false
}

func parseImport(n sitter.Node, content []byte) (Import, error) {
	start := int(n.StartByte())
	imp := Import{
		Text:  text(n, content),
		Start: start,
		End:   int(n.EndByte()),
	}
	if containsError(n) {
		return imp, fmt.Errorf("%w: "+errors.ErrMsgMalformedImport, errors.ErrSyntax, start)
	}
	imp.Semicolon = strings.HasSuffix(strings.TrimSpace(imp.Text), ";")

	var source sitter.Node
	var clause sitter.Node
	hasClause, hasSource := false, false
	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)
		switch child.Type() {
		case "import_clause":
			clause, hasClause = child, true
		case "string":
			source, hasSource = child, true
		case "import_attribute", "import_assertion":
			imp.Attributes = text(child, content)
		case "import_require_clause":
			return imp, fmt.Errorf("%w: "+errors.ErrMsgRequireImport, errors.ErrUnsupportedImportBlock, start)
		}
	}
	if !hasSource {
		return imp, fmt.Errorf("%w: "+errors.ErrMsgMalformedImport, errors.ErrSyntax, start)
	}

	specifier := text(source, content)
	if len(specifier) < 2 {
		return imp, fmt.Errorf("%w: "+errors.ErrMsgMalformedImport, errors.ErrSyntax, start)
	}
	imp.Quote = specifier[0]
	imp.Module.ModuleName = specifier[1 : len(specifier)-1]

	// Keywords between "import" and the clause or specifier are anonymous tokens.
	head := source
	if hasClause {
		head = clause
	}
	prefix := strings.TrimSpace(string(content[start+len("import") : head.StartByte()]))
	if prefix == "type" || prefix == "typeof" {
		imp.Keyword = prefix
	}

	if hasClause {
		parseClause(clause, content, &imp)
	}

	members, ok := style.Shape(imp.Module.DefaultMember, imp.Module.NamespaceMember, len(imp.Module.NamedMembers))
	if !ok {
		return imp, fmt.Errorf("%w: "+errors.ErrMsgMalformedImport, errors.ErrSyntax, start)
	}
	imp.Module.Members = members
	return imp, nil
}

func parseClause(clause sitter.Node, content []byte, imp *Import) {
	for idx := range clause.NamedChildCount() {
		child := clause.NamedChild(idx)
		switch child.Type() {
		case "identifier":
			imp.Module.DefaultMember = text(child, content)
		case "namespace_import":
			for i := range child.NamedChildCount() {
				if id := child.NamedChild(i); id.Type() == "identifier" {
					imp.Module.NamespaceMember = text(id, content)
				}
			}
		case "named_imports":
			list := text(child, content)
			imp.Padded = strings.HasPrefix(list, "{ ") || strings.HasPrefix(list, "{\n")
			for i := range child.NamedChildCount() {
				spec := child.NamedChild(i)
				if spec.Type() != "import_specifier" {
					continue
				}
				member := parseSpecifier(spec, content)
				if imp.Specifiers == nil {
					imp.Specifiers = make(map[style.NamedMember]string)
				}
				imp.Specifiers[member] = text(spec, content)
				imp.Module.NamedMembers = append(imp.Module.NamedMembers, member)
			}
		}
	}
}

func parseSpecifier(spec sitter.Node, content []byte) style.NamedMember {
	name := spec.ChildByFieldName("name")
	member := style.NamedMember{
		ImportedName: unquote(text(name, content)),
	}
	member.LocalAlias = member.ImportedName
	if alias := spec.ChildByFieldName("alias"); !alias.IsNull() {
		member.LocalAlias = unquote(text(alias, content))
	}
	member.IsTypeOnly = name.StartByte() > spec.StartByte() &&
		strings.HasPrefix(string(content[spec.StartByte():name.StartByte()]), "type")
	return member
}

// unquote strips the quotes of a string literal export name ("a-b" as ab)
func unquote(name string) string {
	if len(name) >= 2 && (name[0] == '"' || name[0] == '\'') && name[len(name)-1] == name[0] {
		return name[1 : len(name)-1]
	}
	return name
}
