package parser

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/style"
)

func TestParser_Language(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"a.js", "javascript", true},
		{"a.JSX", "javascript", true},
		{"a.mjs", "javascript", true},
		{"a.ts", "typescript", true},
		{"a.cts", "typescript", true},
		{"a.tsx", "tsx", true},
		{"a.go", "", false},
		{"Makefile", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			req := require.New(t)
			got, ok := Language(tt.filename)
			req.Equal(tt.ok, ok)
			req.Equal(tt.want, got)
		})
	}
}

func TestParser_SupportedExtensions(t *testing.T) {
	req := require.New(t)
	exts := SupportedExtensions()
	sort.Strings(exts)
	req.Equal([]string{".cjs", ".cts", ".js", ".jsx", ".mjs", ".mts", ".ts", ".tsx"}, exts)
}

func TestParser_Parse(t *testing.T) {
	req := require.New(t)
	src := `// header
import "./polyfill";
import React, {useState as state, Component} from 'react';
import * as path from "path";
import fs, * as fsAll from "fs"

const x = 1;
import late from "late";
`

	file, err := New().Parse(context.Background(), "index.js", []byte(src))
	req.NoError(err)
	req.Len(file.Imports, 4)
	req.Equal(len("// header\n"), file.Start)
	req.Equal(`import fs, * as fsAll from "fs"`, src[file.Imports[3].Start:file.End])

	sideEffect := file.Imports[0]
	req.Equal(style.ImportedModule{ModuleName: "./polyfill", Members: style.MemberNone}, sideEffect.Module)
	req.Equal(byte('"'), sideEffect.Quote)
	req.True(sideEffect.Semicolon)
	req.Equal(`import "./polyfill";`, sideEffect.Text)

	react := file.Imports[1]
	req.Equal(style.ImportedModule{
		ModuleName:    "react",
		Members:       style.MemberDefaultNamed,
		DefaultMember: "React",
		NamedMembers: []style.NamedMember{
			{ImportedName: "useState", LocalAlias: "state"},
			{ImportedName: "Component", LocalAlias: "Component"},
		},
	}, react.Module)
	req.Equal(byte('\''), react.Quote)
	req.False(react.Padded)

	req.Equal(style.ImportedModule{ModuleName: "path", Members: style.MemberNamespace, NamespaceMember: "path"}, file.Imports[2].Module)

	fs := file.Imports[3]
	req.Equal(style.ImportedModule{
		ModuleName:      "fs",
		Members:         style.MemberDefaultNamespace,
		DefaultMember:   "fs",
		NamespaceMember: "fsAll",
	}, fs.Module)
	req.False(fs.Semicolon)
}

func TestParser_Parse_typescript(t *testing.T) {
	req := require.New(t)
	src := `import type { Props } from "./types";
import { type A, B as C } from "lib";
`

	file, err := New().Parse(context.Background(), "view.ts", []byte(src))
	req.NoError(err)
	req.Len(file.Imports, 2)

	types := file.Imports[0]
	req.Equal("type", types.Keyword)
	req.True(types.Padded)
	req.Equal(style.MemberNamed, types.Module.Members)
	req.Equal([]style.NamedMember{{ImportedName: "Props", LocalAlias: "Props"}}, types.Module.NamedMembers)

	lib := file.Imports[1]
	req.Empty(lib.Keyword)
	req.Equal([]style.NamedMember{
		{ImportedName: "A", LocalAlias: "A", IsTypeOnly: true},
		{ImportedName: "B", LocalAlias: "C"},
	}, lib.Module.NamedMembers)
}

func TestParser_Parse_noImports(t *testing.T) {
	req := require.New(t)
	file, err := New().Parse(context.Background(), "a.js", []byte("export const a = 1;\n"))
	req.NoError(err)
	req.Empty(file.Imports)
	req.Equal(file.Start, file.End)
}

func TestParser_Parse_errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		src      string
		want     error
	}{
		{"unsupported file", "a.py", "import os\n", errors.ErrUnsupportedFileType},
		{"comment between imports", "a.js", "import a from \"a\";\n// note\nimport b from \"b\";\n", errors.ErrUnsupportedImportBlock},
		{"require form", "a.ts", "import fs = require(\"fs\");\n", errors.ErrUnsupportedImportBlock},
		{"syntax error", "a.js", "import a from \"a\";\n)))\n", errors.ErrSyntax},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := p.Parse(context.Background(), tt.filename, []byte(tt.src))
			req.ErrorIs(err, tt.want)
		})
	}
}

func TestParser_Parse_trailingComment(t *testing.T) {
	req := require.New(t)
	src := "import b from \"b\"; // bee\nimport a from \"a\"; /* a */\nrun(); // not an import\n"

	file, err := New().Parse(context.Background(), "a.js", []byte(src))
	req.NoError(err)
	req.Len(file.Imports, 2)
	req.Equal(" // bee", file.Imports[0].Trailing)
	req.Equal(`import b from "b";`, file.Imports[0].Text)
	req.Equal(" /* a */", file.Imports[1].Trailing)
	req.Equal("\nrun(); // not an import\n", src[file.End:])
}

func TestParser_Parse_stringExportNames(t *testing.T) {
	req := require.New(t)
	src := "import {\"z-z\" as zz, 'a b' as ab, c} from \"m\";\n"

	file, err := New().Parse(context.Background(), "a.js", []byte(src))
	req.NoError(err)
	req.Len(file.Imports, 1)

	imp := file.Imports[0]
	zz := style.NamedMember{ImportedName: "z-z", LocalAlias: "zz"}
	ab := style.NamedMember{ImportedName: "a b", LocalAlias: "ab"}
	c := style.NamedMember{ImportedName: "c", LocalAlias: "c"}
	req.Equal([]style.NamedMember{zz, ab, c}, imp.Module.NamedMembers)
	req.Equal(map[style.NamedMember]string{
		zz: `"z-z" as zz`,
		ab: `'a b' as ab`,
		c:  "c",
	}, imp.Specifiers)
}

func TestParser_Parse_commentAfterBlock(t *testing.T) {
	req := require.New(t)
	src := "import b from \"b\";\nimport a from \"a\";\n// trailing\nrun();\n"

	file, err := New().Parse(context.Background(), "a.js", []byte(src))
	req.NoError(err)
	req.Len(file.Imports, 2)
	req.Equal("\n// trailing\nrun();\n", src[file.End:])
}
