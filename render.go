package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/tools/go/packages"

	"github.com/agentflare-ai/go-docxml/internal/xmldoc"
)

const (
	defaultTitle          = "Project Documentation"
	noCommentsPlaceholder = "_No XML comments found in this file._"
)

// reportRenderer assembles the single Markdown report: a document header,
// then one section per source file in deterministic order. The accumulating
// buffer is owned by render and appended to strictly sequentially.
type reportRenderer struct {
	ext        *xmldoc.Extractor
	title      string
	baseDir    string
	exclude    []string
	unexported bool
	now        time.Time
}

func (r *reportRenderer) render(pkgs []*packages.Package) []byte {
	var buf bytes.Buffer
	title := r.title
	if title == "" {
		title = defaultTitle
	}
	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "_Generated on %s_\n\n", r.now.UTC().Format(time.RFC3339))
	for _, pkg := range pkgs {
		resolver := newSymbolResolver(pkg)
		for _, sf := range r.sourceFiles(pkg) {
			if r.excluded(sf.rel) {
				continue
			}
			r.renderFile(&buf, sf, resolver)
		}
	}
	return buf.Bytes()
}

type sourceFile struct {
	rel  string
	file *ast.File
}

// sourceFiles pairs each parsed file with its path relative to the scan root
// and sorts them lexicographically so the report order is reproducible.
func (r *reportRenderer) sourceFiles(pkg *packages.Package) []sourceFile {
	files := make([]sourceFile, 0, len(pkg.Syntax))
	for _, file := range pkg.Syntax {
		path := pkg.Fset.Position(file.Pos()).Filename
		files = append(files, sourceFile{rel: r.relativePath(path), file: file})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].rel < files[j].rel
	})
	return files
}

func (r *reportRenderer) relativePath(path string) string {
	if r.baseDir != "" {
		if rel, err := filepath.Rel(r.baseDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.Base(path)
}

func (r *reportRenderer) excluded(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		for _, ex := range r.exclude {
			if part == ex {
				return true
			}
		}
	}
	return false
}

func (r *reportRenderer) renderFile(buf *bytes.Buffer, sf sourceFile, resolver *symbolResolver) {
	fmt.Fprintf(buf, "# File: `%s`\n\n", sf.rel)
	count := 0
	for _, node := range r.documentableDecls(sf.file) {
		section, ok := r.ext.Extract(node, resolver.resolve)
		if !ok {
			continue
		}
		buf.WriteString(section)
		count++
	}
	if count == 0 {
		buf.WriteString(noCommentsPlaceholder + "\n\n---\n\n")
	}
}

// documentableDecls lists the file's documentable declaration nodes in source
// order: funcs and methods, type specs followed by their struct fields, and
// const/var specs. Unexported declarations are skipped unless requested.
func (r *reportRenderer) documentableDecls(file *ast.File) []ast.Node {
	var nodes []ast.Node
	include := func(name string) bool {
		return r.unexported || token.IsExported(name)
	}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if include(d.Name.Name) {
				nodes = append(nodes, d)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					if !include(s.Name.Name) {
						continue
					}
					nodes = append(nodes, s)
					if st, ok := s.Type.(*ast.StructType); ok && st.Fields != nil {
						for _, field := range st.Fields.List {
							if len(field.Names) > 0 && include(field.Names[0].Name) {
								nodes = append(nodes, field)
							}
						}
					}
				case *ast.ValueSpec:
					if len(s.Names) > 0 && include(s.Names[0].Name) {
						nodes = append(nodes, s)
					}
				}
			}
		}
	}
	return nodes
}
