package main

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"

	"github.com/agentflare-ai/go-docxml/internal/xmldoc"
)

type options struct {
	outputPath string
	fenceLang  string
	title      string
	configPath string
	exclude    []string
	unexported bool
	watch      bool
	verbose    bool
}

type cliApp struct {
	stdout io.Writer
	logger *logrus.Logger
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(positionals) > 1 {
		return errors.New("at most one package root may be given")
	}
	root := "."
	if len(positionals) == 1 {
		root = positionals[0]
	}
	if app.opts.verbose {
		app.logger.SetLevel(logrus.DebugLevel)
	}
	opts, err := app.effectiveOptions()
	if err != nil {
		return err
	}
	if opts.watch {
		return app.watchLoop(ctx, root, opts)
	}
	report, err := app.generate(ctx, root, opts)
	if err != nil {
		return err
	}
	return writeOutput(opts.outputPath, app.stdout, report)
}

// effectiveOptions overlays the YAML config under the command-line flags:
// a flag left at its zero value picks up the config's value.
func (app *cliApp) effectiveOptions() (options, error) {
	opts := app.opts
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return options{}, err
	}
	if cfg == nil {
		return opts, nil
	}
	if opts.outputPath == "" {
		opts.outputPath = cfg.Output
	}
	if opts.fenceLang == "" {
		opts.fenceLang = cfg.FenceLang
	}
	if opts.title == "" {
		opts.title = cfg.Title
	}
	if !opts.unexported {
		opts.unexported = cfg.Unexported
	}
	if len(opts.exclude) == 0 {
		opts.exclude = cfg.Exclude
	}
	return opts, nil
}

func (app *cliApp) generate(ctx context.Context, root string, opts options) ([]byte, error) {
	pkgs, err := loadPackageTree(ctx, root)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %q", root)
	}
	conv := xmldoc.NewConverter(opts.fenceLang)
	r := &reportRenderer{
		ext:        xmldoc.NewExtractor(conv, app.logger),
		title:      opts.title,
		baseDir:    resolveBaseDir(root),
		exclude:    opts.exclude,
		unexported: opts.unexported,
		now:        time.Now(),
	}
	return r.render(pkgs), nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadPackageTree(ctx context.Context, root string) ([]*packages.Package, error) {
	patterns := buildPatterns(root)
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedModule | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	unique := make(map[string]*packages.Package)
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("%s", pkg.Errors[0])
		}
		key := pkg.PkgPath
		if key == "" {
			key = packageDir(pkg)
		}
		unique[key] = pkg
	}
	result := make([]*packages.Package, 0, len(unique))
	for _, pkg := range unique {
		result = append(result, pkg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PkgPath < result[j].PkgPath
	})
	return result, nil
}

func buildPatterns(root string) []string {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	root = filepath.ToSlash(root)
	patterns := []string{root}
	if !strings.Contains(root, "...") {
		recursive := root
		if recursive == "." {
			recursive = "./..."
		} else if strings.HasSuffix(recursive, "/") {
			recursive = recursive + "..."
		} else {
			recursive = recursive + "/..."
		}
		patterns = append(patterns, recursive)
	}
	return patterns
}

func resolveBaseDir(root string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	root = strings.TrimSuffix(root, "/...")
	root = strings.TrimSuffix(root, "\\...")
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return ""
	}
	base, err := filepath.Abs(root)
	if err != nil {
		return ""
	}
	return base
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	if len(pkg.CompiledGoFiles) > 0 {
		return filepath.Dir(pkg.CompiledGoFiles[0])
	}
	return ""
}

// symbolResolver resolves declaration nodes against one package's type
// information. It also indexes the doc comment per node, since for
// single-spec declarations the comment hangs off the enclosing GenDecl
// rather than the spec itself.
type symbolResolver struct {
	pkg        *packages.Package
	docs       map[ast.Node]*ast.CommentGroup
	fieldOwner map[*ast.Field]string
}

func newSymbolResolver(pkg *packages.Package) *symbolResolver {
	r := &symbolResolver{
		pkg:        pkg,
		docs:       make(map[ast.Node]*ast.CommentGroup),
		fieldOwner: make(map[*ast.Field]string),
	}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			r.index(decl)
		}
	}
	return r
}

func (r *symbolResolver) index(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		r.docs[d] = d.Doc
	case *ast.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				doc := s.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				r.docs[s] = doc
				if st, ok := s.Type.(*ast.StructType); ok && st.Fields != nil {
					for _, field := range st.Fields.List {
						r.docs[field] = field.Doc
						r.fieldOwner[field] = s.Name.Name
					}
				}
			case *ast.ValueSpec:
				doc := s.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				r.docs[s] = doc
			}
		}
	}
}

// resolve implements xmldoc.Resolver. Nodes that are not documentable kinds,
// or that the type checker produced no object for, resolve to nothing.
func (r *symbolResolver) resolve(node ast.Node) (xmldoc.Symbol, bool) {
	switch n := node.(type) {
	case *ast.FuncDecl:
		fn, ok := r.pkg.TypesInfo.Defs[n.Name].(*types.Func)
		if !ok {
			return xmldoc.Symbol{}, false
		}
		return r.symbol(n, r.funcSignature(fn)), true
	case *ast.TypeSpec:
		obj := r.pkg.TypesInfo.Defs[n.Name]
		if obj == nil {
			return xmldoc.Symbol{}, false
		}
		return r.symbol(n, obj.Name()), true
	case *ast.ValueSpec:
		if len(n.Names) == 0 || r.pkg.TypesInfo.Defs[n.Names[0]] == nil {
			return xmldoc.Symbol{}, false
		}
		names := make([]string, len(n.Names))
		for i, ident := range n.Names {
			names[i] = ident.Name
		}
		return r.symbol(n, strings.Join(names, ", ")), true
	case *ast.Field:
		if len(n.Names) == 0 {
			return xmldoc.Symbol{}, false
		}
		if r.pkg.TypesInfo.Defs[n.Names[0]] == nil {
			return xmldoc.Symbol{}, false
		}
		return r.symbol(n, r.fieldOwner[n]+"."+n.Names[0].Name), true
	default:
		return xmldoc.Symbol{}, false
	}
}

func (r *symbolResolver) symbol(node ast.Node, signature string) xmldoc.Symbol {
	return xmldoc.Symbol{
		Signature: signature,
		Fragment:  markupText(r.docs[node]),
	}
}

// funcSignature builds the short display form: receiver-qualified name plus
// parameter types. No func keyword, no results, no modifiers.
func (r *symbolResolver) funcSignature(fn *types.Func) string {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return fn.Name()
	}
	qual := types.RelativeTo(r.pkg.Types)
	params := make([]string, 0, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		t := types.TypeString(sig.Params().At(i).Type(), qual)
		if sig.Variadic() && i == sig.Params().Len()-1 {
			t = "..." + strings.TrimPrefix(t, "[]")
		}
		params = append(params, t)
	}
	name := fn.Name()
	if recv := sig.Recv(); recv != nil {
		name = receiverName(recv.Type(), qual) + "." + name
	}
	return name + "(" + strings.Join(params, ", ") + ")"
}

func receiverName(t types.Type, qual types.Qualifier) string {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj().Name()
	}
	return types.TypeString(t, qual)
}

// markupText returns the doc comment's text when it contains XML markup.
// Plain prose comments count as absent documentation and are skipped
// silently, the same as a missing comment.
func markupText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	text := doc.Text()
	if !strings.Contains(text, "<") {
		return ""
	}
	return text
}
