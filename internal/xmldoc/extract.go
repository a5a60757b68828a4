package xmldoc

import (
	"fmt"
	"go/ast"
	"strings"

	"github.com/sirupsen/logrus"
)

// Symbol is the resolved semantic identity of a documented declaration: a
// short display signature plus the raw XML fragment attached to it.
type Symbol struct {
	// Signature is the short display form, e.g. Greeter.Greet(string).
	Signature string
	// Fragment is the raw documentation markup. Empty means undocumented.
	Fragment string
}

// Resolver maps a declaration node to its semantic symbol. The second return
// is false when the node is not a documentable kind or has no symbol.
type Resolver func(node ast.Node) (Symbol, bool)

// Extractor renders one Markdown section per documented symbol.
type Extractor struct {
	conv *Converter
	log  logrus.FieldLogger
}

// NewExtractor wires a converter and a diagnostics logger. A nil logger falls
// back to the logrus standard logger.
func NewExtractor(conv *Converter, log logrus.FieldLogger) *Extractor {
	if conv == nil {
		conv = NewConverter("")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Extractor{conv: conv, log: log}
}

// Extract resolves node through resolve and renders its documentation as a
// Markdown section: signature heading, optional summary, optional parameter
// table, optional returns subsection, trailing rule.
//
// It returns ok=false, without rendering anything, when the node has no
// symbol, the symbol has no documentation, or the fragment fails to parse.
// Parse failures are logged and never abort the caller's iteration.
func (e *Extractor) Extract(node ast.Node, resolve Resolver) (section string, ok bool) {
	sym, ok := resolve(node)
	if !ok {
		return "", false
	}
	frag := strings.TrimSpace(sym.Fragment)
	if frag == "" {
		return "", false
	}
	root, err := ParseFragment(frag)
	if err != nil {
		e.log.WithField("member", sym.Signature).
			Warnf("skipping malformed XML documentation: %v (content: %q)", err, frag)
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## `%s`\n\n", sym.Signature)
	if summary := root.SelectElement("summary"); summary != nil {
		if text := e.conv.Render(summary); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}
	if params := root.SelectElements("param"); len(params) > 0 {
		b.WriteString("### Parameters\n\n")
		b.WriteString("| Name | Description |\n")
		b.WriteString("|------|-------------|\n")
		for _, p := range params {
			name := strings.TrimSpace(p.SelectAttrValue("name", ""))
			if name == "" {
				name = "N/A"
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", name, e.conv.Render(p))
		}
		b.WriteString("\n")
	}
	if returns := root.SelectElement("returns"); returns != nil {
		b.WriteString("### Returns\n\n")
		b.WriteString(e.conv.Render(returns))
		b.WriteString("\n\n")
	}
	b.WriteString("---\n\n")
	return b.String(), true
}
