// Package xmldoc converts XML documentation comments into Markdown.
//
// The package is the pure core of go-docxml: parsing a raw documentation
// fragment into an element tree, recursively rendering that tree as Markdown,
// and sanitizing compiler-style cross-reference identifiers. It performs no
// I/O of its own; diagnostics go through a logger supplied by the caller.
package xmldoc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/beevik/etree"
)

// DefaultFence is the language tag used for fenced code blocks when the
// caller does not configure one.
const DefaultFence = "go"

// fragmentRoot wraps raw fragments so multi-top-level-tag content parses as a
// single document.
const fragmentRoot = "docxml"

// Converter renders a parsed markup element as Markdown text.
//
// Fence is the language identifier emitted on multiline <code> blocks. It is
// fixed for the lifetime of the converter and never varies per block.
type Converter struct {
	Fence string
}

// NewConverter returns a converter using fence as the code-block language,
// falling back to DefaultFence when empty.
func NewConverter(fence string) *Converter {
	if fence == "" {
		fence = DefaultFence
	}
	return &Converter{Fence: fence}
}

// ParseFragment parses raw XML documentation markup. Fragments may contain
// several top-level tags, so the content is wrapped in a synthetic root
// element before parsing. The returned element is that root.
func ParseFragment(raw string) (*etree.Element, error) {
	doc := etree.NewDocument()
	wrapped := "<" + fragmentRoot + ">" + raw + "</" + fragmentRoot + ">"
	if err := doc.ReadFromString(wrapped); err != nil {
		return nil, err
	}
	return doc.Root(), nil
}

// Render converts the children of el into a single Markdown string. It is
// pure and deterministic: text runs are whitespace-collapsed, known tags map
// to their Markdown equivalents, and unknown tags are transparent wrappers
// whose descendant text still appears in the output.
func (c *Converter) Render(el *etree.Element) string {
	return strings.TrimSpace(c.renderChildren(el))
}

func (c *Converter) renderChildren(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(collapseSpace(t.Data))
		case *etree.Element:
			b.WriteString(c.renderElement(t))
		}
	}
	return b.String()
}

func (c *Converter) renderElement(el *etree.Element) string {
	switch strings.ToLower(el.Tag) {
	case "c":
		return "`" + strings.TrimSpace(flatText(el)) + "`"
	case "code":
		return c.renderCode(el)
	case "see":
		return c.renderSee(el)
	default:
		// Unknown wrapper: drop the tag, keep everything inside it.
		return c.Render(el)
	}
}

// renderCode decides between inline code and a fenced block by whether the
// trimmed content spans multiple lines. Block content is emitted verbatim.
func (c *Converter) renderCode(el *etree.Element) string {
	text := strings.TrimSpace(flatText(el))
	if !strings.Contains(text, "\n") {
		return "`" + text + "`"
	}
	return "\n\n```" + c.Fence + "\n" + text + "\n```\n\n"
}

// renderSee resolves a cross-reference. Attribute priority: cref, href,
// langword, then the element's own text.
func (c *Converter) renderSee(el *etree.Element) string {
	if cref := strings.TrimSpace(el.SelectAttrValue("cref", "")); cref != "" {
		return "`" + CleanCref(cref) + "`"
	}
	if href := strings.TrimSpace(el.SelectAttrValue("href", "")); href != "" {
		return "[" + strings.TrimSpace(flatText(el)) + "](" + href + ")"
	}
	if word := strings.TrimSpace(el.SelectAttrValue("langword", "")); word != "" {
		return "`" + word + "`"
	}
	return strings.TrimSpace(flatText(el))
}

// flatText concatenates all character data beneath el, ignoring element
// structure. Used for tags whose children are never rendered recursively.
func flatText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(flatText(t))
		}
	}
	return b.String()
}

// collapseSpace replaces every run of whitespace, newlines included, with a
// single space. A single boundary space survives when the input starts or
// ends with whitespace so that words keep their separation across adjacent
// inline elements. Blank-line paragraph breaks are deliberately flattened;
// rendered text regularly lands inside Markdown table cells where literal
// blank lines would break the table.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(r) {
		out = " " + out
	}
	if r, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(r) {
		out = out + " "
	}
	return out
}
