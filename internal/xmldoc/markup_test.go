package xmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderFragment(t *testing.T, conv *Converter, frag string) string {
	t.Helper()
	root, err := ParseFragment(frag)
	require.NoError(t, err)
	return conv.Render(root)
}

func TestRenderPlainText(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "Gets the value.", renderFragment(t, conv, "  Gets the   value.\n"))
	assert.Equal(t, "One two three.", renderFragment(t, conv, "One\ntwo\n\nthree."))
	assert.Equal(t, "", renderFragment(t, conv, "   \n\t "))
}

func TestRenderInlineCode(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "`int`", renderFragment(t, conv, "<c>int</c>"))
	assert.Equal(t, "`padded`", renderFragment(t, conv, "<c>  padded  </c>"))
}

func TestRenderInlineCodeFlattensNestedElements(t *testing.T) {
	conv := NewConverter("")
	// Elements inside <c> are not rendered, only their text survives.
	assert.Equal(t, "`List of T`", renderFragment(t, conv, `<c>List of <em>T</em></c>`))
}

func TestRenderCodeBlock(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "`a`", renderFragment(t, conv, "<code>a</code>"))
	assert.Equal(t, "```go\na\nb\n```", renderFragment(t, conv, "<code>a\nb</code>"))
}

func TestRenderCodeBlockCustomFence(t *testing.T) {
	conv := NewConverter("csharp")
	assert.Equal(t, "```csharp\nvar x = 1;\nreturn x;\n```",
		renderFragment(t, conv, "<code>var x = 1;\nreturn x;</code>"))
}

func TestRenderSeeCref(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "`Foo.Bar`", renderFragment(t, conv, `<see cref="M:Foo.Bar"/>`))
}

func TestRenderSeeHref(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "[Label](http://x)", renderFragment(t, conv, `<see href="http://x">Label</see>`))
}

func TestRenderSeeLangword(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "`null`", renderFragment(t, conv, `<see langword="null"/>`))
}

func TestRenderSeeAttributePriority(t *testing.T) {
	conv := NewConverter("")
	// cref wins over href and langword.
	assert.Equal(t, "`Foo`",
		renderFragment(t, conv, `<see cref="T:Foo" href="http://x" langword="null">text</see>`))
	// Without any attribute the element's own text is the fallback.
	assert.Equal(t, "fallback", renderFragment(t, conv, `<see> fallback </see>`))
}

func TestRenderUnknownTagKeepsText(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "hi", renderFragment(t, conv, "<remarks>hi</remarks>"))
	// Nested unknown wrappers stay transparent all the way down.
	assert.Equal(t, "deep `x`", renderFragment(t, conv, "<remarks>deep <para><c>x</c></para></remarks>"))
}

func TestRenderMixedContentKeepsWordBreaks(t *testing.T) {
	conv := NewConverter("")
	assert.Equal(t, "Returns `nil` when empty.",
		renderFragment(t, conv, "Returns <c>nil</c> when\n empty."))
	assert.Equal(t, "See `Foo.Bar` for details.",
		renderFragment(t, conv, `See <see cref="T:Foo.Bar"/> for details.`))
}

func TestParseFragmentMultipleTopLevelTags(t *testing.T) {
	root, err := ParseFragment("<summary>a</summary><returns>b</returns>")
	require.NoError(t, err)
	assert.NotNil(t, root.SelectElement("summary"))
	assert.NotNil(t, root.SelectElement("returns"))
}

func TestParseFragmentMalformed(t *testing.T) {
	_, err := ParseFragment("<summary>unclosed")
	assert.Error(t, err)
}
