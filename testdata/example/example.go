// Package example exercises XML documentation rendering in the e2e tests.
package example

// <summary>Answer documents an exported constant; see <see cref="T:Greeter"/>.</summary>
const Answer = 42

// <summary>internalLimit caps greeting retries.</summary>
const internalLimit = 3

// <summary>Greeter produces greeting messages.</summary>
type Greeter struct {
	// <summary>Name is the default greeting recipient.</summary>
	Name string
}

// <summary>NewGreeter constructs a <c>Greeter</c>.</summary>
// <param name="name">The default recipient name.</param>
// <returns>A ready-to-use greeter.</returns>
func NewGreeter(name string) *Greeter {
	return &Greeter{Name: name}
}

// <summary>
// Greet builds a message for <c>name</c>. House style for greetings is kept
// in <see href="https://example.com/style">the style guide</see>.
// </summary>
// <param name="name">The recipient name; falls back to <see cref="F:Greeter.Name"/> when empty.</param>
// <param name="polite">Adds an honorific when set.</param>
// <returns>
// The greeting, for example:
// <code>
// g := NewGreeter("dev")
// fmt.Println(g.Greet("", true))
// </code>
// </returns>
func (g *Greeter) Greet(name string, polite bool) string {
	if name == "" {
		name = g.Name
	}
	if polite {
		return "good day, " + name
	}
	return "hello " + name
}
