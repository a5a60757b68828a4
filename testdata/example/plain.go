package example

// Plain is documented with ordinary prose, not XML tags.
func Plain() string {
	return "plain"
}
