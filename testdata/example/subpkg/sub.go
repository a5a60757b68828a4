// Package subpkg verifies multi-package reports.
package subpkg

// <summary>Message exposes a sample constant.</summary>
const Message = "hi"
