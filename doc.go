// # go-docxml
//
// `go-docxml` extracts XML documentation comments from Go declarations and
// renders them as a single Markdown report. It is aimed at codebases that
// standardize on XML doc tags in their comments (common in code ported from
// other ecosystems): declarations whose doc comments contain `<summary>`,
// `<param>`, `<returns>`, or the inline `<c>`, `<code>`, and `<see>` tags are
// resolved through the type checker and emitted as Markdown sections.
//
// Key capabilities:
//
//   - scan a whole package tree (`pkg` plus `pkg/...`) with
//     `golang.org/x/tools/go/packages`, so every section is backed by a real,
//     type-checked symbol rather than a textual match.
//   - per member: a signature heading, the summary paragraph, a Name/Description
//     parameter table, and a Returns subsection, separated by horizontal rules.
//   - cross-references: `<see cref="M:Foo.Bar"/>` strips the compiler kind
//     marker and renders as `Foo.Bar`; `href` attributes become links and
//     `langword` attributes become inline code.
//   - files without any XML-documented member still appear in the report with a
//     placeholder line, so the output always mirrors the source layout.
//   - malformed fragments are logged and skipped; one broken comment never
//     aborts the run.
//   - `--watch` keeps the report up to date as Go files change.
//   - a Cobra-powered CLI with rich `--help`, `--version`, shell completion,
//     and a `gen-docs` helper for publishing the CLI reference itself.
//
// ## Usage
//
//	go-docxml [flags] [package-root]
//
// Examples:
//
//   - Render the current package tree to stdout:
//
//     go-docxml
//
//   - Write the report for a subtree to a file:
//
//     go-docxml -o docs/API.md ./internal/...
//
//   - Keep the report current while editing:
//
//     go-docxml --watch -o docs/API.md .
//
// ## Supported Flags
//
//   - `-o FILE`: write Markdown to `FILE` (stdout when omitted).
//   - `--fence-lang LANG`: language tag for fenced `<code>` blocks (fixed per
//     run; defaults to `go`).
//   - `--title TEXT`: report title.
//   - `-u`: include unexported declarations.
//   - `--exclude NAMES`: directory names to skip.
//   - `--watch`: regenerate on changes (requires `-o`).
//   - `--config FILE`: YAML config; `.docxml.yaml` is picked up automatically.
//   - `-v`: debug logging on stderr.
//
// ## Configuration
//
// A `.docxml.yaml` in the working directory supplies defaults for flags that
// were not set explicitly:
//
//	output: docs/API.md
//	fence_lang: go
//	title: My Project
//	unexported: false
//	exclude: [gen, third_party]
//
// `DOCXML_OUTPUT` and `DOCXML_FENCE_LANG` override the file's values.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	go-docxml completion bash        # bash
//	go-docxml completion zsh         # zsh
//	go-docxml completion fish | source
//	go-docxml completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `go-docxml` can generate Markdown for each CLI command via `gen-docs`:
//
//	go-docxml gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
