package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
go-docxml scans a Go package tree for declarations whose doc comments carry XML
documentation tags (<summary>, <param>, <returns>, inline <c>, <code>, <see>),
resolves each declaration against the type checker, and renders one combined
Markdown report. The Cobra-powered CLI includes:

  • Rich, structured help text and version info (` + "`go-docxml --help`" + `, ` + "`go-docxml --version`" + `)
  • Shell completion generation for bash, zsh, fish, and PowerShell
  • A gen-docs helper that can emit Markdown reference docs for the CLI itself

Point it at a package root (defaults to the current directory), optionally keep
it running with --watch, and commit the generated Markdown next to your code.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	app := &cliApp{stdout: stdout, logger: logger}
	cmd := &cobra.Command{
		Use:           "go-docxml [flags] [package-root]",
		Short:         "Render XML documentation comments as Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write the Markdown report to a file instead of stdout")
	flags.StringVar(&app.opts.fenceLang, "fence-lang", "", `language tag for fenced code blocks (default "go")`)
	flags.StringVar(&app.opts.title, "title", "", `report title (default "Project Documentation")`)
	flags.StringVar(&app.opts.configPath, "config", "", "path to a YAML config file (default .docxml.yaml when present)")
	flags.StringSliceVar(&app.opts.exclude, "exclude", nil, "directory names to skip")
	flags.BoolVarP(&app.opts.unexported, "unexported", "u", false, "include unexported declarations")
	flags.BoolVar(&app.opts.watch, "watch", false, "regenerate the report when Go files change (requires -o)")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for go-docxml.

The output should be evaluated by your shell. For example:

  # bash
  go-docxml completion bash > /usr/local/etc/bash_completion.d/go-docxml

  # zsh
  go-docxml completion zsh > "${fpath[1]}/_go-docxml"

  # fish
  go-docxml completion fish | source

  # PowerShell
  go-docxml completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  go-docxml gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
