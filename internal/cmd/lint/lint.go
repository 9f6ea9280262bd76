// Package lint provides the lint command.
package lint

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/diagnose"
)

// ErrDiagnosticsFound is returned when at least one error diagnostic was reported.
var ErrDiagnosticsFound = errors.New("markup has errors")

type lintOptions struct {
	files []string
	watch bool
}

// NewCmdLint creates the lint command.
func NewCmdLint() *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint FILE...",
		Short: "Report invalid component options and templates",
		Long: `Check search UI markup against the component documentation.

Reports duplicate options, missing required options, values outside an
option's allowed set or type, and malformed result templates. Components
inside result template bodies are checked too.

Exits non-zero when any error is reported.`,
		Example: `  # Lint a page
  sui lint index.html

  # Re-lint whenever the files or the documentation change
  sui lint --watch index.html templates.html

  # Machine-readable output
  sui lint -o json index.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			g := cmdutil.GlobalFlags(cmd)
			session, err := g.NewSession()
			if err != nil {
				return err
			}
			if opts.watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return runWatch(ctx, opts, session, g.DocumentationPath(session.Config))
			}
			return runLint(opts, session)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-lint when a file or the documentation changes")

	return cmd
}

func runLint(opts *lintOptions, session *cmdutil.Session) error {
	results, err := lintFiles(opts.files, diagnose.New(session.Engine))
	if err != nil {
		return err
	}

	if err := session.Renderer.RenderDiagnostics(results); err != nil {
		return fmt.Errorf("failed to render diagnostics: %w", err)
	}

	var errs, warnings int
	for _, r := range results {
		e, w := diagnose.Count(r.Diagnostics)
		errs += e
		warnings += w
	}
	zap.S().Debugw("lint finished", "files", len(results), "errors", errs, "warnings", warnings)

	if session.Renderer.Format() != view.FormatJSON && errs+warnings == 0 {
		session.Renderer.Success(fmt.Sprintf("%d file(s) checked, no problems found", len(results)))
	}

	if errs > 0 {
		return ErrDiagnosticsFound
	}
	return nil
}

func lintFiles(files []string, engine *diagnose.Engine) ([]view.FileDiagnostics, error) {
	results := make([]view.FileDiagnostics, 0, len(files))
	for _, path := range files {
		doc, err := cmdutil.ReadDocument(path)
		if err != nil {
			return nil, err
		}
		diags := engine.Diagnose(doc)
		if diags == nil {
			diags = []diagnose.Diagnostic{}
		}
		results = append(results, view.FileDiagnostics{Path: path, Diagnostics: diags})
	}
	return results, nil
}
