package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/simonbystrom/commandcenter/internal/board"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report authoring problems in the board document",
		Long: `Check the board document. Duplicate ids, empty categories and negative
numbers are errors; summary counts that differ from the bucket sizes are
warnings, since the dashboard shows the stats as written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, b, err := opts.load()
			if err != nil {
				return err
			}
			logger.Debug("board loaded", "path", opts.boardPath(cfg), "tasks", b.Len())
			return runCheck(cmd.OutOrStdout(), opts.boardPath(cfg), b)
		},
	}
}

func runCheck(w io.Writer, path string, b *board.Board) error {
	issues := b.Check()
	for _, i := range issues {
		fmt.Fprintln(w, i)
	}

	if board.HasErrors(issues) {
		errs := 0
		for _, i := range issues {
			if i.Severity == board.SeverityError {
				errs++
			}
		}
		return fmt.Errorf("%s: %d error(s), %d warning(s)", path, errs, len(issues)-errs)
	}
	fmt.Fprintf(w, "%s: ok (%d tasks, %d warning(s))\n", path, b.Len(), len(issues))
	return nil
}
