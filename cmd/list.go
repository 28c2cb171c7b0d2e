package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/card"
)

type listFlags struct {
	search     string
	categories []string
	bucket     string
	json       bool
}

func newListCmd(opts *options) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered board",
		Long: `Print the board with the same search and category filters the dashboard
uses. Search matches title or description, case-insensitively; repeated
--category flags select any of the named categories.`,
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
			return runList(cmd.OutOrStdout(), b, f)
		},
	}

	cmd.Flags().StringVarP(&f.search, "search", "s", "", "filter by title or description")
	cmd.Flags().StringArrayVarP(&f.categories, "category", "c", nil, "filter by category (repeatable)")
	cmd.Flags().StringVarP(&f.bucket, "bucket", "b", "", "only show one bucket: done, testing, in-progress, todo")
	cmd.Flags().BoolVar(&f.json, "json", false, "output as JSON")
	return cmd
}

func runList(w io.Writer, b *board.Board, f listFlags) error {
	buckets := board.Buckets[:]
	if f.bucket != "" {
		bk, err := board.ParseBucket(f.bucket)
		if err != nil {
			return err
		}
		buckets = []board.Bucket{bk}
	}

	vis := b.Visible(board.Query{Search: f.search, Categories: f.categories})
	if f.json {
		// a single bucket keeps the document shape, other buckets empty
		if f.bucket != "" {
			var only board.Visible
			only[buckets[0]] = vis.Tasks(buckets[0])
			vis = only
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vis)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	for i, bk := range buckets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		tasks := vis.Tasks(bk)
		fmt.Fprintf(w, "%s %s (%d)\n", bk.Icon(), bk.Title(), len(tasks))
		if len(tasks) == 0 {
			fmt.Fprintln(w, "  No tasks here")
			continue
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "TITLE", "CATEGORY", "PRIORITY", "NOTES").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, task := range tasks {
			c := card.New(task)
			var notes []string
			for _, m := range append(c.Meta, c.Badges...) {
				notes = append(notes, m.Icon+" "+m.Text)
			}
			t.Row(c.ID, c.Title, c.Category, c.PriorityIcon, strings.Join(notes, ", "))
		}
		fmt.Fprintln(w, t.Render())
	}
	return nil
}
