package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/spf13/cobra"
)

func newReportCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print borrowed titles with their borrower counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.connect()
			if err != nil {
				return err
			}
			return writeReport(cmd.Context(), cmd.OutOrStdout(), s.catalog)
		},
	}
}

func writeReport(ctx context.Context, out io.Writer, catalog *library.Catalog) error {
	titles, err := catalog.DistinctBorrowedTitles(ctx)
	if err != nil {
		return fmt.Errorf("borrowed titles: %w", err)
	}
	counts, err := catalog.BorrowedTitleCounts(ctx)
	if err != nil {
		return fmt.Errorf("borrowed title counts: %w", err)
	}

	if len(titles) == 0 {
		fmt.Fprintln(out, "no books are borrowed")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tBORROWERS")
	for _, title := range titles {
		fmt.Fprintf(tw, "%s\t%d\n", title, counts[title])
	}
	return tw.Flush()
}
