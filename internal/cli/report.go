package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moviedb/internal/report"
	"moviedb/internal/repository/postgres"
)

func reportCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "report",
		Short: "Analytics reports",
	}
	c.AddCommand(reportActorsCmd(e))
	return c
}

func reportActorsCmd(e *env) *cobra.Command {
	opts := report.Options{
		Limit:     report.DefaultLimit,
		Workers:   report.DefaultWorkers,
		BatchSize: report.DefaultBatchSize,
	}
	var output string

	cmd := &cobra.Command{
		Use:   "actors",
		Short: "Actor rating analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := e.openDB(ctx, e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintln(e.out, "Starting Actor Rating Analysis...")
			r, err := report.NewAnalyzer(postgres.NewReportPostgres(db), e.log).Run(ctx, opts)
			if err != nil {
				return err
			}
			if output == "" {
				return report.WriteText(e.out, r)
			}
			return writeReportFile(output, r, e)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Limit, "limit", opts.Limit, "number of actors to analyze, -1 for all")
	f.IntVar(&opts.Workers, "workers", opts.Workers, "concurrent batches")
	f.IntVar(&opts.BatchSize, "batch-size", opts.BatchSize, "actors per batch")
	f.BoolVar(&opts.Detailed, "detailed", false, "include per-actor entries with genres and collaborators")
	f.StringVarP(&output, "output", "o", "", "write the report to this file instead of stdout")
	return cmd
}

func writeReportFile(path string, r *report.Report, e *env) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteText(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Report written to %s\n", path)
	return nil
}
