package cmd

import (
	"bufio"
	"io"

	"github.com/spf13/cobra"

	"unitconv/core/batch"
	"unitconv/internal/config"
	"unitconv/internal/errors"
)

func newBatchCommand() *cobra.Command {
	var workers int

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert one expression per input line",
		Long: `Read conversion expressions, one per line, and convert them concurrently.

Input is read from stdin. Blank lines and lines starting with '#' are
skipped. Output keeps the input order.

Example:
  printf '5ft = m\n1gal = l\n' | unitconv batch --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = config.Get().Batch.Workers
			}
			runner := batch.NewRunner(newEngine(), workers)
			reports, stats, err := runner.Run(cmd.Context(), lines)
			if err != nil {
				return err
			}

			if err := render(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			if stats.Failed > 0 {
				return errConversionFailed
			}
			return nil
		},
	}

	batchCmd.Flags().IntVarP(&workers, "workers", "w", batch.DefaultWorkers, "number of concurrent conversions")
	return batchCmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Parsing("cannot read input", err)
	}
	return lines, nil
}
