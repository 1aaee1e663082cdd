package cli

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emmaagwu/boundcache/internal/logging"
	"github.com/emmaagwu/boundcache/paginate"
)

func newPageCmd() *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "page file.csv",
		Short: "Print one page of a CSV dataset",
		Long:  "Print one page of a CSV dataset. The header row is not part of any page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readDataset(args[0])
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Debug().
				Int("rows", len(rows)).
				Int("page", page).
				Int("size", size).
				Msg("paginating dataset")

			result, err := paginate.Page(rows, page, size)
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.WriteAll(result); err != nil {
				return fmt.Errorf("failed to write page: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 10, "rows per page")

	return cmd
}

func readDataset(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	if len(rows) == 0 {
		return rows, nil
	}

	return rows[1:], nil
}
