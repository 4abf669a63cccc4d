package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lantern/internal/fault"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the fault taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(fault.Kinds()))
			for _, kind := range fault.Kinds() {
				rows = append(rows, []string{
					kind.Type,
					strconv.FormatBool(kind.RetryMeaningful),
					kind.MoreInfoURL,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Type", "Retry meaningful", "More info"},
				rows,
			))
			return nil
		},
	}
}
