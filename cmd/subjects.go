package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/focusclock/internal/accrual"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects time can be tracked against",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, s := range accrual.Subjects() {
			fmt.Fprintf(out, "%d  %s\n", i+1, s)
		}
	},
}
