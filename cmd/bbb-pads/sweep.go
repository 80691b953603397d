package main

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&SweepCommand)
}

var SweepCommand = cobra.Command{
	Use:   "sweep",
	Short: "Revoke expired sessions and exit",
	Long:  "Revoke expired sessions and exit",
	Run: func(cmd *cobra.Command, args []string) {
		n, err := registryService.SweepExpiredSessions(context.Background())
		if err != nil {
			logger.Fatal("could not sweep sessions:", err)
		}
		logger.Printf("swept %d expired sessions", n)
	},
}
