package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a random admin token suitable for ADMIN_TOKEN",
	RunE: func(cmd *cobra.Command, _ []string) error {
		token, err := auth.GenerateToken()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
