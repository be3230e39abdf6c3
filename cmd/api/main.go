// Package main is the entry point for the terminal portfolio API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Terminal portfolio content API",
	Long:  "Serves portfolio sections, skills, projects and experience to the terminal-style frontend. Runs the HTTP server when no subcommand is given.",
	RunE:  runServe,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
