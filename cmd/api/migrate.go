package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the storage schema if it does not exist",
	RunE:  runMigrate,
}

var checkDBCmd = &cobra.Command{
	Use:   "check-db",
	Short: "Verify the configured store is reachable",
	RunE:  runCheckDB,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(checkDBCmd)
}

// openRuntime already ensures the schema, so migrate only has to report.
func runMigrate(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	fmt.Fprintf(cmd.OutOrStdout(), "schema ready on %s\n", rt.store.Backend())
	return nil
}

func runCheckDB(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.service().Ping(cmd.Context()); err != nil {
		return err
	}

	skills, err := rt.service().ListSkills(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s reachable, %d skills stored\n", rt.store.Backend(), len(skills))
	return nil
}
