package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert default content if the store has never been seeded",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	res, err := rt.service().SeedDefaults(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	out := cmd.OutOrStdout()
	if res.Skipped {
		fmt.Fprintln(out, "hero section present, nothing seeded")
		return nil
	}
	fmt.Fprintf(out, "seeded %d sections, %d skills, %d projects\n", res.Sections, res.Skills, res.Projects)
	return nil
}
