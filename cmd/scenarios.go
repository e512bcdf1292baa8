package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutee/internal/bank"
	"github.com/abhisek/tutee/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List available teaching scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := scenarioLoader(cmd)
		names, err := loader.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No scenarios found.")
			return nil
		}

		for _, name := range names {
			cfg, err := loader.Load(name)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", name)
			fmt.Printf("  %s\n", cfg.Description)
			levels := bank.Levels(name)
			if len(levels) == 0 {
				fmt.Println("  (no question sets)")
			}
			for _, level := range levels {
				fmt.Printf("  %-14s %d questions\n", level, len(bank.Get(name, level)))
			}
			fmt.Printf("  student: %s, policy %s, misconceptions: %s\n",
				cfg.StudentConfig.KnowledgeLevel,
				cfg.StudentConfig.ReleaseAnswersPolicy,
				strings.Join(cfg.MisconceptionStatements(), "; "))
			fmt.Println()
		}
		return nil
	},
}

// scenarioLoader honors --scenario-dir when the command defines it.
func scenarioLoader(cmd *cobra.Command) *scenario.Loader {
	if dir, err := cmd.Flags().GetString("scenario-dir"); err == nil && dir != "" {
		return scenario.WithDir(dir)
	}
	return scenario.NewLoader()
}

func init() {
	scenariosCmd.Flags().String("scenario-dir", "", "Load scenarios from a directory instead of the built-ins")
}
