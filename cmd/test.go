package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutee/internal/assess"
	"github.com/abhisek/tutee/internal/bank"
	"github.com/abhisek/tutee/internal/llm"
	"github.com/abhisek/tutee/internal/store"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Administer a standalone pre-test to the AI student",
	Long: "Runs a single MCQ test against the student persona without a teaching\n" +
		"session. Useful for checking how a scenario's misconceptions answer before\n" +
		"designing your teaching.",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		ctx := cmd.Context()

		loader := scenarioLoader(cmd)
		cfg, err := loader.Load(v.GetString("scenario"))
		if err != nil {
			return err
		}

		level := cfg.StudentConfig.KnowledgeLevel
		if l := v.GetString("level"); l != "" {
			level = l
		}
		questions := bank.Get(cfg.Name, level)
		if len(questions) == 0 {
			return fmt.Errorf("no questions for scenario %q at level %q (levels: %s)",
				cfg.Name, level, strings.Join(bank.Levels(cfg.Name), ", "))
		}

		persona, err := cfg.Persona(level, "")
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		provider, err := llm.NewProviderFromEnv(ctx, db.EventRepo())
		if err != nil {
			return err
		}

		fmt.Printf("Administering %s (%s) to the student...\n", cfg.Name, level)
		result, err := assess.NewAdministrator(provider).Administer(ctx, assess.Administration{
			Phase:     "pre-test",
			Persona:   persona,
			Questions: questions,
		})
		if err != nil {
			if raw := assess.RawReply(err); raw != "" {
				fmt.Printf("Raw reply:\n%s\n", raw)
			}
			return err
		}

		printTestResult("Test", result)
		return nil
	},
}

func init() {
	testCmd.Flags().StringP("scenario", "s", "", "Scenario name (see `tutee scenarios`)")
	testCmd.Flags().StringP("level", "l", "", "Knowledge level override (beginner, intermediate)")
	testCmd.Flags().String("scenario-dir", "", "Load scenarios from a directory instead of the built-ins")
	_ = testCmd.MarkFlagRequired("scenario")
}
