package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutee/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past teaching sessions and their scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.RunRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-10s  %-19s  %-16s  %-12s  %6s  %6s  %7s  %s\n",
			"ID", "Started", "Scenario", "Level", "Pre", "Post", "Δ", "Learned")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range runs {
			learned := ""
			if r.Learned {
				learned = "yes"
			}
			fmt.Printf("%-10s  %-19s  %-16s  %-12s  %6.1f  %6.1f  %+7.1f  %s\n",
				truncate(r.ID, 10),
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Scenario,
				r.Level,
				r.PreScore,
				r.PostScore,
				r.Improvement,
				learned,
			)
		}
		return nil
	},
}

var runsViewCmd = &cobra.Command{
	Use:   "view <run-id-prefix>",
	Short: "Show a session's transcript and taught summaries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		run, err := findRun(ctx, s.RunRepo(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Run:       %s\n", run.ID)
		fmt.Printf("Scenario:  %s (%s)\n", run.Scenario, run.Level)
		fmt.Printf("Model:     %s\n", run.Model)
		fmt.Printf("Scores:    %.1f → %.1f (%+.1f)\n", run.PreScore, run.PostScore, run.Improvement)
		fmt.Printf("Taught:    %d of %d questions\n", run.QuestionsTaught, run.QuestionsTotal)

		if run.SummariesJSON != "" && run.SummariesJSON != "{}" {
			fmt.Println("\nTaught summaries")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Println(run.SummariesJSON)
		}

		messages, err := s.MessageRepo().ByRun(ctx, run.ID)
		if err != nil {
			return fmt.Errorf("query transcript: %w", err)
		}
		if len(messages) > 0 {
			fmt.Println("\nTranscript")
			fmt.Println(strings.Repeat("─", 72))
			for _, m := range messages {
				tag := ""
				if m.QuestionNumber > 0 {
					tag = fmt.Sprintf(" [Q%d]", m.QuestionNumber)
				}
				fmt.Printf("%s%s: %s\n", m.Role, tag, m.Content)
			}
		}
		return nil
	},
}

// findRun resolves a run by ID or unique ID prefix.
func findRun(ctx context.Context, repo store.RunRepo, idOrPrefix string) (*store.RunRecord, error) {
	if run, err := repo.Get(ctx, idOrPrefix); err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	} else if run != nil {
		return run, nil
	}

	runs, err := repo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	var match *store.RunRecord
	for i := range runs {
		if strings.HasPrefix(runs[i].ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("run prefix %q is ambiguous", idOrPrefix)
			}
			match = &runs[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("run %q not found", idOrPrefix)
	}
	return match, nil
}

func init() {
	runsCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	runsCmd.AddCommand(runsViewCmd)
}
