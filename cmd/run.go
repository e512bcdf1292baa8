package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutee/internal/assess"
	"github.com/abhisek/tutee/internal/bank"
	"github.com/abhisek/tutee/internal/llm"
	"github.com/abhisek/tutee/internal/posttest"
	"github.com/abhisek/tutee/internal/runlog"
	"github.com/abhisek/tutee/internal/scenario"
	"github.com/abhisek/tutee/internal/session"
	"github.com/abhisek/tutee/internal/store"
	"github.com/abhisek/tutee/internal/teaching"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full learning-by-teaching session",
	Long: "Runs the full cycle: the AI student takes a pre-test, you teach it through\n" +
		"each question in a chat, and it takes a post-test answered only from what you\n" +
		"taught. The improvement between the two tests is your teaching score.",
	RunE: runSession,
}

func init() {
	runCmd.Flags().StringP("scenario", "s", "", "Scenario name (see `tutee scenarios`)")
	runCmd.Flags().StringP("level", "l", "", "Knowledge level override (beginner, intermediate)")
	runCmd.Flags().String("policy", "", "Answer-release policy override")
	runCmd.Flags().Float64("temperature", 0.7, "Sampling temperature for student chat")
	runCmd.Flags().String("scenario-dir", "", "Load scenarios from a directory instead of the built-ins")
	runCmd.Flags().String("logdir", "logs/runs", "Directory for transcript and summary artifacts")
	_ = runCmd.MarkFlagRequired("scenario")
}

func runSession(cmd *cobra.Command, args []string) error {
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
	policy := cfg.StudentConfig.ReleaseAnswersPolicy
	if p := v.GetString("policy"); p != "" {
		policy = p
	}

	questions := bank.Get(cfg.Name, level)
	if len(questions) == 0 {
		return fmt.Errorf("no questions for scenario %q at level %q (levels: %s)",
			cfg.Name, level, strings.Join(bank.Levels(cfg.Name), ", "))
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

	persona, err := cfg.Persona(level, policy)
	if err != nil {
		return err
	}

	state := session.New(cfg.Name, level, questions)
	log, err := runlog.New(v.GetString("logdir"), runlog.Meta{
		Scenario:       cfg.Name,
		Model:          provider.ModelID(),
		Policy:         policy,
		KnowledgeLevel: level,
	})
	if err != nil {
		return err
	}
	defer log.Close()
	_ = log.Log("system", persona, 0)

	if err := db.RunRepo().Create(ctx, store.RunRecord{
		ID:             state.RunID,
		Scenario:       cfg.Name,
		Level:          level,
		Model:          provider.ModelID(),
		QuestionsTotal: len(questions),
	}); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	fmt.Printf("Scenario: %s (%s)\n%s\n", strings.ReplaceAll(cfg.Name, "_", " "), level, cfg.Description)

	// Phase 1: pre-test.
	fmt.Println("\nThe student is taking the pre-test...")
	admin := assess.NewAdministrator(provider)
	pre, err := admin.Administer(ctx, assess.Administration{
		Phase:     "pre-test",
		Persona:   persona,
		Questions: questions,
	})
	if err != nil {
		if raw := assess.RawReply(err); raw != "" {
			slog.Debug("unparseable test reply", "raw", raw)
		}
		return err
	}
	printTestResult("Pre-test", pre)
	if err := state.RecordPreTest(pre); err != nil {
		return err
	}

	// Phase 2: teaching.
	phase := &teachingPhase{
		state:      state,
		cfg:        cfg,
		policy:     policy,
		persona:    persona,
		student:    teaching.NewStudent(provider, v.GetFloat64("temperature")),
		summarizer: teaching.NewSummarizer(provider),
		messages:   db.MessageRepo(),
		log:        log,
		stdin:      bufio.NewScanner(os.Stdin),
	}
	if err := phase.run(ctx, pre); err != nil {
		return err
	}

	// Phase 3: post-test, answered from the taught summaries plus the
	// untouched misconceptions.
	if err := state.BeginPostTest(); err != nil {
		return err
	}
	fmt.Println("\nThe student is taking the post-test...")
	composer := posttest.NewComposer(admin)
	post, err := composer.ComposeAndAdminister(ctx, questions, state.Taught, cfg.MisconceptionStatements())
	if err != nil {
		return err
	}
	printTestResult("Post-test", post)
	if err := state.RecordPostTest(post); err != nil {
		return err
	}

	// Phase 4: report and artifacts.
	summary, err := state.Summarize(provider.ModelID())
	if err != nil {
		return err
	}
	printImprovement(summary.Improvement)

	if err := log.WriteSummary(summary); err != nil {
		return err
	}
	summariesJSON, err := json.Marshal(summary.Summaries)
	if err != nil {
		return fmt.Errorf("encode summaries: %w", err)
	}
	if err := db.RunRepo().Finish(ctx, store.RunRecord{
		ID:              state.RunID,
		PreScore:        summary.Improvement.PreTestScore,
		PostScore:       summary.Improvement.PostTestScore,
		Improvement:     summary.Improvement.Improvement,
		Learned:         summary.Improvement.Learned,
		QuestionsTaught: len(summary.QuestionsTaught),
		SummariesJSON:   string(summariesJSON),
	}); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	fmt.Printf("\nTranscript: %s\nSummary:    %s\n", log.TranscriptPath(), log.SummaryPath())
	return nil
}

// teachingPhase walks the pre-test results question by question. Each
// question gets its own chat segment; marking it done produces a learning
// summary that becomes the student's only memory of the teaching.
type teachingPhase struct {
	state      *session.State
	cfg        *scenario.Config
	policy     string
	persona    string
	student    *teaching.Student
	summarizer *teaching.Summarizer
	messages   store.MessageRepo
	log        *runlog.Writer

	stdin     *bufio.Scanner
	history   []llm.Message
	turnIndex int
}

func (p *teachingPhase) run(ctx context.Context, pre *assess.TestResult) error {
	// Session opener: the student introduces its confusion.
	focus := ""
	if len(p.cfg.Tasks) > 0 {
		focus = p.cfg.Tasks[0]
	}
	confusion := ""
	if statements := p.cfg.MisconceptionStatements(); len(statements) > 0 {
		confusion = statements[0]
	}
	intro := teaching.IntroContext{
		Description:   p.cfg.Description,
		ScenarioFocus: focus,
		Confusion:     confusion,
	}.Render()
	if _, err := p.studentTurn(ctx, intro, 0, nil); err != nil {
		return err
	}

	fmt.Println("\nTeach each question, then `/done` to summarize it, `/skip` to leave it untaught, `/quit` to end teaching early.")

	for i, result := range pre.Questions {
		q := p.state.Questions[i]
		p.printQuestion(q, result, len(pre.Questions))

		// Point the student at this question.
		if _, err := p.studentTurn(ctx, teaching.QuestionFocusContext(result), q.Number, nil); err != nil {
			return err
		}

		quit, err := p.teachQuestion(ctx, q)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	// Close the teaching phase in character. A failed closing turn is
	// harmless; the post-test carries the session.
	if _, err := p.studentTurn(ctx, teaching.ReadyForPostTestContext(), 0, nil); err != nil {
		slog.Warn("closing student turn failed", "error", err)
	}
	return nil
}

// teachQuestion runs the interactive chat for one question until /done,
// /skip, /quit, EOF, or the turn budget. Returns true when the teacher
// quit the whole teaching phase.
func (p *teachingPhase) teachQuestion(ctx context.Context, q bank.Question) (bool, error) {
	seg := teaching.Segment{QuestionNumber: q.Number}
	budget := p.cfg.StudentConfig.TurnBudget
	teacherTurns := 0
	quit := false

	for {
		if teacherTurns >= budget {
			fmt.Printf("(Turn budget of %d reached, summarizing.)\n", budget)
			break
		}
		fmt.Print("Teacher> ")
		if !p.stdin.Scan() {
			break
		}
		line := strings.TrimSpace(p.stdin.Text())
		if line == "" {
			continue
		}
		if line == "/done" {
			break
		}
		if line == "/skip" {
			fmt.Println("(Skipped. The student keeps its original belief for this question.)")
			return false, nil
		}
		if line == "/quit" {
			fmt.Println("(Ending the teaching phase early.)")
			quit = true
			break
		}

		teacherTurns++
		if _, err := p.studentTurn(ctx, line, q.Number, &seg); err != nil {
			return false, err
		}
	}

	if seg.Empty() {
		fmt.Println("(Nothing was taught; the question stays untaught.)")
		return quit, nil
	}

	fmt.Println("Summarizing what you taught...")
	summary := p.summarizer.Summarize(ctx, q, seg)
	if err := p.state.RecordSummary(summary); err != nil {
		return quit, err
	}
	fmt.Printf("Recorded: %s\n", summary.Text)
	return quit, nil
}

// studentTurn sends one teacher message (policy-prefixed) and prints the
// student's reply. When seg is non-nil both sides are added to the segment
// and the teacher side is logged; scripted context turns log only the
// student's reply.
func (p *teachingPhase) studentTurn(ctx context.Context, teacherText string, questionNumber int, seg *teaching.Segment) (string, error) {
	p.turnIndex++
	if seg != nil {
		p.record("human-teacher", teacherText, questionNumber)
		seg.Add(teaching.RoleTeacher, teacherText)
	}
	p.history = append(p.history, llm.Message{
		Role:    llm.RoleUser,
		Content: teaching.FormatTeacherTurn(teacherText, p.policy),
	})

	reply, err := p.student.Reply(ctx, p.persona, p.history)
	if err != nil {
		return "", err
	}
	p.history = append(p.history, llm.Message{Role: llm.RoleAssistant, Content: reply})
	p.record("student", reply, questionNumber)
	if seg != nil {
		seg.Add(teaching.RoleStudent, reply)
	}
	fmt.Printf("AI-Student: %s\n", reply)
	return reply, nil
}

func (p *teachingPhase) record(role, content string, questionNumber int) {
	_ = p.log.Log(role, content, p.turnIndex)
	if err := p.messages.Append(context.Background(), store.Message{
		RunID:          p.state.RunID,
		Role:           role,
		Content:        content,
		TurnIndex:      p.turnIndex,
		QuestionNumber: questionNumber,
		Timestamp:      time.Now().UTC(),
	}); err != nil {
		slog.Warn("persist transcript message", "error", err)
	}
}

func (p *teachingPhase) printQuestion(q bank.Question, result assess.QuestionResult, total int) {
	fmt.Printf("\n── Question %d of %d ─────────────────────────\n%s\n", q.Number, total, q.Text)
	labels := make([]string, 0, len(q.Options))
	for label := range q.Options {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("  %s) %s\n", label, q.Options[label])
	}
	if result.IsCorrect {
		fmt.Println("Pre-test: answered correctly")
	} else {
		fmt.Printf("Pre-test: answered %s, correct is %s\n", result.SelectedAnswer, result.CorrectAnswer)
	}
}
