package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rkathal/wise-wallet-buddy/internal/achievement"
	"github.com/rkathal/wise-wallet-buddy/internal/coach"
	"github.com/rkathal/wise-wallet-buddy/internal/config"
	"github.com/rkathal/wise-wallet-buddy/internal/goal"
	"github.com/rkathal/wise-wallet-buddy/internal/locale"
	"github.com/rkathal/wise-wallet-buddy/internal/logger"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
	"github.com/rkathal/wise-wallet-buddy/internal/onboarding"
	"github.com/rkathal/wise-wallet-buddy/internal/profile"
	"github.com/rkathal/wise-wallet-buddy/internal/recorder"
	"github.com/rkathal/wise-wallet-buddy/internal/render"
	"github.com/rkathal/wise-wallet-buddy/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using environment as-is")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Development, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()
	log.Info("coach starting")

	// Init recorder
	var rec recorder.Recorder
	if cfg.Data.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Data.SQLitePath)
		if err != nil {
			log.Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	reader := bufio.NewScanner(os.Stdin)

	// Load or create the profile snapshot
	snap, err := profile.Load(cfg.Data.ProfileFile)
	if err != nil {
		log.Fatal("load profile", zap.Error(err))
	}
	if snap == nil {
		p, err := runOnboarding(reader, cfg.Coach.DefaultCountry)
		if err != nil {
			log.Fatal("onboarding", zap.Error(err))
		}
		snap = &profile.Snapshot{
			Profile:      p,
			Goals:        goal.DefaultSet(p.Currency),
			Achievements: achievement.NewCatalog(),
		}
		if err := profile.Save(cfg.Data.ProfileFile, snap); err != nil {
			log.Fatal("save profile", zap.Error(err))
		}
		fmt.Printf("\nWelcome to FinanceAI Coach, %s! 🎉 Your personalized financial journey begins now.\n\n", p.Name)
	}

	engine := coach.New(coach.WithTypingDelay(cfg.TypingDelay(), cfg.TypingJitter()))
	sess := session.New(engine, rec, snap, cfg.Data.ProfileFile)

	// Daily streak rollover
	streak := session.NewStreakScheduler(sess)
	if err := streak.Register(cfg.Streak.RolloverCron); err != nil {
		log.Fatal("register streak job", zap.Error(err))
	}
	streak.Start()
	defer streak.Stop()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	greeting := sess.Start()
	fmt.Println(greeting.Content)
	fmt.Println("\nType a question, /dashboard, /do <n> to take a suggested action, or /quit.")

	repl(ctx, reader, sess)

	sess.SnapshotGoals()
	if err := sess.Save(); err != nil {
		log.Error("final save", zap.Error(err))
	}
	log.Info("coach stopped")
}

func repl(ctx context.Context, reader *bufio.Scanner, sess *session.Session) {
	for {
		fmt.Print("> ")
		if !reader.Scan() {
			return
		}
		line := strings.TrimSpace(reader.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit" || line == "/exit":
			return
		case line == "/dashboard":
			fmt.Println(render.Dashboard(sess.Profile(), sess.Goals(), sess.Achievements()))
			continue
		case strings.HasPrefix(line, "/do "):
			takeAction(sess, strings.TrimPrefix(line, "/do "))
			continue
		}

		reply, unlock, err := sess.Send(ctx, line)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Printf("something went wrong: %v\n", err)
			continue
		}
		fmt.Println(render.Reply(reply))
		if unlock != nil {
			fmt.Println(render.Unlock(unlock.Title, unlock.Description, unlock.Points))
		}
	}
}

func takeAction(sess *session.Session, arg string) {
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		fmt.Println("usage: /do <action number from the last reply>")
		return
	}
	last, ok := sess.LastReply()
	if !ok || idx < 1 || idx > len(last.Actions) {
		fmt.Println("no such suggested action")
		return
	}
	action := last.Actions[idx-1]
	fmt.Printf("Taking action: %s\n", action)
	if unlock := sess.TakeAction(action); unlock != nil {
		fmt.Println(render.Unlock(unlock.Title, unlock.Description, unlock.Points))
	}
}

// runOnboarding walks the wizard over stdin.
func runOnboarding(reader *bufio.Scanner, defaultCountry string) (model.UserProfile, error) {
	w := onboarding.New()
	w.SetCountry(defaultCountry)

	for !w.Finished() {
		step := w.Step()
		fmt.Printf("\n— Step %d of %d: %s (%.0f%%)\n", step, onboarding.TotalSteps, step.Title(), w.Progress())

		switch step {
		case onboarding.StepBasics:
			w.SetName(prompt(reader, "What's your name?"))
			w.SetAgeGroup(choose(reader, "Age group", onboarding.AgeGroups()))
			country := choose(reader, "Country", locale.Countries())
			w.SetCountry(country)
			fmt.Printf("Selected currency: %s\n", w.Form().Currency)
		case onboarding.StepGoalsIncome:
			for _, g := range chooseMany(reader, "Financial goals (select all that apply)", onboarding.GoalCatalog()) {
				w.ToggleGoal(g)
			}
			brackets := w.IncomeBrackets()
			labels := make([]string, len(brackets))
			for i, b := range brackets {
				labels[i] = b.Label
			}
			picked := choose(reader, "Annual income range", labels)
			for _, b := range brackets {
				if b.Label == picked {
					w.SetIncome(b.ID)
				}
			}
		case onboarding.StepLanguageExperience:
			w.SetLanguage(choose(reader, "Preferred language", onboarding.Languages()))
			level := choose(reader, "Financial experience level", []string{"beginner", "intermediate", "advanced"})
			w.SetExperience(model.ExperienceLevel(level))
		case onboarding.StepAccessibility:
			for _, f := range chooseMany(reader, "Accessibility preferences (optional)", onboarding.AccessibilityOptions()) {
				w.ToggleAccessibility(f)
			}
		}

		if err := w.Advance(); err != nil {
			if errors.Is(err, onboarding.ErrValidation) {
				fmt.Println("Some required fields are missing, let's try that step again.")
				continue
			}
			return model.UserProfile{}, err
		}
	}
	return w.Complete()
}

func prompt(reader *bufio.Scanner, label string) string {
	fmt.Printf("%s ", label)
	if !reader.Scan() {
		return ""
	}
	return strings.TrimSpace(reader.Text())
}

func choose(reader *bufio.Scanner, label string, options []string) string {
	fmt.Println(label + ":")
	for i, opt := range options {
		fmt.Printf("  [%d] %s\n", i+1, opt)
	}
	for {
		raw := prompt(reader, "Pick one:")
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1]
		}
		if raw == "" {
			return ""
		}
		fmt.Println("Please enter a number from the list.")
	}
}

func chooseMany(reader *bufio.Scanner, label string, options []string) []string {
	fmt.Println(label + ":")
	for i, opt := range options {
		fmt.Printf("  [%d] %s\n", i+1, opt)
	}
	raw := prompt(reader, "Pick numbers separated by commas (or leave empty):")
	var picked []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil && idx >= 1 && idx <= len(options) {
			picked = append(picked, options[idx-1])
		}
	}
	return picked
}
