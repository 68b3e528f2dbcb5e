package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/document"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/plan"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/profile"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and inspect training plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate <document>",
	Short: "Generate a personalized 5-stage plan from a source document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		learnerID, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		trainingID, _ := cmd.Flags().GetString("training")
		if trainingID == "" {
			return fmt.Errorf("--training is required")
		}

		prof, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}

		src, err := document.ReadFile(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		regen, _ := cmd.Flags().GetBool("regenerate")
		if !regen {
			existing, err := st.PlanRepo().FindByLearnerTraining(ctx, learnerID, trainingID)
			if err != nil {
				return fmt.Errorf("check existing plan: %w", err)
			}
			if existing != nil {
				fmt.Printf("Plan %s already exists for this learner and training.\n", existing.ID)
				fmt.Println("Pass --regenerate to create a new plan.")
				return nil
			}
		}

		provider, cache, err := buildProvider(ctx, st.EventRepo())
		if err != nil {
			return err
		}

		// A nil *CacheManager must stay a nil interface.
		var docCache plan.ContentCache
		if cache != nil {
			docCache = cache
		}
		engine := plan.NewEngine(provider, docCache, plan.ConfigFromEnv())
		fmt.Printf("Generating plan from %s (%d bytes, %s)...\n", src.Name, len(src.Data), src.MIMEType)
		p, err := engine.Generate(ctx, prof, src)
		if err != nil {
			return fmt.Errorf("plan generation failed: %w", err)
		}

		rec, err := st.PlanRepo().Create(ctx, learnerID, trainingID, src.Key(), *p)
		if err != nil {
			return fmt.Errorf("persist plan: %w", err)
		}

		sess, err := st.SessionRepo().Get(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if sess == nil {
			if sess, err = st.SessionRepo().Create(ctx, learnerID, prof); err != nil {
				return fmt.Errorf("create session: %w", err)
			}
		} else if err := st.SessionRepo().SetProfile(ctx, sess.ID, prof); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if err := st.SessionRepo().SetPlan(ctx, sess.ID, rec.ID); err != nil {
			return fmt.Errorf("bind plan to session: %w", err)
		}

		fmt.Printf("\nPlan %s (%d slides)\n", rec.ID, rec.SlideTotal)
		printPlanOutline(*p)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the learner's current plan outline and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		learnerID, err := resolveLearner(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		sess, err := st.SessionRepo().Get(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if sess == nil || sess.PlanID == nil {
			fmt.Println("No plan yet. Run `fia plan generate` first.")
			return nil
		}

		view, err := st.PlanRepo().Get(ctx, *sess.PlanID)
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if view == nil {
			return fmt.Errorf("plan %s not found", *sess.PlanID)
		}

		fmt.Printf("Plan %s, slide %d of %d\n\n", view.ID, sess.CurrentSlideNumber, view.SlideTotal)
		for _, stg := range view.Stages {
			fmt.Printf("Stage %d: %s\n", stg.Number, stg.Title)
			for _, m := range stg.Modules {
				fmt.Printf("  %s\n", m.Name)
				for _, sm := range m.Submodules {
					fmt.Printf("    - %s (%d slides)\n", sm.Name, sm.SlideCount)
				}
			}
		}
		return nil
	},
}

func profileFromFlags(cmd *cobra.Command) (profile.LearnerProfile, error) {
	level, _ := cmd.Flags().GetString("level")
	style, _ := cmd.Flags().GetString("style")
	job, _ := cmd.Flags().GetString("job")
	sector, _ := cmd.Flags().GetString("sector")
	country, _ := cmd.Flags().GetString("country")
	language, _ := cmd.Flags().GetString("language")

	prof := profile.LearnerProfile{
		ExperienceLevel: profile.ExperienceLevel(level),
		LearningStyle:   profile.LearningStyle(style),
		JobPosition:     job,
		ActivitySector:  sector,
		Country:         country,
		Language:        language,
	}
	if err := prof.Validate(); err != nil {
		return profile.LearnerProfile{}, err
	}
	return prof, nil
}

func printPlanOutline(p plan.TrainingPlan) {
	for _, stg := range p.Stages {
		fmt.Printf("Stage %d: %s\n", stg.Number, stg.Title)
		for _, m := range stg.Modules {
			fmt.Printf("  %s\n", m.Name)
			for _, sm := range m.Submodules {
				fmt.Printf("    - %s (%d slides)\n", sm.Name, sm.SlideCount)
			}
		}
	}
}

func init() {
	planGenerateCmd.Flags().String("training", "", "Training identifier the document belongs to")
	planGenerateCmd.Flags().String("level", "intermediate", "Experience level: beginner, intermediate, advanced")
	planGenerateCmd.Flags().String("style", "reading", "Learning style: visual, auditory, kinesthetic, reading")
	planGenerateCmd.Flags().String("job", "", "Learner's job position")
	planGenerateCmd.Flags().String("sector", "", "Learner's activity sector")
	planGenerateCmd.Flags().String("country", "", "Learner's country")
	planGenerateCmd.Flags().String("language", "", "Preferred language for slides")
	planGenerateCmd.Flags().Bool("regenerate", false, "Create a new plan even if one exists")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
}
