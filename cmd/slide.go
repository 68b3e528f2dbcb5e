package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/slides"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

var slideCmd = &cobra.Command{
	Use:   "slide",
	Short: "Navigate the learner's slides, generating content on demand",
}

var slideFirstCmd = &cobra.Command{
	Use:   "first",
	Short: "Serve the plan overview slide",
	RunE:  func(cmd *cobra.Command, args []string) error { return navigate(cmd, "first") },
}

var slideCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Re-serve the learner's resume point",
	RunE:  func(cmd *cobra.Command, args []string) error { return navigate(cmd, "current") },
}

var slideNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance to the next slide",
	RunE:  func(cmd *cobra.Command, args []string) error { return navigate(cmd, "next") },
}

var slidePreviousCmd = &cobra.Command{
	Use:   "previous",
	Short: "Step back to the previous slide",
	RunE:  func(cmd *cobra.Command, args []string) error { return navigate(cmd, "previous") },
}

func navigate(cmd *cobra.Command, direction string) error {
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
		return fmt.Errorf("learner %s has no plan; run `fia plan generate` first", learnerID)
	}

	provider, cache, err := buildProvider(ctx, st.EventRepo())
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	// A nil *CacheManager must stay a nil interface.
	var docCache slides.ContentCache
	if cache != nil {
		docCache = cache
	}
	nav := slides.NewNavigator(provider, docCache, st.PlanRepo(), st.SlideRepo(), st.SessionRepo(), log, slides.DefaultConfig())

	var res *slides.SlideResult
	switch direction {
	case "first":
		res, err = nav.GetFirstSlide(ctx, sess)
	case "current":
		res, err = nav.GetCurrentSlide(ctx, sess)
	case "next":
		res, err = nav.GetNextSlide(ctx, sess)
	case "previous":
		res, err = nav.GetPreviousSlide(ctx, sess)
	}
	if err != nil {
		return err
	}

	printSlideResult(res)
	return nil
}

func printSlideResult(res *slides.SlideResult) {
	if res.Slide == nil {
		if !res.HasNext {
			fmt.Println("End of training: no next slide.")
		} else {
			fmt.Println("Start of training: no previous slide.")
		}
		return
	}

	s := res.Slide
	fmt.Printf("Slide %d of %d [%s]\n", s.GlobalPosition, res.TotalSlides, s.Type)
	fmt.Printf("Stage %d: %s > %s > %s\n\n", s.StageNumber, s.StageTitle, s.ModuleName, s.SubmoduleName)
	if s.Content != nil {
		fmt.Println(*s.Content)
	}
	fmt.Println()
	switch {
	case res.HasNext && res.HasPrevious:
		fmt.Println("(next / previous available)")
	case res.HasNext:
		fmt.Println("(next available)")
	case res.HasPrevious:
		fmt.Println("(previous available; end of training)")
	}
}

func init() {
	slideCmd.AddCommand(slideFirstCmd)
	slideCmd.AddCommand(slideCurrentCmd)
	slideCmd.AddCommand(slideNextCmd)
	slideCmd.AddCommand(slidePreviousCmd)
}
