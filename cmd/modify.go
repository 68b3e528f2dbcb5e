package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/slides"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

var modifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "Rewrite an already-generated slide",
}

var modifySimplifyCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Rewrite the slide simpler and shorter",
	RunE:  func(cmd *cobra.Command, args []string) error { return modify(cmd, slides.ActionSimplify) },
}

var modifyDeepenCmd = &cobra.Command{
	Use:   "deepen",
	Short: "Rewrite the slide with more depth and detail",
	RunE:  func(cmd *cobra.Command, args []string) error { return modify(cmd, slides.ActionDeepen) },
}

func modify(cmd *cobra.Command, action slides.ModifyAction) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	learnerID, err := resolveLearner(cmd)
	if err != nil {
		return err
	}
	pos, _ := cmd.Flags().GetInt("position")

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
		return fmt.Errorf("learner %s has no plan", learnerID)
	}

	// Default to the slide the learner is looking at.
	if pos == 0 {
		pos = sess.CurrentSlideNumber
	}
	if pos < 1 {
		return fmt.Errorf("no slide to modify: navigate to a slide first or pass --position")
	}

	slide, err := st.SlideRepo().ByGlobalPosition(ctx, *sess.PlanID, pos)
	if err != nil {
		return fmt.Errorf("load slide: %w", err)
	}
	if slide == nil {
		return fmt.Errorf("no slide at position %d", pos)
	}
	if !slide.Generated() {
		return fmt.Errorf("slide %d has no content yet; serve it first", pos)
	}

	provider, _, err := buildProvider(ctx, st.EventRepo())
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	mod := slides.NewModifier(provider, log, slides.DefaultConfig())

	var res *slides.ModifyResult
	switch action {
	case slides.ActionSimplify:
		res, err = mod.Simplify(ctx, *slide.Content, sess.Profile)
	case slides.ActionDeepen:
		res, err = mod.Deepen(ctx, *slide.Content, sess.Profile)
	}
	if err != nil {
		return err
	}

	if err := st.SlideRepo().SetContent(ctx, slide.ID, res.Content); err != nil {
		return fmt.Errorf("persist modified slide: %w", err)
	}

	fmt.Printf("Slide %d modified (%s, %+d%% length", pos, action, res.DeltaPercent)
	if res.Fallback {
		fmt.Print(", local fallback")
	}
	fmt.Print(")\n\n")
	fmt.Println(res.Content)
	return nil
}

func init() {
	modifyCmd.PersistentFlags().Int("position", 0, "Global slide position (default: the learner's current slide)")
	modifyCmd.AddCommand(modifySimplifyCmd)
	modifyCmd.AddCommand(modifyDeepenCmd)
}
