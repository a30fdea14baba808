package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "strive",
	Short:         "Strive — gamified productivity tracker",
	Long:          "Strive is a local-first CLI/TUI productivity tracker with XP, streaks, achievements and daily insights.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newListCmd(),
		newRmCmd(),
		newHabitCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newInsightsCmd(),
		newChallengeCmd(),
		newFreezeCmd(),
		newFocusCmd(),
		newRemindCmd(),
		newRescoreCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
