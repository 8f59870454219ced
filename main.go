package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/psucodervn/anotador/cmd/play"
	"github.com/psucodervn/anotador/cmd/prefs"
	"github.com/psucodervn/anotador/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:   "anotador",
		Short: "scorekeeper for mus, pocha and any point-tally game",
		Long: `anotador keeps the score of a card table from the terminal.

  play mus      two teams, four bets a hand, games to 30 or 40
  play pocha    bids and tricks per player, settled round by round
  play tally    free point sheet for any game
  prefs         default team and player names, target and display settings

Matches are saved under DATA_DIR after every committed round and resumed on
the next start.`,
		Version:          version,
		SilenceUsage:     true,
		PersistentPreRun: preRun,
	}
	envFiles []string
)

func preRun(cmd *cobra.Command, args []string) {
	if len(envFiles) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			envFiles = append(envFiles, ".env")
		}
	}
	if len(envFiles) > 0 {
		if err := godotenv.Overload(envFiles...); err != nil {
			log.Err(err).Msg("read env files failed")
		}
	}
	logger.InitFromEnv()
}

func init() {
	rootCmd.AddCommand(
		play.Command(),
		prefs.Command(),
	)
	rootCmd.PersistentFlags().StringSliceVarP(&envFiles, "envfile", "e", nil, "env files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("execute failed")
	}
}
