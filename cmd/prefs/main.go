package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/psucodervn/anotador/internal/config"
	"github.com/psucodervn/anotador/internal/model"
	"github.com/psucodervn/anotador/internal/prefs"
	"github.com/psucodervn/anotador/internal/storage"
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "show or change default names and targets",
	}
	cmd.AddCommand(showCommand(), setCommand())
	return cmd
}

func open() (*prefs.Store, storage.Store, error) {
	cfg, err := config.ReadAppConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return prefs.NewStore(store, cfg.MaxNameLength), store, nil
}

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "print the current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, store, err := open()
			if err != nil {
				return err
			}
			defer closeStore(store)
			return printPrefs(cmd, ps.Load(cmd.Context()))
		},
	}
}

func setCommand() *cobra.Command {
	var (
		teamA, teamB string
		players      []string
		target30     bool
		keepOn       bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "change preferences; only the flags given are updated",
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, store, err := open()
			if err != nil {
				return err
			}
			defer closeStore(store)

			flags := cmd.Flags()
			p, err := ps.Update(cmd.Context(), func(p *model.Preferences) {
				if flags.Changed("team-a") {
					p.DefaultTeamAName = teamA
				}
				if flags.Changed("team-b") {
					p.DefaultTeamBName = teamB
				}
				if flags.Changed("players") {
					p.DefaultPlayerNames = players
				}
				if flags.Changed("target30") {
					p.DefaultTarget30 = target30
				}
				if flags.Changed("keep-screen-on") {
					p.KeepScreenOn = keepOn
				}
			})
			if err != nil {
				return err
			}
			return printPrefs(cmd, p)
		},
	}
	cmd.Flags().StringVar(&teamA, "team-a", "", "default name of the first mus team")
	cmd.Flags().StringVar(&teamB, "team-b", "", "default name of the second mus team")
	cmd.Flags().StringSliceVar(&players, "players", nil, "default player names for pocha and tally")
	cmd.Flags().BoolVar(&target30, "target30", false, "play mus to 30 instead of 40")
	cmd.Flags().BoolVar(&keepOn, "keep-screen-on", true, "keep the screen on while playing")
	return cmd
}

func printPrefs(cmd *cobra.Command, p model.Preferences) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func closeStore(store storage.Store) {
	if err := store.Close(); err != nil {
		log.Err(err).Msg("failed to close storage")
	}
}
