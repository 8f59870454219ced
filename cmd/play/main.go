package play

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/psucodervn/anotador/internal/config"
	"github.com/psucodervn/anotador/internal/model"
	"github.com/psucodervn/anotador/internal/prefs"
	"github.com/psucodervn/anotador/internal/storage"
	"github.com/psucodervn/anotador/internal/tally"
)

var fresh bool

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "keep score of a game, resuming the saved one",
	}
	cmd.PersistentFlags().BoolVar(&fresh, "new", false, "ignore the saved match and start a new one")
	cmd.AddCommand(
		&cobra.Command{Use: "mus", Short: "mus: envites, órdago and games to 30 or 40", RunE: runMus},
		&cobra.Command{Use: "pocha", Short: "pocha: bids and tricks per round", RunE: tallyRunner(tally.Pocha)},
		&cobra.Command{Use: "tally", Short: "free point tally for any number of players", RunE: tallyRunner(tally.Generic)},
	)
	return cmd
}

type session struct {
	cfg   config.AppConfig
	store storage.Store
	prefs model.Preferences
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.ReadAppConfig()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:   cfg,
		store: store,
		prefs: prefs.NewStore(store, cfg.MaxNameLength).Load(ctx),
	}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		log.Err(err).Msg("failed to close storage")
	}
}

func runMus(cmd *cobra.Command, args []string) error {
	ctx := log.Logger.WithContext(cmd.Context())
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()
	return newMusRepl(ctx, s, os.Stdin, cmd.OutOrStdout()).Run()
}

func tallyRunner(mode tally.Mode) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := log.Logger.WithContext(cmd.Context())
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()
		r, err := newTallyRepl(ctx, s, mode, os.Stdin, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.Run()
	}
}
