// Package prefs reads and writes the preferences record: default team and
// player names, the 30-point target default and keep-screen-on. Engines only
// see these values when a match starts.
package prefs

import (
	"context"

	"github.com/psucodervn/anotador/internal/model"
	"github.com/psucodervn/anotador/internal/persist"
	"github.com/psucodervn/anotador/internal/stringer"
)

type Store struct {
	storage       persist.Storage
	maxNameLength int
}

func NewStore(s persist.Storage, maxNameLength int) *Store {
	return &Store{storage: s, maxNameLength: maxNameLength}
}

// Load never fails; anything unreadable yields model.DefaultPreferences.
func (s *Store) Load(ctx context.Context) model.Preferences {
	def := model.DefaultPreferences()
	p, ok := persist.Load(ctx, s.storage, model.KeyPreferences, def)
	if !ok {
		return def
	}
	if len(p.DefaultTeamAName) == 0 {
		p.DefaultTeamAName = def.DefaultTeamAName
	}
	if len(p.DefaultTeamBName) == 0 {
		p.DefaultTeamBName = def.DefaultTeamBName
	}
	p.Version = model.PreferencesVersion
	return p
}

func (s *Store) Save(ctx context.Context, p model.Preferences) error {
	p.Version = model.PreferencesVersion
	p.DefaultTeamAName = stringer.CleanName(p.DefaultTeamAName, s.maxNameLength)
	p.DefaultTeamBName = stringer.CleanName(p.DefaultTeamBName, s.maxNameLength)
	names := make([]string, 0, len(p.DefaultPlayerNames))
	for _, n := range p.DefaultPlayerNames {
		if n = stringer.CleanName(n, s.maxNameLength); len(n) > 0 {
			names = append(names, n)
		}
	}
	p.DefaultPlayerNames = names
	return persist.Save(ctx, s.storage, model.KeyPreferences, p)
}

// Update loads, applies f and saves.
func (s *Store) Update(ctx context.Context, f func(p *model.Preferences)) (model.Preferences, error) {
	p := s.Load(ctx)
	f(&p)
	if err := s.Save(ctx, p); err != nil {
		return p, err
	}
	return s.Load(ctx), nil
}
