package tally

import (
	"errors"
	"fmt"
)

const (
	MinPlayers = 2
	MaxPlayers = 100
)

var (
	ErrTooManyPlayers = fmt.Errorf("at most %d players", MaxPlayers)
	ErrTooFewPlayers  = fmt.Errorf("at least %d players", MinPlayers)
	ErrRosterLocked   = errors.New("players cannot change once scoring has started")
	ErrPlayerNotFound = errors.New("player not found")
	ErrEmptyName      = errors.New("player name is empty")
)
