package model

// Record versions. A record with Version 0 predates version tagging and is
// read with the current layout.
const (
	MusVersion         = 1
	TallyVersion       = 1
	PreferencesVersion = 1
)

// Storage keys, one record per game mode plus preferences.
const (
	KeyMus         = "mus"
	KeyPocha       = "pocha"
	KeyGeneric     = "generic"
	KeyPreferences = "preferences"
)

type Versioned interface {
	SchemaVersion() int
	CurrentVersion() int
}

type (
	Blob struct {
		Key       string `badgerhold:"key"`
		Data      []byte
		UpdatedAt int64
	}

	TeamRecord struct {
		Name     string `json:"name"`
		Score    int    `json:"score"`
		GamesWon int    `json:"gamesWon"`
	}

	StakesRecord struct {
		Grande int `json:"grande"`
		Chica  int `json:"chica"`
		Pares  int `json:"pares"`
		Juego  int `json:"juego"`
	}

	MusRecord struct {
		Version int          `json:"version"`
		MatchID string       `json:"matchId,omitempty"`
		TeamA   TeamRecord   `json:"teamA"`
		TeamB   TeamRecord   `json:"teamB"`
		Stakes  StakesRecord `json:"stakes"`
		Target  int          `json:"target"`
	}

	PlayerRecord struct {
		ID             int    `json:"id"`
		Name           string `json:"name"`
		Score          int    `json:"score"`
		PendingBid     *int   `json:"pendingBid,omitempty"`
		PendingOutcome *int   `json:"pendingOutcome,omitempty"`
		Pending        *int   `json:"pending,omitempty"`
	}

	TallyRecord struct {
		Version int            `json:"version"`
		MatchID string         `json:"matchId,omitempty"`
		Pocha   bool           `json:"pocha"`
		Phase   string         `json:"phase,omitempty"`
		Duplica bool           `json:"duplica,omitempty"`
		Players []PlayerRecord `json:"players"`
	}

	Preferences struct {
		Version            int      `json:"version"`
		DefaultTeamAName   string   `json:"defaultTeamAName"`
		DefaultTeamBName   string   `json:"defaultTeamBName"`
		DefaultPlayerNames []string `json:"defaultPlayerNames,omitempty"`
		DefaultTarget30    bool     `json:"defaultTarget30"`
		KeepScreenOn       bool     `json:"keepScreenOn"`
	}
)

func (r MusRecord) SchemaVersion() int { return r.Version }

func (r MusRecord) CurrentVersion() int { return MusVersion }

func (r TallyRecord) SchemaVersion() int { return r.Version }

func (r TallyRecord) CurrentVersion() int { return TallyVersion }

func (p Preferences) SchemaVersion() int { return p.Version }

func (p Preferences) CurrentVersion() int { return PreferencesVersion }

// DefaultPreferences is used on first run and whenever the stored record
// cannot be read.
func DefaultPreferences() Preferences {
	return Preferences{
		Version:          PreferencesVersion,
		DefaultTeamAName: "Nosotros",
		DefaultTeamBName: "Ellos",
		DefaultTarget30:  false,
		KeepScreenOn:     true,
	}
}

func IntPtr(v int) *int {
	return &v
}
