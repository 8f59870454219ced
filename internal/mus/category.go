package mus

type Team uint8

const (
	Undetermined Team = iota
	TeamA
	TeamB
)

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return "-"
	}
}

func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

func (t Team) Other() Team {
	switch t {
	case TeamA:
		return TeamB
	case TeamB:
		return TeamA
	default:
		return Undetermined
	}
}

func (t Team) index() int {
	return int(t) - 1
}

// Category is one of the four betting rounds of a hand, in play order.
type Category uint8

const (
	Grande Category = iota
	Chica
	Pares
	Juego

	NumCategories = 4
)

var CategoryNames = [NumCategories]string{"grande", "chica", "pares", "juego"}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return CategoryNames[c]
}

func (c Category) Valid() bool {
	return c < NumCategories
}

// HasQuality reports whether hands are classified in this category.
func (c Category) HasQuality() bool {
	return c == Pares || c == Juego
}

func ParseCategory(s string) (Category, bool) {
	for i, name := range CategoryNames {
		if name == s {
			return Category(i), true
		}
	}
	return 0, false
}

// Quality classifies a side's hand in Pares or Juego. It is kept for the
// record and never changes the score.
type Quality uint8

const (
	QualityNone Quality = iota
	Pareja
	Medias
	Duples
	Punto
	Juego31
	JuegoOther
)

var qualityNames = map[Quality]string{
	QualityNone: "nada",
	Pareja:      "pareja",
	Medias:      "medias",
	Duples:      "duples",
	Punto:       "punto",
	Juego31:     "la 31",
	JuegoOther:  "juego",
}

func (q Quality) String() string {
	if s, ok := qualityNames[q]; ok {
		return s
	}
	return "unknown"
}

// Allowed reports whether q describes a hand in category c.
func (q Quality) Allowed(c Category) bool {
	switch c {
	case Pares:
		return q == QualityNone || q == Pareja || q == Medias || q == Duples
	case Juego:
		return q == QualityNone || q == Punto || q == Juego31 || q == JuegoOther
	default:
		return false
	}
}
