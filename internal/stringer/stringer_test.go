package stringer

import (
	"testing"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{s: "  Los   de  siempre ", max: 20, want: "Los de siempre"},
		{s: "Ñandú", max: 3, want: "Ñan"},
		{s: "abc def", max: 4, want: "abc"},
		{s: "ＡＢＣ", max: 10, want: "ABC"},
		{s: "sin limite", max: 0, want: "sin limite"},
		{s: "", max: 5, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanName(tt.s, tt.max); got != tt.want {
				t.Errorf("CleanName() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{s: "órdago", want: "Órdago"},
		{s: "", want: ""},
		{s: "Mus", want: "Mus"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := Capitalize(tt.s); got != tt.want {
				t.Errorf("Capitalize() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ñu", 4); got != "ñu  " {
		t.Errorf("Pad() = %#v", got)
	}
	if got := Pad("largo", 2); got != "largo" {
		t.Errorf("Pad() = %#v", got)
	}
}
