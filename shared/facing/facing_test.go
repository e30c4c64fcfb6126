package facing

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"UP", Up},
		{"down", Down},
		{" Left ", Left},
		{"RIGHT", Right},
	}

	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsUnknownValues(t *testing.T) {
	for _, in := range []string{"", "NORTH", "up-left", "0"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Parse(%q): expected ErrInvalidDirection, got %v", in, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, d := range All {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) returned error: %v", d, err)
		}
		var back Direction
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) returned error: %v", text, err)
		}
		if back != d {
			t.Errorf("Expected %v after round trip, got %v", d, back)
		}
	}
}

func TestZeroValueIsInvalid(t *testing.T) {
	var d Direction
	if d.Valid() {
		t.Fatal("Expected zero Direction to be invalid")
	}
	if _, err := d.MarshalText(); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Expected ErrInvalidDirection marshalling zero value, got %v", err)
	}
	if got := Direction(42).String(); got != "Direction(42)" {
		t.Errorf("Expected Direction(42), got %s", got)
	}
}
