// Package facing defines the four-way facing direction shared by map data and
// character state. It must have zero dependencies on ebiten so map tooling and
// headless tests can use it.
package facing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned when a string does not name a direction.
var ErrInvalidDirection = errors.New("invalid facing direction")

// Direction is the orientation a character last moved in.
// The zero value is not a valid direction.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// All lists the valid directions in declaration order.
var All = [...]Direction{Up, Down, Left, Right}

var names = map[Direction]string{
	Up:    "UP",
	Down:  "DOWN",
	Left:  "LEFT",
	Right: "RIGHT",
}

func (d Direction) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	_, ok := names[d]
	return ok
}

// Parse converts a map property value ("UP", "down", ...) to a Direction.
func Parse(s string) (Direction, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for d, name := range names {
		if name == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(names[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
