package level

import (
	"fmt"
	"strings"
)

// Level is the severity of a log event.
type Level int

const (
	Verbose Level = iota
	Debug
	Information
	Warning
	Error
	Fatal
)

var names = [...]string{
	Verbose:     "Verbose",
	Debug:       "Debug",
	Information: "Information",
	Warning:     "Warning",
	Error:       "Error",
	Fatal:       "Fatal",
}

// All returns every level from the most to the least verbose.
func All() []Level {
	return []Level{Verbose, Debug, Information, Warning, Error, Fatal}
}

// String returns the symbolic name of the level.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return names[l]
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= Verbose && l <= Fatal
}

// Parse converts a symbolic level name into a Level. Matching is case-insensitive.
func Parse(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return Level(i), nil
		}
	}
	return Verbose, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(names[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
