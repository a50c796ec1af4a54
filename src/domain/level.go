package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownLevel = errors.New("unknown alert level")
)

// Level is the severity of an alert. It selects the colour theme and the default icon.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"

	DefaultLevel = LevelInfo
)

// Levels lists every valid level in display order.
var Levels = []Level{LevelInfo, LevelSuccess, LevelWarning, LevelError}

// Default icon glyph for each level. Used when ShowIcon is set and no explicit icon was given.
var defaultIcons = map[Level]string{
	LevelInfo:    "circle-info",
	LevelSuccess: "circle-check",
	LevelWarning: "triangle-exclamation",
	LevelError:   "circle-exclamation",
}

func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: \"%s\"", ErrUnknownLevel, s)
	}

	return level, nil
}

func (l Level) Valid() bool {
	_, ok := defaultIcons[l]
	return ok
}

// DefaultIcon returns the icon shown for this level when ShowIcon is set.
// The second return value is false for unrecognized levels.
func (l Level) DefaultIcon() (string, bool) {
	icon, ok := defaultIcons[l]
	return icon, ok
}

func (l Level) String() string {
	return string(l)
}
