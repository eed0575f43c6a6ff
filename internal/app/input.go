package app

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/philipparndt/hiddenline/internal/config"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

// Action is a rotation request
type Action int

const (
	ActionNone Action = iota
	RotateXNeg
	RotateXPos
	RotateYNeg
	RotateYPos
)

func (a Action) String() string {
	switch a {
	case RotateXNeg:
		return "rotate X forward"
	case RotateXPos:
		return "rotate X backward"
	case RotateYNeg:
		return "rotate Y left"
	case RotateYPos:
		return "rotate Y right"
	default:
		return "none"
	}
}

// Delta returns the axis and signed angle an action applies
func (a Action) Delta(step float64) (scene.Axis, float64, bool) {
	switch a {
	case RotateXNeg:
		return scene.AxisX, -step, true
	case RotateXPos:
		return scene.AxisX, step, true
	case RotateYNeg:
		return scene.AxisY, -step, true
	case RotateYPos:
		return scene.AxisY, step, true
	default:
		return scene.AxisX, 0, false
	}
}

// Keymap binds lower-case runes to actions
type Keymap map[rune]Action

// DefaultKeymap returns the w/s/a/d bindings
func DefaultKeymap() Keymap {
	return NewKeymap(config.Default().Input.Keys)
}

// NewKeymap builds a keymap from configured bindings. Bindings are expected
// to be validated; empty ones are skipped.
func NewKeymap(keys config.KeyBinding) Keymap {
	km := make(Keymap, 4)
	for _, b := range []struct {
		key    string
		action Action
	}{
		{keys.RotateXNeg, RotateXNeg},
		{keys.RotateXPos, RotateXPos},
		{keys.RotateYNeg, RotateYNeg},
		{keys.RotateYPos, RotateYPos},
	} {
		r, _ := utf8.DecodeRuneInString(b.key)
		if r == utf8.RuneError {
			continue
		}
		km[unicode.ToLower(r)] = b.action
	}
	return km
}

// Lookup resolves a key regardless of case
func (k Keymap) Lookup(r rune) (Action, bool) {
	a, ok := k[unicode.ToLower(r)]
	return a, ok
}

// Help returns one control instruction per binding, ordered by action
func (k Keymap) Help() []string {
	keys := make([]rune, 0, len(k))
	for r := range k {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return k[keys[i]] < k[keys[j]] })

	lines := make([]string, 0, len(keys))
	for _, r := range keys {
		lines = append(lines, fmt.Sprintf("%c - %s", unicode.ToUpper(r), k[r]))
	}
	return lines
}
