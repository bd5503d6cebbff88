// Package sound defines the closed set of notification sounds understood by
// the macOS notification center.
package sound

import (
	"fmt"
	"strings"
)

// Sound identifies one of the system notification sounds.
type Sound int

const (
	Basso Sound = iota
	Blow
	Bottle
	Frog
	Funk
	Glass
	Hero
	Morse
	Ping
	Pop
	Purr
	Sosumi
	Submarine
	Tink
)

// Default is used when no sound is requested.
const Default = Blow

var names = [...]string{
	Basso:     "Basso",
	Blow:      "Blow",
	Bottle:    "Bottle",
	Frog:      "Frog",
	Funk:      "Funk",
	Glass:     "Glass",
	Hero:      "Hero",
	Morse:     "Morse",
	Ping:      "Ping",
	Pop:       "Pop",
	Purr:      "Purr",
	Sosumi:    "Sosumi",
	Submarine: "Submarine",
	Tink:      "Tink",
}

// All returns every sound in declaration order.
func All() []Sound {
	all := make([]Sound, len(names))
	for i := range names {
		all[i] = Sound(i)
	}
	return all
}

// Names returns the canonical name of every sound in declaration order.
func Names() []string {
	return names[:]
}

// String returns the name passed to the notification center.
func (s Sound) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sound(%d)", int(s))
	}
	return names[s]
}

// Valid reports whether s is a member of the set.
func (s Sound) Valid() bool {
	return s >= 0 && int(s) < len(names)
}

// Parse looks up a sound by its exact, case-sensitive name.
func Parse(name string) (Sound, error) {
	for i, n := range names {
		if n == name {
			return Sound(i), nil
		}
	}
	return 0, fmt.Errorf("invalid sound %q (valid: %s)", name, strings.Join(names[:], ", "))
}
