// Package score persists the player identity and the wave leaderboard.
package score

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/meteordodge/internal/loop/config"
)

// ErrInvalidIdentity is returned when a name submission is rejected.
var ErrInvalidIdentity = errors.New("invalid identity")

// Identity is a player's first name and last initial.
type Identity struct {
	FirstName   string `json:"firstName"`
	LastInitial string `json:"lastInitial"`
}

// NewIdentity trims and validates a submitted name. The first name must be
// non-empty and the last initial exactly one character.
func NewIdentity(firstName, lastInitial string) (Identity, error) {
	firstName = strings.TrimSpace(firstName)
	lastInitial = strings.TrimSpace(lastInitial)

	if firstName == "" {
		return Identity{}, fmt.Errorf("%w: first name is empty", ErrInvalidIdentity)
	}
	if utf8.RuneCountInString(lastInitial) != 1 {
		return Identity{}, fmt.Errorf("%w: last initial must be a single character", ErrInvalidIdentity)
	}
	return Identity{FirstName: firstName, LastInitial: lastInitial}, nil
}

// Valid reports whether the identity would pass NewIdentity unchanged.
func (id Identity) Valid() bool {
	_, err := NewIdentity(id.FirstName, id.LastInitial)
	return err == nil
}

// Key is the case-insensitive leaderboard key for the identity.
func (id Identity) Key() string {
	return strings.ToLower(id.FirstName) + "_" + strings.ToLower(id.LastInitial)
}

// Entry is one leaderboard line.
type Entry struct {
	Key         string `json:"key"`
	FirstName   string `json:"firstName"`
	LastInitial string `json:"lastInitial"`
	Wave        int    `json:"wave"`
}

// String formats the entry the way the screens show it.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s. - Wave %d", e.FirstName, e.LastInitial, e.Wave)
}

// Leaderboard is a ranked list, highest wave first.
type Leaderboard []Entry

// Record upserts the result for id and returns the updated board: one entry
// per key keeping the best wave, sorted descending, at most LeaderboardSize.
func (lb Leaderboard) Record(id Identity, wave int) Leaderboard {
	key := id.Key()
	out := make(Leaderboard, len(lb), len(lb)+1)
	copy(out, lb)

	found := false
	for i := range out {
		if out[i].Key == key {
			found = true
			if wave > out[i].Wave {
				out[i].Wave = wave
			}
			break
		}
	}
	if !found {
		out = append(out, Entry{
			Key:         key,
			FirstName:   id.FirstName,
			LastInitial: strings.ToUpper(id.LastInitial),
			Wave:        wave,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Wave > out[j].Wave })
	if len(out) > config.LeaderboardSize {
		out = out[:config.LeaderboardSize]
	}
	return out
}

// sanitize drops malformed entries, merges duplicate keys, and restores
// ordering and size limits on a board read from storage.
func (lb Leaderboard) sanitize() Leaderboard {
	var out Leaderboard
	for _, e := range lb {
		id := Identity{FirstName: e.FirstName, LastInitial: e.LastInitial}
		if !id.Valid() || e.Wave < 1 {
			continue
		}
		out = out.Record(id, e.Wave)
	}
	return out
}
