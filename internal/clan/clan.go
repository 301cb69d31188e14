// Package clan holds the simulation data of one saved clan: its cats, their
// ranks, and the moon-by-moon progression that ages them.
package clan

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Status is a cat's rank inside the clan.
type Status string

const (
	StatusKitten     Status = "kitten"
	StatusApprentice Status = "apprentice"
	StatusWarrior    Status = "warrior"
	StatusMedicine   Status = "medicine cat"
	StatusDeputy     Status = "deputy"
	StatusLeader     Status = "leader"
	StatusElder      Status = "elder"
)

// Age thresholds in moons.
const (
	ApprenticeAge = 6
	WarriorAge    = 12
	ElderAge      = 120
)

// Name length limits for a new clan.
const (
	MinNameLen = 2
	MaxNameLen = 10
)

// ErrInvalidName is returned when a clan name is empty, too long, or not letters.
var ErrInvalidName = errors.New("clan: invalid name")

// Cat is a single member of a clan.
type Cat struct {
	ID       string
	Prefix   string
	Suffix   string
	Status   Status
	Moons    int
	Gender   string
	Pelt     string
	Dead     bool
	MentorID string
}

// Name returns the cat's current name. Kits, apprentices and leaders carry
// rank suffixes in place of their own.
func (c *Cat) Name() string {
	switch c.Status {
	case StatusKitten:
		return c.Prefix + "kit"
	case StatusApprentice:
		return c.Prefix + "paw"
	case StatusLeader:
		return c.Prefix + "star"
	default:
		return c.Prefix + c.Suffix
	}
}

// Clan is a loaded save: clan metadata plus every cat, living or dead.
type Clan struct {
	Name       string
	Moons      int
	LeaderID   string
	DeputyID   string
	MedicineID string
	Cats       []*Cat
	CreatedAt  time.Time
}

// FullName returns the display name, e.g. "ThunderClan".
func (c *Clan) FullName() string {
	return c.Name + "Clan"
}

// Find returns the cat with the given ID, or nil.
func (c *Clan) Find(id string) *Cat {
	for _, cat := range c.Cats {
		if cat.ID == id {
			return cat
		}
	}
	return nil
}

// Living returns the cats that are still alive, in clan order.
func (c *Clan) Living() []*Cat {
	out := make([]*Cat, 0, len(c.Cats))
	for _, cat := range c.Cats {
		if !cat.Dead {
			out = append(out, cat)
		}
	}
	return out
}

// CountByStatus returns how many living cats hold each rank.
func (c *Clan) CountByStatus() map[Status]int {
	counts := make(map[Status]int)
	for _, cat := range c.Living() {
		counts[cat.Status]++
	}
	return counts
}

// Leader returns the current leader, or nil if the clan has none.
func (c *Clan) Leader() *Cat {
	return c.Find(c.LeaderID)
}

// NormalizeName trims a user-entered clan name, strips a trailing "Clan",
// and capitalizes it. It returns ErrInvalidName when the result is unusable.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if len(name) > 4 && strings.EqualFold(name[len(name)-4:], "clan") {
		name = strings.TrimSpace(name[:len(name)-4])
	}
	if len(name) < MinNameLen || len(name) > MaxNameLen {
		return "", fmt.Errorf("%w: must be %d-%d letters", ErrInvalidName, MinNameLen, MaxNameLen)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: only letters are allowed", ErrInvalidName)
		}
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:]), nil
}
