package clan

import (
	"fmt"
	"math/rand"
)

const (
	deathChanceElder = 8 // percent per moon
	deathChanceOther = 1
	birthChance      = 25
	maxLitter        = 3
)

// TimeSkip advances the clan by one moon and returns the events that
// happened, in order. It ages every living cat, promotes kits and
// apprentices, retires old warriors, rolls for deaths and births, and fills
// any empty leadership positions.
func (c *Clan) TimeSkip(rng *rand.Rand) []string {
	c.Moons++
	var events []string

	for _, cat := range c.Living() {
		cat.Moons++
		switch {
		case cat.Status == StatusKitten && cat.Moons >= ApprenticeAge:
			cat.Status = StatusApprentice
			events = append(events, fmt.Sprintf("%s has become an apprentice.", cat.Name()))
		case cat.Status == StatusApprentice && cat.Moons >= WarriorAge:
			cat.Status = StatusWarrior
			cat.MentorID = ""
			events = append(events, fmt.Sprintf("%s has earned their warrior name.", cat.Name()))
		case cat.Status == StatusWarrior && cat.Moons >= ElderAge:
			cat.Status = StatusElder
			events = append(events, fmt.Sprintf("%s has retired to the elders' den.", cat.Name()))
		}
	}

	for _, cat := range c.Living() {
		chance := deathChanceOther
		if cat.Status == StatusElder {
			chance = deathChanceElder
		}
		if rng.Intn(100) < chance {
			name := cat.Name()
			cat.Dead = true
			events = append(events, fmt.Sprintf("%s has joined StarClan.", name))
		}
	}

	events = append(events, c.fillRanks(rng)...)

	if rng.Intn(100) < birthChance && c.hasQueen() {
		n := 1 + rng.Intn(maxLitter)
		for i := 0; i < n; i++ {
			kit := newCat(rng, StatusKitten, 0)
			c.Cats = append(c.Cats, kit)
			events = append(events, fmt.Sprintf("%s was born.", kit.Name()))
		}
	}

	c.assignMentors(rng)

	if len(events) == 0 {
		events = append(events, "The moon passes quietly.")
	}
	return events
}

// fillRanks promotes the deputy when the leader is gone and picks a new
// deputy or medicine cat when those seats are empty.
func (c *Clan) fillRanks(rng *rand.Rand) []string {
	var events []string

	if leader := c.Find(c.LeaderID); leader == nil || leader.Dead {
		c.LeaderID = ""
		if dep := c.Find(c.DeputyID); dep != nil && !dep.Dead {
			dep.Status = StatusLeader
			c.LeaderID = dep.ID
			c.DeputyID = ""
			events = append(events, fmt.Sprintf("%s has become the new leader.", dep.Name()))
		}
	}

	if dep := c.Find(c.DeputyID); dep == nil || dep.Dead {
		c.DeputyID = ""
		if w := c.pick(rng, StatusWarrior); w != nil {
			w.Status = StatusDeputy
			c.DeputyID = w.ID
			events = append(events, fmt.Sprintf("%s has been chosen as deputy.", w.Name()))
		}
	}

	if med := c.Find(c.MedicineID); med == nil || med.Dead {
		c.MedicineID = ""
		if w := c.pick(rng, StatusWarrior); w != nil {
			w.Status = StatusMedicine
			c.MedicineID = w.ID
			events = append(events, fmt.Sprintf("%s has taken up the role of medicine cat.", w.Name()))
		}
	}

	return events
}

func (c *Clan) pick(rng *rand.Rand, status Status) *Cat {
	var pool []*Cat
	for _, cat := range c.Living() {
		if cat.Status == status {
			pool = append(pool, cat)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[rng.Intn(len(pool))]
}

func (c *Clan) hasQueen() bool {
	for _, cat := range c.Living() {
		if cat.Gender == "female" && (cat.Status == StatusWarrior || cat.Status == StatusDeputy) {
			return true
		}
	}
	return false
}
