package clan

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Generate builds a fresh clan with a full set of founding cats.
// The same seed always produces the same names, ranks and ages; cat IDs are
// random and unique per call.
func Generate(name string, seed int64) (*Clan, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	c := &Clan{
		Name:      name,
		CreatedAt: time.Now(),
	}

	founders := []struct {
		status   Status
		min, max int
	}{
		{StatusLeader, 30, 80},
		{StatusDeputy, 24, 60},
		{StatusMedicine, 20, 70},
		{StatusWarrior, 12, 50},
		{StatusWarrior, 12, 50},
		{StatusWarrior, 12, 50},
		{StatusWarrior, 12, 50},
		{StatusApprentice, ApprenticeAge, WarriorAge - 1},
		{StatusApprentice, ApprenticeAge, WarriorAge - 1},
		{StatusKitten, 0, ApprenticeAge - 1},
		{StatusKitten, 0, ApprenticeAge - 1},
		{StatusElder, ElderAge, ElderAge + 30},
	}

	for _, f := range founders {
		cat := newCat(rng, f.status, f.min+rng.Intn(f.max-f.min+1))
		c.Cats = append(c.Cats, cat)
		switch f.status {
		case StatusLeader:
			c.LeaderID = cat.ID
		case StatusDeputy:
			c.DeputyID = cat.ID
		case StatusMedicine:
			c.MedicineID = cat.ID
		}
	}

	c.assignMentors(rng)
	return c, nil
}

func newCat(rng *rand.Rand, status Status, moons int) *Cat {
	gender := "female"
	if rng.Intn(2) == 0 {
		gender = "male"
	}
	return &Cat{
		ID:     uuid.NewString(),
		Prefix: prefixes[rng.Intn(len(prefixes))],
		Suffix: suffixes[rng.Intn(len(suffixes))],
		Status: status,
		Moons:  moons,
		Gender: gender,
		Pelt:   pelts[rng.Intn(len(pelts))],
	}
}

// assignMentors pairs every apprentice without a living mentor with a random warrior.
func (c *Clan) assignMentors(rng *rand.Rand) {
	var warriors []*Cat
	for _, cat := range c.Living() {
		if cat.Status == StatusWarrior || cat.Status == StatusDeputy {
			warriors = append(warriors, cat)
		}
	}
	if len(warriors) == 0 {
		return
	}
	for _, cat := range c.Living() {
		if cat.Status != StatusApprentice {
			continue
		}
		if m := c.Find(cat.MentorID); m == nil || m.Dead {
			cat.MentorID = warriors[rng.Intn(len(warriors))].ID
		}
	}
}
