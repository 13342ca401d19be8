// Package seed generates plausible sample entries for demos.
package seed

import (
	"math/rand"
	"time"

	"tableflip.dev/mood/pkg/entry"
)

// DefaultDays is how far back Generate reaches by default.
const DefaultDays = 30

var notes = []string{
	"Today was a typical day. Nothing special happened.",
	"Had a good conversation with a friend today.",
	"Feeling a bit stressed about upcoming deadlines.",
	"Enjoyed some time outdoors today.",
	"Didn't sleep well last night, feeling tired.",
	"Made progress on a personal project today.",
	"Had a productive day at work.",
	"Spent time with family today.",
	"Tried a new recipe for dinner.",
	"Watched a good movie tonight.",
	"Feeling motivated to tackle challenges.",
	"Had a minor setback today, but staying positive.",
	"Took some time for self-care today.",
	"Feeling grateful for the small things.",
	"Weather was nice today, improved my mood.",
}

var followUps = []string{
	"Looking forward to tomorrow.",
	"Hope tomorrow is better.",
	"Need to focus more on self-care.",
	"Going to try to get more sleep tonight.",
	"Planning to be more productive tomorrow.",
}

// Generator produces sample entries from a random source.
type Generator struct {
	Rand *rand.Rand
	Days int
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{Rand: rand.New(rand.NewSource(seed)), Days: DefaultDays}
}

// Generate walks back from now, skipping today and roughly one day in five.
// Moods drift around a baseline that shifts every week or so, and about
// three entries in five carry a note. Entries come back newest first.
func (g *Generator) Generate(now time.Time) []entry.Entry {
	days := g.Days
	if days <= 0 {
		days = DefaultDays
	}
	r := g.Rand
	today := entry.Normalize(now)

	baseline := clamp(r.Intn(3) + 2)
	out := make([]entry.Entry, 0, days)
	for i := 1; i < days; i++ {
		if r.Float64() > 0.8 {
			continue
		}
		if i%(7+r.Intn(3)) == 0 {
			baseline = clamp(baseline + r.Intn(3) - 1)
		}
		mood := clamp(baseline + r.Intn(3) - 1)

		var note string
		if r.Float64() > 0.4 {
			note = notes[r.Intn(len(notes))]
			if r.Float64() > 0.7 {
				note += " " + followUps[r.Intn(len(followUps))]
			}
		}
		out = append(out, entry.New(today.AddDate(0, 0, -i), entry.Level(mood), note))
	}
	return out
}

func clamp(v int) int {
	switch {
	case v < int(entry.MinLevel):
		return int(entry.MinLevel)
	case v > int(entry.MaxLevel):
		return int(entry.MaxLevel)
	}
	return v
}
