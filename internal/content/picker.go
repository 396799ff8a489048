package content

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Picker selects random content. It is safe for concurrent use and can be
// seeded for reproducible output.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a picker with a fixed seed
func NewPicker(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomPicker returns a picker seeded from the clock
func NewRandomPicker() *Picker {
	return NewPicker(time.Now().UnixNano())
}

// Intn returns a value in [0, n)
func (p *Picker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

// Pick returns one element of items, or "" for an empty list
func (p *Picker) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[p.Intn(len(items))]
}

func (p *Picker) Hydration() string   { return p.Pick(HydrationPhrases) }
func (p *Picker) Quote() string       { return p.Pick(Quotes) }
func (p *Picker) Affirmation() string { return p.Pick(Affirmations) }
func (p *Picker) Breathing() string   { return p.Pick(BreathingExercises) }

// Workout picks from the named difficulty tier. Unknown or empty difficulty
// falls back to the general pool and returns an empty tier.
func (p *Picker) Workout(difficulty string) (suggestion, tier string) {
	tier = strings.ToLower(strings.TrimSpace(difficulty))
	if items, ok := WorkoutsByDifficulty[tier]; ok {
		return p.Pick(items), tier
	}
	return p.Pick(WorkoutIdeas), ""
}

// Tip picks from the named theme, falling back like Workout
func (p *Picker) Tip(theme string) (tip, matched string) {
	matched = strings.ToLower(strings.TrimSpace(theme))
	if items, ok := TipsByTheme[matched]; ok {
		return p.Pick(items), matched
	}
	return p.Pick(WellnessTips), ""
}
