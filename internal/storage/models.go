package storage

// Subscriber is the persisted record for one user of the hydration broadcast
type Subscriber struct {
	Subscribed bool `json:"subscribed"`
	// Streak is shown by stats and leaderboard. Nothing increments it yet.
	Streak int `json:"streak,omitempty"`
}

// State is the outcome of a subscription toggle
type State int

const (
	Unsubscribed State = iota
	Subscribed
)

func (s State) String() string {
	if s == Subscribed {
		return "subscribed"
	}
	return "unsubscribed"
}

// Entry is one leaderboard row
type Entry struct {
	UserID string
	Streak int
}
