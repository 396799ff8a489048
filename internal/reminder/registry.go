package reminder

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

var (
	ErrInvalidDelay = errors.New("delay must be positive")
	ErrStopped      = errors.New("reminder registry is stopped")
)

// Notifier delivers a fired reminder
type Notifier interface {
	SendDirect(userID string, msg *discordgo.MessageSend) error
	SendChannel(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)
	FindFallbackChannel(userID, name string) (string, error)
}

// Reminder is a one-shot message waiting for its delay to elapse
type Reminder struct {
	ID        uuid.UUID
	UserID    string
	Message   string
	Delay     time.Duration
	CreatedAt time.Time
	DueAt     time.Time
}

type entry struct {
	reminder Reminder
	timer    *time.Timer
}

// Registry tracks pending reminders. Nothing is persisted; a restart loses them.
type Registry struct {
	notifier        Notifier
	fallbackChannel string

	mu      sync.Mutex
	pending map[uuid.UUID]*entry
	stopped bool
}

// NewRegistry creates a registry that falls back to fallbackChannel when a DM fails
func NewRegistry(notifier Notifier, fallbackChannel string) *Registry {
	return &Registry{
		notifier:        notifier,
		fallbackChannel: fallbackChannel,
		pending:         make(map[uuid.UUID]*entry),
	}
}

// Schedule arms a single delivery of message to userID after delay
func (r *Registry) Schedule(userID string, delay time.Duration, message string) (Reminder, error) {
	if delay <= 0 {
		return Reminder{}, ErrInvalidDelay
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return Reminder{}, ErrStopped
	}

	now := time.Now()
	rem := Reminder{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Delay:     delay,
		CreatedAt: now,
		DueAt:     now.Add(delay),
	}

	id := rem.ID
	r.pending[id] = &entry{
		reminder: rem,
		timer:    time.AfterFunc(delay, func() { r.fire(id) }),
	}

	slog.Info("Reminder scheduled", "id", id, "user", userID, "delay", delay)
	return rem, nil
}

// Cancel stops a pending reminder and reports whether it was still pending
func (r *Registry) Cancel(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.pending[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(r.pending, id)
	return true
}

// Pending lists reminders that have not fired, soonest first
func (r *Registry) Pending() []Reminder {
	r.mu.Lock()
	out := make([]Reminder, 0, len(r.pending))
	for _, e := range r.pending {
		out = append(out, e.reminder)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].DueAt.Before(out[j].DueAt)
	})
	return out
}

// Len returns the number of pending reminders
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Stop cancels every pending reminder and refuses new ones
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.pending {
		e.timer.Stop()
		delete(r.pending, id)
	}
	r.stopped = true
}

func (r *Registry) fire(id uuid.UUID) {
	r.mu.Lock()
	e, ok := r.pending[id]
	if ok {
		delete(r.pending, id)
	}
	r.mu.Unlock()

	// Cancelled between the timer firing and acquiring the lock
	if !ok {
		return
	}

	if err := r.deliver(e.reminder); err != nil {
		slog.Warn("Dropped reminder", "id", id, "user", e.reminder.UserID, "error", err)
		return
	}
	slog.Info("Reminder delivered", "id", id, "user", e.reminder.UserID)
}

// deliver tries a DM first, then the fallback channel with a mention
func (r *Registry) deliver(rem Reminder) error {
	text := "⏰ Reminder: " + rem.Message

	dmErr := r.notifier.SendDirect(rem.UserID, &discordgo.MessageSend{Content: text})
	if dmErr == nil {
		return nil
	}
	slog.Debug("Reminder DM failed, trying fallback channel", "user", rem.UserID, "error", dmErr)

	channelID, err := r.notifier.FindFallbackChannel(rem.UserID, r.fallbackChannel)
	if err != nil {
		return fmt.Errorf("direct message failed (%v) and no fallback channel: %w", dmErr, err)
	}

	_, err = r.notifier.SendChannel(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s> %s", rem.UserID, text),
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{rem.UserID},
		},
	})
	if err != nil {
		return fmt.Errorf("fallback channel %s: %w", channelID, err)
	}
	return nil
}
