package broadcast

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NovaFrame52/Ron-Bot/internal/content"
	"github.com/NovaFrame52/Ron-Bot/internal/storage"
	"github.com/bwmarrin/discordgo"
)

// Sender delivers a direct message
type Sender interface {
	SendDirect(userID string, msg *discordgo.MessageSend) error
}

// Broadcaster periodically DMs every subscriber a hydration phrase.
// At most one loop runs at a time; Start replaces any running loop.
type Broadcaster struct {
	store    *storage.Store
	picker   *content.Picker
	sender   Sender
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	active atomic.Int32
	cycles atomic.Int64
}

// New creates a Broadcaster firing every interval
func New(store *storage.Store, picker *content.Picker, sender Sender, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		store:    store,
		picker:   picker,
		sender:   sender,
		interval: interval,
	}
}

// Start cancels any running loop, waits for it to exit and launches a fresh one
func (b *Broadcaster) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		slog.Info("Replacing running broadcaster")
		b.stopLocked()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	b.cancel = cancel
	b.done = done

	b.active.Add(1)
	go b.run(loopCtx, done)
}

// Restart is Start under the name used by the reconnect path
func (b *Broadcaster) Restart(ctx context.Context) {
	b.Start(ctx)
}

// Stop signals the loop to stop and waits for it
func (b *Broadcaster) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

// Running reports how many loops are alive. Anything other than 0 or 1 is a bug.
func (b *Broadcaster) Running() int {
	return int(b.active.Load())
}

// Cycles returns the number of completed broadcasts
func (b *Broadcaster) Cycles() int64 {
	return b.cycles.Load()
}

func (b *Broadcaster) stopLocked() {
	if b.cancel == nil {
		return
	}
	b.cancel()
	<-b.done
	b.cancel = nil
	b.done = nil
}

func (b *Broadcaster) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer b.active.Add(-1)

	slog.Info("Starting broadcaster", "interval", b.interval)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Broadcaster stopped")
			return
		case <-ticker.C:
			b.Broadcast(ctx)
		}
	}
}

// Broadcast sends one phrase to every current subscriber. Recipients that
// cannot be reached are unsubscribed. It returns the delivered and removed counts.
func (b *Broadcaster) Broadcast(ctx context.Context) (sent, removed int) {
	defer b.cycles.Add(1)

	users := b.store.Subscribers()
	if len(users) == 0 {
		slog.Debug("No subscribers to remind")
		return 0, 0
	}

	slog.Debug("Broadcasting hydration reminder", "count", len(users))

	for _, userID := range users {
		select {
		case <-ctx.Done():
			return sent, removed
		default:
		}

		msg := &discordgo.MessageSend{Content: b.picker.Hydration()}
		if err := b.sender.SendDirect(userID, msg); err != nil {
			slog.Warn("Removing unreachable subscriber", "user", userID, "error", err)
			if b.store.Remove(userID) {
				removed++
			}
			continue
		}
		sent++
	}

	slog.Info("Hydration reminders sent", "sent", sent, "removed", removed)
	return sent, removed
}
