package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NovaFrame52/Ron-Bot/internal/broadcast"
	"github.com/NovaFrame52/Ron-Bot/internal/config"
	"github.com/NovaFrame52/Ron-Bot/internal/content"
	"github.com/NovaFrame52/Ron-Bot/internal/discord"
	"github.com/NovaFrame52/Ron-Bot/internal/health"
	"github.com/NovaFrame52/Ron-Bot/internal/reminder"
	"github.com/NovaFrame52/Ron-Bot/internal/storage"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	config      *config.Config
	session     *discordgo.Session
	messenger   *discord.Client
	store       *storage.Store
	reminders   *reminder.Registry
	broadcaster *broadcast.Broadcaster
	handler     *Handler
	started     time.Time

	// ctx is the lifetime of the process; Ready restarts the broadcast under it
	ctx context.Context
}

// New creates a new Bot instance backed by store
func New(cfg *config.Config, store *storage.Store) (*Bot, error) {
	// Create Discord session
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Set intents
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	b := &Bot{
		config:    cfg,
		session:   session,
		messenger: discord.New(session),
		store:     store,
		started:   time.Now(),
		ctx:       context.Background(),
	}

	picker := content.NewRandomPicker()
	b.reminders = reminder.NewRegistry(b.messenger, cfg.FallbackChannel)
	b.broadcaster = broadcast.New(b.store, picker, b.messenger, cfg.WaterInterval)
	b.handler = NewHandler(Deps{
		Prefix:    cfg.Prefix,
		OwnerID:   cfg.OwnerID,
		Messenger: b.messenger,
		Store:     b.store,
		Picker:    picker,
		Reminders: b.reminders,
		Status:    b.Status,
	})

	// Register event handlers
	b.registerHandlers()

	return b, nil
}

// Status reports runtime counters for the health check
func (b *Bot) Status() health.Status {
	return health.Collect(b.started, b.store.Len(), b.reminders.Len(), b.broadcaster.Cycles())
}

// Start opens the Discord connection and starts background tasks
func (b *Bot) Start(ctx context.Context) error {
	// Ready fires during Open, so the context must be in place first
	b.ctx = ctx

	// Open Discord connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("Connected to Discord", "user", b.session.State.User.Username)
	return nil
}

// Stop gracefully shuts down the bot
func (b *Bot) Stop() error {
	b.broadcaster.Stop()
	b.reminders.Stop()

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// registerHandlers sets up Discord event handlers
func (b *Bot) registerHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleMessage)
	b.session.AddHandler(b.handleReady)
}

// handleReady runs on every connect and reconnect
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username, "id", r.User.ID, "guilds", len(r.Guilds))

	if n, err := b.messenger.SyncCommands(CommandDefinitions()); err != nil {
		slog.Error("Failed to sync slash commands", "error", err)
	} else {
		slog.Info("Slash commands registered", "count", n)
	}

	// Reconnects fire Ready again; Restart keeps a single loop
	b.broadcaster.Restart(b.ctx)
}

// handleMessage processes prefix commands
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	inv := Invocation{
		UserID:      m.Author.ID,
		DisplayName: m.Author.Username,
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
	}
	if m.Author.GlobalName != "" {
		inv.DisplayName = m.Author.GlobalName
	}
	if m.Member != nil && m.Member.Nick != "" {
		inv.DisplayName = m.Member.Nick
	}
	if m.GuildID != "" {
		perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
		if err != nil {
			slog.Debug("Failed to read permissions", "user", m.Author.ID, "error", err)
		}
		inv.Permissions = perms
	}

	botID := ""
	if s.State.User != nil {
		botID = s.State.User.ID
	}

	b.handler.HandleMessage(inv, m.Content, botID, m.Attachments)
}
