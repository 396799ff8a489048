package bot

import (
	"errors"
	"time"

	"github.com/NovaFrame52/Ron-Bot/internal/content"
	"github.com/NovaFrame52/Ron-Bot/internal/contract"
	"github.com/NovaFrame52/Ron-Bot/internal/health"
	"github.com/NovaFrame52/Ron-Bot/internal/reminder"
	"github.com/NovaFrame52/Ron-Bot/internal/storage"
	"github.com/bwmarrin/discordgo"
)

const (
	defaultPurgeCount = 10
	maxPurgeCount     = 100
	leaderboardSize   = 10
	purgeNoticeTTL    = 5 * time.Second

	// One year keeps the delay well inside time.Duration
	maxReminderMinutes = 365 * 24 * 60

	// Manage Server permission bit
	permissionManageGuild int64 = 1 << 5
)

var ErrPurgeRange = errors.New("purge count must be between 1 and 100")

// Invocation describes who called a command and from where
type Invocation struct {
	UserID      string
	DisplayName string
	GuildID     string
	ChannelID   string
	// MessageID is the invoking message for prefix commands, empty for slash
	MessageID   string
	Permissions int64
	Slash       bool
}

// Mention renders the caller as a ping
func (inv Invocation) Mention() string {
	return "<@" + inv.UserID + ">"
}

// Reply is what a command wants sent back. The front end decides how.
type Reply struct {
	Content string
	Embed   *discordgo.MessageEmbed
	// Ephemeral hides a slash reply from everyone but the caller
	Ephemeral bool
	// Private sends a prefix reply to the caller's DMs instead of the channel
	Private bool
	// DeleteAfter removes a prefix reply once elapsed
	DeleteAfter time.Duration
}

func (r Reply) empty() bool {
	return r.Content == "" && r.Embed == nil
}

// Deps are the collaborators a Handler needs
type Deps struct {
	Prefix    string
	OwnerID   string
	Messenger contract.Messenger
	Store     *storage.Store
	Picker    *content.Picker
	Reminders *reminder.Registry
	Status    health.StatusFunc
}

// Handler implements every command independently of how it was invoked
type Handler struct {
	prefix    string
	ownerID   string
	messenger contract.Messenger
	store     *storage.Store
	picker    *content.Picker
	reminders *reminder.Registry
	status    health.StatusFunc
	noticeTTL time.Duration
}

// NewHandler wires the command handlers
func NewHandler(d Deps) *Handler {
	return &Handler{
		prefix:    d.Prefix,
		ownerID:   d.OwnerID,
		messenger: d.Messenger,
		store:     d.Store,
		picker:    d.Picker,
		reminders: d.Reminders,
		status:    d.Status,
		noticeTTL: purgeNoticeTTL,
	}
}

// IsModerator reports whether perms carry Administrator or Manage Server
func IsModerator(perms int64) bool {
	return perms&discordgo.PermissionAdministrator != 0 || perms&permissionManageGuild != 0
}

// IsPrivileged reports whether the user is the configured owner
func (h *Handler) IsPrivileged(userID string) bool {
	return userID != "" && userID == h.ownerID
}

// symbol is the command prefix shown in help text for this invocation
func (h *Handler) symbol(inv Invocation) string {
	if inv.Slash {
		return "/"
	}
	return h.prefix
}

func validatePurgeCount(count int) error {
	if count < 1 || count > maxPurgeCount {
		return ErrPurgeRange
	}
	return nil
}
