package contract

//go:generate mockgen -source=messenger.go -destination=../mocks/mock_messenger.go -package=mocks

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Messenger defines the Discord operations the bot performs.
// This allows mocking in tests while the real implementation wraps a session.
type Messenger interface {
	// SendDirect opens a DM channel with the user and posts msg to it
	SendDirect(userID string, msg *discordgo.MessageSend) error

	// SendChannel posts msg to a guild or DM channel
	SendChannel(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)

	// ChannelGuild returns the guild a channel belongs to, empty for DMs
	ChannelGuild(channelID string) (string, error)

	// FindFallbackChannel returns the text channel called name in the first
	// guild the user shares with the bot
	FindFallbackChannel(userID, name string) (string, error)

	// ResolveMember finds a guild member by mention, id, name#discrim,
	// display name or username
	ResolveMember(guildID, target string) (*discordgo.Member, error)

	// FetchAttachment downloads an attachment so it can be re-sent
	FetchAttachment(attachment *discordgo.MessageAttachment) (*discordgo.File, error)

	// Purge deletes up to limit of the most recent messages and returns how many went
	Purge(channelID string, limit int) (int, error)

	// DeleteMessage removes one message
	DeleteMessage(channelID, messageID string) error

	// SyncCommands overwrites the global slash commands and returns how many are registered
	SyncCommands(commands []*discordgo.ApplicationCommand) (int, error)

	// Latency is the gateway heartbeat round trip
	Latency() time.Duration
}
