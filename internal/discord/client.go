package discord

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/NovaFrame52/Ron-Bot/internal/contract"
	"github.com/bwmarrin/discordgo"
)

const (
	// Discord refuses bulk deletes above this size
	bulkDeleteLimit = 100
	// Bulk delete rejects the whole request if any message is older than this
	bulkDeleteMaxAge = 14 * 24 * time.Hour
	// Largest attachment the bot will re-upload
	maxAttachmentBytes = 25 << 20
	memberPageSize     = 1000
)

var (
	ErrNoSharedGuild   = errors.New("user shares no guild with the bot")
	ErrChannelNotFound = errors.New("fallback channel not found")
	ErrMemberNotFound  = errors.New("member not found")
)

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// Client implements contract.Messenger on top of a discordgo session
type Client struct {
	session *discordgo.Session
}

var _ contract.Messenger = (*Client)(nil)

// New wraps an existing session
func New(session *discordgo.Session) *Client {
	return &Client{session: session}
}

// SendDirect opens a DM channel with the user and posts msg to it
func (c *Client) SendDirect(userID string, msg *discordgo.MessageSend) error {
	ch, err := c.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}
	if _, err := c.session.ChannelMessageSendComplex(ch.ID, msg); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}

// SendChannel posts msg to a channel
func (c *Client) SendChannel(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return c.session.ChannelMessageSendComplex(channelID, msg)
}

// ChannelGuild checks the state cache before asking the API
func (c *Client) ChannelGuild(channelID string) (string, error) {
	if ch, err := c.session.State.Channel(channelID); err == nil {
		return ch.GuildID, nil
	}
	ch, err := c.session.Channel(channelID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	return ch.GuildID, nil
}

// FindFallbackChannel looks only at the first guild the user is a member of
func (c *Client) FindFallbackChannel(userID, name string) (string, error) {
	c.session.State.RLock()
	guilds := make([]*discordgo.Guild, len(c.session.State.Guilds))
	copy(guilds, c.session.State.Guilds)
	c.session.State.RUnlock()

	for _, g := range guilds {
		if !c.isMember(g.ID, userID) {
			continue
		}

		channels, err := c.session.GuildChannels(g.ID)
		if err != nil {
			return "", fmt.Errorf("failed to list channels in guild %s: %w", g.ID, err)
		}
		if id := findTextChannel(channels, name); id != "" {
			return id, nil
		}
		return "", fmt.Errorf("%w: #%s in guild %s", ErrChannelNotFound, name, g.ID)
	}

	return "", ErrNoSharedGuild
}

func (c *Client) isMember(guildID, userID string) bool {
	if _, err := c.session.State.Member(guildID, userID); err == nil {
		return true
	}
	_, err := c.session.GuildMember(guildID, userID)
	return err == nil
}

// ResolveMember tries, in order: mention or raw id, name#discrim, display name, username
func (c *Client) ResolveMember(guildID, target string) (*discordgo.Member, error) {
	target = strings.TrimSpace(target)

	if id, ok := ParseUserID(target); ok {
		if m, err := c.session.State.Member(guildID, id); err == nil {
			return m, nil
		}
		if m, err := c.session.GuildMember(guildID, id); err == nil {
			return m, nil
		}
	}

	members, err := c.listMembers(guildID)
	if err != nil {
		return nil, err
	}
	if m := MatchMember(members, target); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, target)
}

func (c *Client) listMembers(guildID string) ([]*discordgo.Member, error) {
	var all []*discordgo.Member
	after := ""
	for {
		page, err := c.session.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		all = append(all, page...)
		if len(page) < memberPageSize {
			return all, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// FetchAttachment downloads the attachment through the session's HTTP client
func (c *Client) FetchAttachment(a *discordgo.MessageAttachment) (*discordgo.File, error) {
	if a.Size > maxAttachmentBytes {
		return nil, fmt.Errorf("attachment %s is too large (%d bytes)", a.Filename, a.Size)
	}

	client := c.session.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(a.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download attachment: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	return &discordgo.File{
		Name:        a.Filename,
		ContentType: a.ContentType,
		Reader:      bytes.NewReader(body),
	}, nil
}

// Purge pages back through the channel history. Recent messages are bulk
// deleted in chunks, older ones one at a time.
func (c *Client) Purge(channelID string, limit int) (int, error) {
	deleted := 0
	before := ""

	for deleted < limit {
		batch := limit - deleted
		if batch > bulkDeleteLimit {
			batch = bulkDeleteLimit
		}

		msgs, err := c.session.ChannelMessages(channelID, batch, before, "", "")
		if err != nil {
			return deleted, fmt.Errorf("failed to fetch messages: %w", err)
		}
		if len(msgs) == 0 {
			break
		}

		recent, old := splitByAge(msgs, time.Now())

		n, err := c.deleteRecent(channelID, recent)
		deleted += n
		if err != nil {
			return deleted, err
		}
		for _, id := range old {
			if err := c.session.ChannelMessageDelete(channelID, id); err != nil {
				return deleted, fmt.Errorf("failed to delete message %s: %w", id, err)
			}
			deleted++
		}

		before = msgs[len(msgs)-1].ID

		if len(msgs) < batch {
			break
		}
	}

	slog.Info("Purged messages", "channel", channelID, "count", deleted)
	return deleted, nil
}

func (c *Client) deleteRecent(channelID string, ids []string) (int, error) {
	var err error
	switch len(ids) {
	case 0:
		return 0, nil
	case 1:
		err = c.session.ChannelMessageDelete(channelID, ids[0])
	default:
		err = c.session.ChannelMessagesBulkDelete(channelID, ids)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete messages: %w", err)
	}
	return len(ids), nil
}

// splitByAge separates messages Discord will still bulk delete from those
// that must go one at a time. Unparseable IDs count as old.
func splitByAge(msgs []*discordgo.Message, now time.Time) (recent, old []string) {
	cutoff := now.Add(-bulkDeleteMaxAge)
	for _, m := range msgs {
		ts, err := discordgo.SnowflakeTimestamp(m.ID)
		if err == nil && ts.After(cutoff) {
			recent = append(recent, m.ID)
		} else {
			old = append(old, m.ID)
		}
	}
	return recent, old
}

// DeleteMessage removes one message
func (c *Client) DeleteMessage(channelID, messageID string) error {
	return c.session.ChannelMessageDelete(channelID, messageID)
}

// SyncCommands replaces all global commands in one call
func (c *Client) SyncCommands(commands []*discordgo.ApplicationCommand) (int, error) {
	if c.session.State.User == nil {
		return 0, errors.New("session is not ready")
	}

	registered, err := c.session.ApplicationCommandBulkOverwrite(c.session.State.User.ID, "", commands)
	if err != nil {
		return 0, fmt.Errorf("failed to overwrite commands: %w", err)
	}
	return len(registered), nil
}

// Latency is the gateway heartbeat round trip
func (c *Client) Latency() time.Duration {
	return c.session.HeartbeatLatency()
}

// ParseUserID accepts <@id>, <@!id> or a bare snowflake
func ParseUserID(target string) (string, bool) {
	if m := mentionPattern.FindStringSubmatch(target); m != nil {
		return m[1], true
	}
	if target != "" && strings.Trim(target, "0123456789") == "" {
		return target, true
	}
	return "", false
}

// MatchMember finds a member by name#discrim first, then by display name or username
func MatchMember(members []*discordgo.Member, target string) *discordgo.Member {
	if i := strings.LastIndex(target, "#"); i > 0 {
		name, discrim := target[:i], target[i+1:]
		for _, m := range members {
			if m.User != nil && m.User.Username == name && m.User.Discriminator == discrim {
				return m
			}
		}
	}

	for _, m := range members {
		if m.User == nil {
			continue
		}
		if DisplayName(m) == target || m.User.Username == target {
			return m
		}
	}
	return nil
}

// DisplayName prefers the guild nickname, then the global name, then the username
func DisplayName(m *discordgo.Member) string {
	if m == nil {
		return ""
	}
	if m.Nick != "" {
		return m.Nick
	}
	if m.User == nil {
		return ""
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

func findTextChannel(channels []*discordgo.Channel, name string) string {
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return ch.ID
		}
	}
	return ""
}
