package bot

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

var channelMentionPattern = regexp.MustCompile(`^<#(\d+)>$`)

// parseCommand strips the prefix or a leading bot mention and splits the
// command name from its arguments
func parseCommand(text, prefix, botID string) (name, rest string, ok bool) {
	text = strings.TrimSpace(text)

	switch {
	case prefix != "" && strings.HasPrefix(text, prefix):
		text = text[len(prefix):]
	case botID != "" && strings.HasPrefix(text, "<@"+botID+">"):
		text = text[len("<@"+botID+">"):]
	case botID != "" && strings.HasPrefix(text, "<@!"+botID+">"):
		text = text[len("<@!"+botID+">"):]
	default:
		return "", "", false
	}

	name, rest = splitFirst(strings.TrimSpace(text))
	if name == "" {
		return "", "", false
	}
	return strings.ToLower(name), rest, true
}

// splitFirst returns the first whitespace-separated token and the trimmed remainder
func splitFirst(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t'
	})
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func parseChannelRef(ref string) (string, bool) {
	if m := channelMentionPattern.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if ref != "" && strings.Trim(ref, "0123456789") == "" {
		return ref, true
	}
	return "", false
}

// dispatchPrefix routes a parsed text command. ok is false for unknown commands.
func (h *Handler) dispatchPrefix(inv Invocation, name, rest string, attachments []*discordgo.MessageAttachment) (Reply, bool) {
	switch name {
	case "ping":
		return h.Ping(inv), true
	case "roll":
		spec, _ := splitFirst(rest)
		return h.Roll(inv, spec), true
	case "quote":
		return h.Quote(inv), true
	case "remind":
		first, message := splitFirst(rest)
		minutes, err := strconv.ParseFloat(first, 64)
		if err != nil || message == "" {
			return Reply{Content: "Usage: " + h.prefix + "remind <minutes> <message>"}, true
		}
		return h.Remind(inv, minutes, message), true
	case "waterreminder":
		return h.WaterReminder(inv), true
	case "dm":
		target, message := splitFirst(rest)
		var attachment *discordgo.MessageAttachment
		if len(attachments) > 0 {
			attachment = attachments[0]
		}
		if target == "" {
			if !h.IsPrivileged(inv.UserID) {
				return h.DM(inv, "", "", nil), true
			}
			return Reply{Content: "Usage: " + h.prefix + "dm <member> <message>"}, true
		}
		return h.DM(inv, target, message, attachment), true
	case "sync":
		return h.Sync(inv), true
	case "purge":
		count := defaultPurgeCount
		if arg, _ := splitFirst(rest); arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil {
				n = 0
			}
			count = n
		}
		return h.Purge(inv, count), true
	case "announce":
		ref, message := splitFirst(rest)
		channelID, ok := parseChannelRef(ref)
		if !IsModerator(inv.Permissions) {
			return h.Announce(inv, channelID, message), true
		}
		if !ok || message == "" {
			return Reply{Content: "Usage: " + h.prefix + "announce #channel <message>"}, true
		}
		return h.Announce(inv, channelID, message), true
	case "about":
		return h.About(inv), true
	case "help":
		return h.Help(inv), true
	case "motivate":
		return h.Motivate(inv), true
	case "workout":
		difficulty, _ := splitFirst(rest)
		return h.Workout(inv, difficulty), true
	case "tip":
		theme, _ := splitFirst(rest)
		return h.Tip(inv, theme), true
	case "breathing":
		return h.Breathing(inv), true
	case "stats":
		return h.Stats(inv), true
	case "leaderboard":
		return h.Leaderboard(inv), true
	case "health":
		return h.Health(inv), true
	default:
		return Reply{}, false
	}
}

// HandleMessage runs a text command and delivers its reply. It reports whether
// the message was a command.
func (h *Handler) HandleMessage(inv Invocation, text, botID string, attachments []*discordgo.MessageAttachment) bool {
	name, rest, ok := parseCommand(text, h.prefix, botID)
	if !ok {
		return false
	}

	reply, ok := h.dispatchPrefix(inv, name, rest, attachments)
	if !ok {
		slog.Debug("Unknown prefix command", "command", name)
		return false
	}

	slog.Debug("Handled prefix command", "command", name, "user", inv.UserID, "guild", inv.GuildID)
	h.deliver(inv, reply)
	return true
}

// deliver sends a prefix reply. Private replies fall back to the channel when
// the caller's DMs are closed.
func (h *Handler) deliver(inv Invocation, reply Reply) {
	if reply.empty() {
		return
	}

	msg := &discordgo.MessageSend{Content: reply.Content}
	if reply.Embed != nil {
		msg.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	}

	if reply.Private {
		err := h.messenger.SendDirect(inv.UserID, msg)
		if err == nil {
			return
		}
		slog.Debug("Private reply failed, using channel", "user", inv.UserID, "error", err)
	}

	sent, err := h.messenger.SendChannel(inv.ChannelID, msg)
	if err != nil {
		slog.Error("Failed to send reply", "channel", inv.ChannelID, "error", err)
		return
	}

	if reply.DeleteAfter > 0 && sent != nil {
		channelID, messageID := inv.ChannelID, sent.ID
		time.AfterFunc(reply.DeleteAfter, func() {
			if err := h.messenger.DeleteMessage(channelID, messageID); err != nil {
				slog.Debug("Failed to delete reply", "channel", channelID, "error", err)
			}
		})
	}
}
