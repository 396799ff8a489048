package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/NovaFrame52/Ron-Bot/internal/content"
	"github.com/NovaFrame52/Ron-Bot/internal/discord"
	"github.com/NovaFrame52/Ron-Bot/internal/reminder"
	"github.com/NovaFrame52/Ron-Bot/internal/storage"
	"github.com/bwmarrin/discordgo"
)

const (
	colorBlue  = 0x3498DB
	colorGreen = 0x2ECC71
	colorGold  = 0xF1C40F
	colorLime  = 0x00FF00

	msgNoPermission = "❌ You don't have permission to use this command."
	msgNotAllowed   = "You are not allowed to use this command."

	msgChannelNotFound = "❌ That channel isn't in this server."
)

var imageURLPattern = regexp.MustCompile(`(?i)(https?://\S+\.(?:png|jpg|jpeg|gif|webp))`)

// Ping reports the gateway heartbeat latency
func (h *Handler) Ping(inv Invocation) Reply {
	return Reply{Content: fmt.Sprintf("Pong! %dms", h.messenger.Latency().Milliseconds())}
}

// Roll throws NdM dice, 1d6 when spec is empty
func (h *Handler) Roll(inv Invocation, spec string) Reply {
	if spec == "" {
		spec = content.DefaultDice
	}

	res, err := h.picker.RollSpec(spec)
	if err != nil {
		if inv.Slash {
			return Reply{Content: "Usage: /roll NdM (e.g. /roll 2d6). Max 100 dice.", Ephemeral: true}
		}
		return Reply{Content: fmt.Sprintf("Usage: %sroll NdM (e.g. 2d6, d20). Max 100 dice.", h.prefix)}
	}

	rolls := make([]string, len(res.Rolls))
	for i, r := range res.Rolls {
		rolls[i] = strconv.Itoa(r)
	}
	return Reply{Content: fmt.Sprintf("🎲 Rolled %s: [%s] (total: %d)", spec, strings.Join(rolls, ", "), res.Total)}
}

func (h *Handler) Quote(inv Invocation) Reply {
	return Reply{Content: h.picker.Quote()}
}

// Remind schedules a one-shot reminder. minutes may be fractional.
func (h *Handler) Remind(inv Invocation, minutes float64, message string) Reply {
	if math.IsNaN(minutes) || minutes <= 0 {
		return Reply{Content: "Please provide a positive number of minutes.", Ephemeral: true}
	}
	if minutes > maxReminderMinutes {
		return Reply{Content: fmt.Sprintf("That's too far in the future. Reminders can be at most %d minutes away.", maxReminderMinutes), Ephemeral: true}
	}

	delay := time.Duration(minutes * float64(time.Minute))
	if delay <= 0 {
		return Reply{Content: "Please provide a positive number of minutes.", Ephemeral: true}
	}

	if _, err := h.reminders.Schedule(inv.UserID, delay, message); err != nil {
		if errors.Is(err, reminder.ErrInvalidDelay) {
			return Reply{Content: "Please provide a positive number of minutes.", Ephemeral: true}
		}
		slog.Error("Failed to schedule reminder", "user", inv.UserID, "error", err)
		return Reply{Content: "Reminders are unavailable right now.", Ephemeral: true}
	}

	return Reply{
		Content:   fmt.Sprintf("Okay %s, I'll remind you in %s minute(s).", inv.Mention(), strconv.FormatFloat(minutes, 'f', -1, 64)),
		Ephemeral: true,
	}
}

// WaterReminder toggles the caller's hydration subscription
func (h *Handler) WaterReminder(inv Invocation) Reply {
	if h.store.Toggle(inv.UserID) == storage.Subscribed {
		return Reply{Content: "💧 You've subscribed to hourly water reminders! Stay hydrated! 💪"}
	}
	return Reply{Content: "💧 You've unsubscribed from water reminders."}
}

// DM relays a message, and optionally an attachment, to a guild member.
// Only the owner may use it.
func (h *Handler) DM(inv Invocation, target, message string, attachment *discordgo.MessageAttachment) Reply {
	if !h.IsPrivileged(inv.UserID) {
		return Reply{Content: msgNotAllowed, Ephemeral: true}
	}

	// Prefix form hides the command from the channel
	if !inv.Slash && inv.MessageID != "" {
		if err := h.messenger.DeleteMessage(inv.ChannelID, inv.MessageID); err != nil {
			slog.Debug("Failed to delete dm invocation", "error", err)
		}
	}

	if message == "" && attachment == nil {
		return Reply{Content: "Missing message content.", Ephemeral: true, Private: true}
	}
	if inv.GuildID == "" {
		return Reply{Content: "This command must be used in a server.", Ephemeral: true, Private: true}
	}

	member, err := h.messenger.ResolveMember(inv.GuildID, target)
	if err != nil || member == nil || member.User == nil {
		return Reply{
			Content:   fmt.Sprintf("Could not resolve target member: %s. Use a mention, ID, or username#discrim.", target),
			Ephemeral: true,
			Private:   true,
		}
	}
	name := discord.DisplayName(member)

	msg := &discordgo.MessageSend{Content: message}
	if attachment != nil {
		file, err := h.messenger.FetchAttachment(attachment)
		if err != nil {
			return h.dmFailed(name, err)
		}
		msg.Files = []*discordgo.File{file}
	} else if url := imageURLPattern.FindString(message); url != "" {
		msg.Embeds = []*discordgo.MessageEmbed{{Image: &discordgo.MessageEmbedImage{URL: url}}}
	}

	if err := h.messenger.SendDirect(member.User.ID, msg); err != nil {
		return h.dmFailed(name, err)
	}

	slog.Info("Relayed DM", "from", inv.UserID, "to", member.User.ID)
	return Reply{Content: fmt.Sprintf("Sent DM to %s.", name), Ephemeral: true, Private: true}
}

func (h *Handler) dmFailed(name string, err error) Reply {
	slog.Warn("Failed to relay DM", "to", name, "error", err)
	return Reply{Content: fmt.Sprintf("Failed to send DM to %s: %v", name, err), Ephemeral: true, Private: true}
}

// Sync overwrites the global slash commands
func (h *Handler) Sync(inv Invocation) Reply {
	if !h.IsPrivileged(inv.UserID) {
		return Reply{Content: msgNoPermission, Ephemeral: true}
	}

	n, err := h.messenger.SyncCommands(CommandDefinitions())
	if err != nil {
		slog.Error("Failed to sync commands", "error", err)
		return Reply{Content: fmt.Sprintf("❌ Failed to sync commands: %v", err), Ephemeral: true}
	}
	return Reply{Content: fmt.Sprintf("✅ Synced %d slash commands with Discord!", n), Ephemeral: true}
}

// Purge bulk-deletes recent messages. The prefix form also removes the
// invoking message and cleans up its own notice.
func (h *Handler) Purge(inv Invocation, count int) Reply {
	if !IsModerator(inv.Permissions) {
		return Reply{Content: msgNoPermission, Ephemeral: true}
	}
	if err := validatePurgeCount(count); err != nil {
		return Reply{Content: "Please specify a count between 1 and 100.", Ephemeral: true}
	}

	limit := count
	if !inv.Slash {
		limit++
	}

	deleted, err := h.messenger.Purge(inv.ChannelID, limit)
	if err != nil {
		return Reply{Content: fmt.Sprintf("Failed to purge messages: %v", err), Ephemeral: true}
	}

	if inv.Slash {
		return Reply{Content: fmt.Sprintf("🧹 Purged %d messages.", deleted), Ephemeral: true}
	}
	return Reply{
		Content:     fmt.Sprintf("🧹 Purged %d messages.", max(deleted-1, 0)),
		DeleteAfter: h.noticeTTL,
	}
}

// Announce posts a gold embed to channelID on behalf of a moderator.
// The channel must belong to the calling guild.
func (h *Handler) Announce(inv Invocation, channelID, message string) Reply {
	if !IsModerator(inv.Permissions) {
		return Reply{Content: msgNoPermission, Ephemeral: true}
	}

	guildID, err := h.messenger.ChannelGuild(channelID)
	if err != nil || guildID == "" || guildID != inv.GuildID {
		slog.Warn("Rejected announcement outside the guild", "channel", channelID, "guild", inv.GuildID, "error", err)
		return Reply{Content: msgChannelNotFound, Ephemeral: true}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📢 Announcement",
		Description: message,
		Color:       colorGold,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Posted by " + inv.DisplayName},
	}

	if _, err := h.messenger.SendChannel(channelID, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}); err != nil {
		return Reply{Content: fmt.Sprintf("Failed to send announcement: %v", err), Ephemeral: true}
	}
	return Reply{Content: fmt.Sprintf("✅ Announcement sent to <#%s>.", channelID), Ephemeral: true}
}

func (h *Handler) About(inv Invocation) Reply {
	p := h.symbol(inv)
	cmds := func(names ...string) string {
		parts := make([]string, len(names))
		for i, n := range names {
			parts[i] = "`" + p + n + "`"
		}
		return strings.Join(parts, " • ")
	}

	return Reply{Embed: &discordgo.MessageEmbed{
		Title:       "🤖 Ron Bot",
		Description: "The friendly wellness and moderation companion!",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Features", Value: "💧 Hydration Reminders • 💪 Wellness • 🎯 Motivation • 🧹 Moderation"},
			{Name: "Commands", Value: cmds("quote", "roll NdM", "ping", "remind", "waterreminder", "purge", "announce", "stats", "leaderboard", "health")},
			{Name: "QOL Features", Value: cmds("help", "motivate", "workout", "breathing", "tip", "about")},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Stay hydrated, stay healthy! 💚"},
	}}
}

func (h *Handler) Help(inv Invocation) Reply {
	p := h.symbol(inv)
	line := func(usage, desc string) string {
		return "`" + p + usage + "` - " + desc
	}

	return Reply{Embed: &discordgo.MessageEmbed{
		Title: "📚 Ron Bot Commands",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🧹 **Moderation**", Value: strings.Join([]string{
				line("purge <count>", "Bulk delete messages (mods only)"),
				line("announce <channel> <message>", "Post an announcement"),
			}, "\n")},
			{Name: "🎯 **Fun & Motivation**", Value: strings.Join([]string{
				line("ping", "Check bot latency"),
				line("quote", "Random motivational quote"),
				line("motivate", "Quick motivation boost"),
				line("roll NdM", "Roll dice (e.g., 2d6, d20)"),
			}, "\n")},
			{Name: "💚 **Wellness**", Value: strings.Join([]string{
				line("waterreminder", "Subscribe to hourly water reminders"),
				line("workout [easy|medium|hard]", "Get a quick workout suggestion"),
				line("breathing", "Guided breathing exercises"),
				line("tip [hydration|mindfulness|fitness]", "Daily wellness tip"),
			}, "\n")},
			{Name: "⏰ **Reminders**", Value: line("remind <minutes> <message>", "Set a personal reminder")},
			{Name: "ℹ️ **Info**", Value: strings.Join([]string{
				line("about", "About Ron Bot"),
				line("help", "This message"),
			}, "\n")},
			{Name: "📊 **Stats & Health**", Value: strings.Join([]string{
				line("stats", "View your reminder stats"),
				line("leaderboard", "See top streaks"),
				line("health", "Bot status (owner only)"),
			}, "\n")},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Both prefix (%s) and slash (/) commands work!", h.prefix),
		},
	}}
}

func (h *Handler) Motivate(inv Invocation) Reply {
	return Reply{Content: "💪 " + h.picker.Affirmation()}
}

// Workout suggests an exercise from the requested tier, or from everything
func (h *Handler) Workout(inv Invocation, difficulty string) Reply {
	suggestion, tier := h.picker.Workout(difficulty)
	if tier == "" {
		return Reply{Content: "💪 Random workout: " + suggestion}
	}
	return Reply{Content: fmt.Sprintf("💪 %s workout: %s", capitalize(tier), suggestion)}
}

// Tip gives a wellness tip for the theme, or any tip
func (h *Handler) Tip(inv Invocation, theme string) Reply {
	tip, matched := h.picker.Tip(theme)
	if matched == "" {
		return Reply{Content: "🌟 Random tip: " + tip}
	}
	return Reply{Content: fmt.Sprintf("🌟 %s tip: %s", capitalize(matched), tip)}
}

func (h *Handler) Breathing(inv Invocation) Reply {
	return Reply{Embed: &discordgo.MessageEmbed{
		Title:       "🧘 Breathing Exercise",
		Description: h.picker.Breathing(),
		Color:       colorGreen,
	}}
}

// Stats shows the caller's subscription and streak
func (h *Handler) Stats(inv Invocation) Reply {
	sub, _ := h.store.Get(inv.UserID)

	subscribed := "No"
	if sub.Subscribed {
		subscribed = "Yes"
	}

	return Reply{Content: fmt.Sprintf(
		"📊 **Your Stats:**\n- Subscribed to reminders: %s\n- Current streak: %d days",
		subscribed, sub.Streak,
	)}
}

// Leaderboard lists the top subscribers by streak
func (h *Handler) Leaderboard(inv Invocation) Reply {
	entries := h.store.Leaderboard(leaderboardSize)
	if len(entries) == 0 {
		return Reply{Content: "🏆 **Leaderboard:**\nNobody is on the board yet. Try `" + h.symbol(inv) + "waterreminder`!"}
	}

	var sb strings.Builder
	sb.WriteString("🏆 **Leaderboard:**")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("\n%d. <@%s> - %d days", i+1, e.UserID, e.Streak))
	}
	return Reply{Content: sb.String()}
}

// Health shows process status to the owner
func (h *Handler) Health(inv Invocation) Reply {
	if !h.IsPrivileged(inv.UserID) {
		return Reply{Content: msgNoPermission, Ephemeral: true}
	}

	st := h.status()
	return Reply{
		Embed: &discordgo.MessageEmbed{
			Title: "Bot Health Check",
			Color: colorLime,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Uptime", Value: st.Uptime.String()},
				{Name: "Subscribers", Value: strconv.Itoa(st.Subscribers)},
				{Name: "Active Reminders", Value: strconv.Itoa(st.PendingReminders)},
				{Name: "Broadcast Cycles", Value: strconv.FormatInt(st.BroadcastCycles, 10)},
				{Name: "Memory Usage", Value: st.HeapMB()},
			},
		},
		Ephemeral: true,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
