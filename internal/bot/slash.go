package bot

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// options indexes slash command options by name. Values arrive as decoded
// JSON, so numbers are float64 regardless of the declared option type.
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func newOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (o options) str(name string) string {
	opt, ok := o[name]
	if !ok {
		return ""
	}
	s, _ := opt.Value.(string)
	return s
}

func (o options) number(name string) (float64, bool) {
	opt, ok := o[name]
	if !ok {
		return 0, false
	}
	switch v := opt.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func (o options) integer(name string, def int) int {
	if v, ok := o.number(name); ok {
		return int(v)
	}
	return def
}

// deferred commands talk to Discord before answering and may exceed the
// three second interaction deadline
var deferred = map[string]bool{
	"dm":    true,
	"sync":  true,
	"purge": true,
}

// dispatchSlash routes a slash command. ok is false for unknown commands.
func (h *Handler) dispatchSlash(inv Invocation, data discordgo.ApplicationCommandInteractionData) (Reply, bool) {
	opts := newOptions(data.Options)

	switch data.Name {
	case "ping":
		return h.Ping(inv), true
	case "roll":
		return h.Roll(inv, opts.str("dice")), true
	case "quote":
		return h.Quote(inv), true
	case "remind":
		minutes, _ := opts.number("minutes")
		return h.Remind(inv, minutes, opts.str("message")), true
	case "waterreminder":
		return h.WaterReminder(inv), true
	case "dm":
		var attachment *discordgo.MessageAttachment
		if id := opts.str("image"); id != "" && data.Resolved != nil {
			attachment = data.Resolved.Attachments[id]
		}
		return h.DM(inv, opts.str("target"), opts.str("message"), attachment), true
	case "sync":
		return h.Sync(inv), true
	case "purge":
		return h.Purge(inv, opts.integer("count", defaultPurgeCount)), true
	case "announce":
		return h.Announce(inv, opts.str("channel"), opts.str("message")), true
	case "about":
		return h.About(inv), true
	case "help":
		return h.Help(inv), true
	case "motivate":
		return h.Motivate(inv), true
	case "workout":
		return h.Workout(inv, opts.str("difficulty")), true
	case "tip":
		return h.Tip(inv, opts.str("theme")), true
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

// invocationFromInteraction works for both guild and DM interactions
func invocationFromInteraction(i *discordgo.InteractionCreate) Invocation {
	inv := Invocation{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		Slash:     true,
	}

	var user *discordgo.User
	if i.Member != nil {
		user = i.Member.User
		inv.Permissions = i.Member.Permissions
		inv.DisplayName = i.Member.Nick
	}
	if user == nil {
		user = i.User
	}
	if user != nil {
		inv.UserID = user.ID
		if inv.DisplayName == "" {
			inv.DisplayName = user.GlobalName
		}
		if inv.DisplayName == "" {
			inv.DisplayName = user.Username
		}
	}
	return inv
}

func responseData(reply Reply) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{Content: reply.Content}
	if reply.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

// handleInteraction processes slash command interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	inv := invocationFromInteraction(i)
	slog.Debug("Received command", "command", data.Name, "user", inv.UserID, "guild", i.GuildID)

	if deferred[data.Name] {
		// Respond immediately to avoid timeout
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
		})
		if err != nil {
			slog.Error("Failed to defer response", "command", data.Name, "error", err)
			return
		}

		reply, _ := b.handler.dispatchSlash(inv, data)
		b.editResponse(s, i, reply)
		return
	}

	reply, ok := b.handler.dispatchSlash(inv, data)
	if !ok {
		slog.Warn("Unknown command", "command", data.Name)
		return
	}
	respondWithReply(s, i, reply)
}

func respondWithReply(s *discordgo.Session, i *discordgo.InteractionCreate, reply Reply) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: responseData(reply),
	})
	if err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

func (b *Bot) editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, reply Reply) {
	edit := &discordgo.WebhookEdit{Content: &reply.Content}
	if reply.Embed != nil {
		embeds := []*discordgo.MessageEmbed{reply.Embed}
		edit.Embeds = &embeds
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}
