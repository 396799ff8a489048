package bot

import (
	"github.com/bwmarrin/discordgo"
)

func tierChoices(names ...string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(names))
	for i, n := range names {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: n, Value: n}
	}
	return choices
}

// CommandDefinitions returns every slash command the bot serves
func CommandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check bot latency",
		},
		{
			Name:        "roll",
			Description: "Roll dice in NdM format",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "dice",
					Description: "Dice to roll (e.g., 2d6, d20). Defaults to 1d6",
				},
			},
		},
		{
			Name:        "quote",
			Description: "Random motivational quote",
		},
		{
			Name:        "remind",
			Description: "Set a personal reminder",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "minutes",
					Description: "Minutes from now (fractions allowed)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "What to remind you about",
					Required:    true,
				},
			},
		},
		{
			Name:        "waterreminder",
			Description: "Subscribe to or unsubscribe from hourly water reminders",
		},
		{
			Name:        "dm",
			Description: "Send a DM to a member (owner only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "target",
					Description: "Member identifier (ID, mention, username#discrim, or name)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "Message content",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Name:        "image",
					Description: "Optional image to attach",
				},
			},
		},
		{
			Name:        "sync",
			Description: "Sync slash commands with Discord (owner only)",
		},
		{
			Name:        "purge",
			Description: "Bulk delete messages in this channel (mods only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Number of messages to delete (1-100, default 10)",
				},
			},
		},
		{
			Name:        "announce",
			Description: "Post an announcement (mods only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel to post in",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "Announcement text",
					Required:    true,
				},
			},
		},
		{
			Name:        "about",
			Description: "About Ron Bot",
		},
		{
			Name:        "help",
			Description: "Show all available commands",
		},
		{
			Name:        "motivate",
			Description: "Quick motivation boost",
		},
		{
			Name:        "workout",
			Description: "Get a quick workout suggestion",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "difficulty",
					Description: "How hard the workout should be",
					Choices:     tierChoices("easy", "medium", "hard"),
				},
			},
		},
		{
			Name:        "tip",
			Description: "Get a wellness tip",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "theme",
					Description: "Tip theme",
					Choices:     tierChoices("hydration", "mindfulness", "fitness"),
				},
			},
		},
		{
			Name:        "breathing",
			Description: "Guided breathing exercise",
		},
		{
			Name:        "stats",
			Description: "View your reminder stats",
		},
		{
			Name:        "leaderboard",
			Description: "See top streaks",
		},
		{
			Name:        "health",
			Description: "Bot status (owner only)",
		},
	}
}
