package bot

import (
	"testing"

	"github.com/NovaFrame52/Ron-Bot/internal/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func opt(name string, value any) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Value: value}
}

func TestOptions(t *testing.T) {
	o := newOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		opt("dice", "2d6"),
		opt("minutes", 0.5),
		opt("count", float64(7)),
		opt("weird", true),
	})

	assert.Equal(t, "2d6", o.str("dice"))
	assert.Equal(t, "", o.str("missing"))
	assert.Equal(t, "", o.str("minutes"))

	v, ok := o.number("minutes")
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = o.number("weird")
	assert.False(t, ok)

	assert.Equal(t, 7, o.integer("count", 10))
	assert.Equal(t, 10, o.integer("missing", 10))
}

func TestHandler_DispatchSlash(t *testing.T) {
	attachment := &discordgo.MessageAttachment{ID: "A1", Filename: "cat.png"}

	tests := []struct {
		name        string
		inv         Invocation
		data        discordgo.ApplicationCommandInteractionData
		buildMock   func(m *mocks.MockMessenger)
		wantOK      bool
		wantContent string
	}{
		{
			name:        "Should pass fractional minutes to remind",
			inv:         Invocation{UserID: "u1", Slash: true},
			data:        discordgo.ApplicationCommandInteractionData{Name: "remind", Options: []*discordgo.ApplicationCommandInteractionDataOption{opt("minutes", 0.5), opt("message", "tea")}},
			buildMock:   func(m *mocks.MockMessenger) {},
			wantOK:      true,
			wantContent: "Okay <@u1>, I'll remind you in 0.5 minute(s).",
		},
		{
			name: "Should default the purge count",
			inv:  moderator(true),
			data: discordgo.ApplicationCommandInteractionData{Name: "purge"},
			buildMock: func(m *mocks.MockMessenger) {
				m.EXPECT().Purge(testChannel, 10).Return(10, nil).Times(1)
			},
			wantOK:      true,
			wantContent: "🧹 Purged 10 messages.",
		},
		{
			name: "Should read the purge count",
			inv:  moderator(true),
			data: discordgo.ApplicationCommandInteractionData{Name: "purge", Options: []*discordgo.ApplicationCommandInteractionDataOption{opt("count", float64(3))}},
			buildMock: func(m *mocks.MockMessenger) {
				m.EXPECT().Purge(testChannel, 3).Return(3, nil).Times(1)
			},
			wantOK:      true,
			wantContent: "🧹 Purged 3 messages.",
		},
		{
			name: "Should resolve the dm attachment",
			inv:  owner(true),
			data: discordgo.ApplicationCommandInteractionData{
				Name: "dm",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					opt("target", "bob"), opt("message", "hi"), opt("image", "A1"),
				},
				Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
					Attachments: map[string]*discordgo.MessageAttachment{"A1": attachment},
				},
			},
			buildMock: func(m *mocks.MockMessenger) {
				m.EXPECT().ResolveMember(testGuild, "bob").Return(member("U2", "bob"), nil).Times(1)
				m.EXPECT().FetchAttachment(attachment).Return(&discordgo.File{Name: "cat.png"}, nil).Times(1)
				m.EXPECT().SendDirect("U2", gomock.Any()).Return(nil).Times(1)
			},
			wantOK:      true,
			wantContent: "Sent DM to bob.",
		},
		{
			name:        "Should toggle the water reminder",
			inv:         Invocation{UserID: "u1", Slash: true},
			data:        discordgo.ApplicationCommandInteractionData{Name: "waterreminder"},
			buildMock:   func(m *mocks.MockMessenger) {},
			wantOK:      true,
			wantContent: "💧 You've subscribed to hourly water reminders! Stay hydrated! 💪",
		},
		{
			name:      "Should reject unknown commands",
			inv:       Invocation{UserID: "u1", Slash: true},
			data:      discordgo.ApplicationCommandInteractionData{Name: "register"},
			buildMock: func(m *mocks.MockMessenger) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ht := newHandlerTest(t, nil)
			tt.buildMock(ht.messenger)

			reply, ok := ht.handler.dispatchSlash(tt.inv, tt.data)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantContent, reply.Content)
		})
	}
}

func TestInvocationFromInteraction(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		GuildID:   testGuild,
		ChannelID: testChannel,
		Member: &discordgo.Member{
			Nick:        "Nicky",
			Permissions: discordgo.PermissionAdministrator,
			User:        &discordgo.User{ID: "u1", Username: "nick"},
		},
	}}

	inv := invocationFromInteraction(guild)
	assert.Equal(t, "u1", inv.UserID)
	assert.Equal(t, "Nicky", inv.DisplayName)
	assert.True(t, inv.Slash)
	assert.True(t, IsModerator(inv.Permissions))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ChannelID: "D1",
		User:      &discordgo.User{ID: "u2", Username: "solo", GlobalName: "Solo"},
	}}

	inv = invocationFromInteraction(dm)
	assert.Equal(t, "u2", inv.UserID)
	assert.Equal(t, "Solo", inv.DisplayName)
	assert.Empty(t, inv.GuildID)
	assert.False(t, IsModerator(inv.Permissions))
}

func TestResponseData(t *testing.T) {
	data := responseData(Reply{Content: "hi", Ephemeral: true})
	assert.Equal(t, "hi", data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)

	embed := &discordgo.MessageEmbed{Title: "t"}
	data = responseData(Reply{Embed: embed})
	require.Len(t, data.Embeds, 1)
	assert.Zero(t, data.Flags)
}

func TestCommandDefinitions(t *testing.T) {
	want := []string{
		"ping", "roll", "quote", "remind", "waterreminder", "dm", "sync", "purge", "announce",
		"about", "help", "motivate", "workout", "tip", "breathing", "stats", "leaderboard", "health",
	}

	var got []string
	for _, cmd := range CommandDefinitions() {
		assert.NotEmpty(t, cmd.Description, cmd.Name)
		got = append(got, cmd.Name)
	}
	assert.Equal(t, want, got)
}
