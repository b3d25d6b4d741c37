package pagination

import "github.com/bwmarrin/discordgo"

// Client is the part of a discordgo session a Pagination uses. It is
// satisfied by *discordgo.Session.
type Client interface {
	// ChannelMessageSendComplex sends the first page.
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// ChannelMessageEditComplex freezes the last page once the session ends.
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// InteractionRespond renders a page in reply to a press.
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error

	// AddHandler registers a func(*discordgo.Session, *discordgo.InteractionCreate)
	// and returns a function removing it.
	AddHandler(handler interface{}) func()
}

var _ Client = (*discordgo.Session)(nil)

// interactionUser returns who caused an interaction: the member's user in
// guilds, the user in DMs.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
