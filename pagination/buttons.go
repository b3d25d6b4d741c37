package pagination

import "github.com/bwmarrin/discordgo"

// Custom IDs of the two controls. They round-trip unchanged through
// discordgo.MessageComponentInteractionData.CustomID.
const (
	NextButtonID = "nextBtn"
	BackButtonID = "backBtn"
)

var controlIDs = []string{NextButtonID, BackButtonID}

// controls holds the action row shown while a session is active and the one
// shown after it ended. The rows are built separately and share no buttons.
type controls struct {
	active   discordgo.ActionsRow
	disabled discordgo.ActionsRow
}

func newControls(o Options) controls {
	return controls{
		active:   newActionsRow(o, false),
		disabled: newActionsRow(o, true),
	}
}

func newActionsRow(o Options, disabled bool) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    o.NextLabel,
				Style:    o.NextStyle,
				CustomID: NextButtonID,
				Disabled: disabled,
			},
			discordgo.Button{
				Label:    o.BackLabel,
				Style:    o.BackStyle,
				CustomID: BackButtonID,
				Disabled: disabled,
			},
		},
	}
}

func (c controls) components(state ControlState) []discordgo.MessageComponent {
	if state == StateDisabled {
		return []discordgo.MessageComponent{c.disabled}
	}
	return []discordgo.MessageComponent{c.active}
}
