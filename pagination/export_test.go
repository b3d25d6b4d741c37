package pagination

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Controls returns the active and the disabled action rows.
func (p *Pagination) Controls() (active, disabled discordgo.ActionsRow) {
	return p.controls.active, p.controls.disabled
}

// HandlePress runs an interaction through the session filter and press
// handling, as the registered handler would.
func (p *Pagination) HandlePress(i *discordgo.InteractionCreate) bool {
	return p.accepts(i.Interaction) && p.press(context.Background(), i.Interaction)
}

func ApplyOptionsWithDefaults(o ...Option) (Options, LoggerOptions) {
	opts := applyOptionsWithDefaults(o...)
	return opts.Options, opts.Logger
}

func ValidateOptions(o ...Option) error {
	return applyOptionsWithDefaults(o...).validate()
}

func NewInternalLogger(l Logger) logger {
	return logger{l: LoggerOptions{Logger: l, Level: LogDebug}}
}

var NewEventEmitter = newEventEmitter

type EventEmitter = eventEmitter
type EmitterEvent = emitterEvent
type EmitterData = emitterData

type EmitterString string

func (EmitterString) isEmitterEvent() {}
func (EmitterString) isEmitterData()  {}
