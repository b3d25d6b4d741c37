package pagination

import (
	"context"
	"errors"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/discord-pagination/pagination-go/pagination/internal/paginationutil"
)

// Pagination shows one page of a list of embeds at a time, with a Next and a
// Back button to move between them.
//
// Set the pages, the destination channel and the users allowed to press the
// buttons, then call Send. Presses wrap around at both ends. Once no press
// has been accepted for the configured timeout (or the timeout elapsed since
// Send, see TimeoutMode) the buttons are disabled and the last page stays.
type Pagination struct {
	SessionEventEmitter

	client   Client
	opts     *paginationOptions
	controls controls
	log      logger
	id       string

	mtx       sync.Mutex
	pages     []*discordgo.MessageEmbed
	channel   *discordgo.Channel
	users     []string
	page      int
	state     ControlState
	message   *discordgo.Message
	collector *collector
}

// New builds a Pagination sending through client, usually a
// *discordgo.Session.
func New(client Client, options ...Option) (*Pagination, error) {
	if client == nil {
		return nil, newErrorf(ErrInvalidArgument, "client is nil")
	}
	opts := applyOptionsWithDefaults(options...)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := logger{l: opts.Logger, prefix: "pagination[" + id + "]: "}
	p := &Pagination{
		client:   client,
		opts:     opts,
		controls: newControls(opts.Options),
		log:      log,
		id:       id,
		state:    StateIdle,
	}
	p.SessionEventEmitter = SessionEventEmitter{emitter: newEventEmitter(log)}
	return p, nil
}

// ID identifies the session in logs.
func (p *Pagination) ID() string {
	return p.id
}

// Options returns the options in effect, defaults included.
func (p *Pagination) Options() Options {
	return p.opts.Options
}

// Page returns the index of the page currently shown.
func (p *Pagination) Page() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.page
}

// State returns where the session is in its lifecycle.
func (p *Pagination) State() ControlState {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.state
}

// Message returns the message Send produced, or nil before that.
func (p *Pagination) Message() *discordgo.Message {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.message
}

// SetPages sets the embeds to paginate, in display order. The slice is kept,
// not copied. Nil embeds are rejected.
func (p *Pagination) SetPages(pages []*discordgo.MessageEmbed) (bool, error) {
	if err := validate.Var(pages, "dive,required"); err != nil {
		return false, newError(ErrInvalidArgument, err)
	}
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.state != StateIdle {
		return false, newError(ErrPreconditionFailed, ErrSessionStarted)
	}
	p.pages = pages
	return true, nil
}

// SetChannel sets where Send posts the first page. Only guild text channels
// and DM channels are accepted.
func (p *Pagination) SetChannel(channel *discordgo.Channel) (bool, error) {
	if channel == nil {
		return false, newErrorf(ErrInvalidArgument, "channel is nil")
	}
	if channel.Type != discordgo.ChannelTypeGuildText && channel.Type != discordgo.ChannelTypeDM {
		return false, newErrorf(ErrInvalidArgument, "channel %s has type %d; want a text or DM channel", channel.ID, channel.Type)
	}
	if err := validate.Var(channel.ID, "required,number"); err != nil {
		return false, newError(ErrInvalidArgument, err)
	}
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.state != StateIdle {
		return false, newError(ErrPreconditionFailed, ErrSessionStarted)
	}
	p.channel = channel
	return true, nil
}

// SetAuthorizedUsers sets the IDs of the users allowed to press the buttons.
func (p *Pagination) SetAuthorizedUsers(users []string) (bool, error) {
	if err := validate.Var(users, "dive,required,number,max=20"); err != nil {
		return false, newError(ErrInvalidArgument, err)
	}
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.state != StateIdle {
		return false, newError(ErrPreconditionFailed, ErrSessionStarted)
	}
	p.users = users
	return true, nil
}

// Send posts the current page with the buttons and starts handling presses
// on the resulting message.
//
// It fails with ErrPreconditionFailed, wrapping ErrNoDestination, ErrNoPages,
// ErrNoAuthorizedUsers or ErrSessionStarted, when the session is not ready,
// and with ErrRenderFailure when the message could not be sent. A failed
// send can be retried.
func (p *Pagination) Send(ctx context.Context) (*discordgo.Message, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	switch {
	case p.channel == nil:
		return nil, newError(ErrPreconditionFailed, ErrNoDestination)
	case len(p.pages) == 0:
		return nil, newError(ErrPreconditionFailed, ErrNoPages)
	case len(p.users) == 0:
		return nil, newError(ErrPreconditionFailed, ErrNoAuthorizedUsers)
	case p.state != StateIdle:
		return nil, newError(ErrPreconditionFailed, ErrSessionStarted)
	}

	msg, err := p.client.ChannelMessageSendComplex(p.channel.ID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{p.pages[p.page]},
		Components: p.controls.components(StateActive),
	}, discordgo.WithContext(ctx))
	if err == nil && msg == nil {
		err = errors.New("no message returned")
	}
	if err != nil {
		reason := newError(ErrRenderFailure, err)
		p.log.Errorf("sending page %d to channel %s failed: %v", p.page, p.channel.ID, err)
		p.emit(SessionEventRenderFailed, SessionEventData{Reason: reason})
		return nil, reason
	}

	p.message = msg
	p.state = StateActive
	p.collector = &collector{
		client:  p.client,
		timeout: p.opts.Timeout,
		mode:    p.opts.TimeoutMode,
		after:   p.opts.After,
		log:     p.log,
		filter:  p.accepts,
		collect: p.press,
		end:     p.end,
	}
	p.collector.start()
	p.log.Infof("sent message %s to channel %s with %d pages", msg.ID, p.channel.ID, len(p.pages))
	p.emit(SessionEventStarted, SessionEventData{})
	return msg, nil
}

// accepts reports whether i is a press of one of the session's controls by an
// authorized user.
func (p *Pagination) accepts(i *discordgo.Interaction) bool {
	if i.Type != discordgo.InteractionMessageComponent || i.Message == nil {
		return false
	}
	user := interactionUser(i)
	if user == nil {
		return false
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.message == nil || i.Message.ID != p.message.ID {
		return false
	}
	return paginationutil.Contains(controlIDs, i.MessageComponentData().CustomID) &&
		paginationutil.Contains(p.users, user.ID)
}

// press moves to the next or previous page and renders it in reply to i.
// The index and the render are updated together so the page shown always
// matches the index it was rendered for.
func (p *Pagination) press(ctx context.Context, i *discordgo.Interaction) bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.state != StateActive {
		return false
	}

	control := i.MessageComponentData().CustomID
	n := len(p.pages)
	previous := p.page
	switch control {
	case NextButtonID:
		p.page = (p.page + 1) % n
	case BackButtonID:
		p.page = (p.page - 1 + n) % n
	default:
		return false
	}

	actor := interactionUser(i).ID
	p.log.Verbosef("%s pressed by %s: page %d -> %d", control, actor, previous, p.page)

	err := p.client.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{p.pages[p.page]},
			Components: p.controls.components(StateActive),
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		p.log.Warnf("rendering page %d failed: %v", p.page, err)
		p.emit(SessionEventRenderFailed, SessionEventData{
			Actor:   actor,
			Control: control,
			Reason:  newError(ErrRenderFailure, err),
		})
	}

	p.emit(SessionEventPageChanged, SessionEventData{
		Previous: previous,
		Actor:    actor,
		Control:  control,
	})
	return true
}

// end disables the controls and freezes the current page.
func (p *Pagination) end(ctx context.Context) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.state != StateActive {
		return
	}
	p.state = StateDisabled

	embeds := []*discordgo.MessageEmbed{p.pages[p.page]}
	components := p.controls.components(StateDisabled)
	edit := discordgo.NewMessageEdit(p.message.ChannelID, p.message.ID)
	edit.Embeds = &embeds
	edit.Components = &components

	if _, err := p.client.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		p.log.Warnf("disabling controls of message %s failed: %v", p.message.ID, err)
		p.emit(SessionEventRenderFailed, SessionEventData{Reason: newError(ErrRenderFailure, err)})
	}
	p.log.Infof("session ended on page %d", p.page)
	p.emit(SessionEventEnded, SessionEventData{})
}

// emit fills in the state and current page and emits. Callers hold p.mtx.
func (p *Pagination) emit(event SessionEvent, data SessionEventData) {
	data.Event = event
	data.State = p.state
	data.Current = p.page
	if event != SessionEventPageChanged {
		data.Previous = p.page
	}
	p.SessionEventEmitter.emitter.Emit(event, data)
}
