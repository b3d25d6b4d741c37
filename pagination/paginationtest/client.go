package paginationtest

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/discord-pagination/pagination-go/pagination"
)

// Sent is a recorded ChannelMessageSendComplex call.
type Sent struct {
	ChannelID string
	Data      *discordgo.MessageSend
}

// Responded is a recorded InteractionRespond call.
type Responded struct {
	Interaction *discordgo.Interaction
	Response    *discordgo.InteractionResponse
}

type interactionHandler = func(*discordgo.Session, *discordgo.InteractionCreate)

// Client is a pagination.Client that records every request instead of
// talking to Discord. Interactions are delivered with Dispatch.
type Client struct {
	mtx        sync.Mutex
	sent       []Sent
	responded  []Responded
	edited     []*discordgo.MessageEdit
	handlers   map[int]interactionHandler
	nextHandle int

	sendErr    error
	respondErr error
	editErr    error

	// Edits receives every recorded edit, for tests waiting on the timeout
	// render that happens off the test goroutine.
	Edits chan *discordgo.MessageEdit
}

var _ pagination.Client = (*Client)(nil)

func NewClient() *Client {
	return &Client{
		handlers: map[int]interactionHandler{},
		Edits:    make(chan *discordgo.MessageEdit, 16),
	}
}

// FailSends makes subsequent sends fail with err; nil restores success.
func (c *Client) FailSends(err error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.sendErr = err
}

// FailResponds makes subsequent interaction responses fail with err.
func (c *Client) FailResponds(err error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.respondErr = err
}

// FailEdits makes subsequent message edits fail with err.
func (c *Client) FailEdits(err error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.editErr = err
}

func (c *Client) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.sent = append(c.sent, Sent{ChannelID: channelID, Data: data})
	if c.sendErr != nil {
		return nil, c.sendErr
	}
	return &discordgo.Message{
		ID:         strconv.Itoa(9000 + len(c.sent)),
		ChannelID:  channelID,
		Embeds:     data.Embeds,
		Components: data.Components,
	}, nil
}

func (c *Client) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	c.mtx.Lock()
	c.edited = append(c.edited, m)
	err := c.editErr
	c.mtx.Unlock()

	c.Edits <- m
	if err != nil {
		return nil, err
	}
	msg := &discordgo.Message{ID: m.ID, ChannelID: m.Channel}
	if m.Embeds != nil {
		msg.Embeds = *m.Embeds
	}
	if m.Components != nil {
		msg.Components = *m.Components
	}
	return msg, nil
}

func (c *Client) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.responded = append(c.responded, Responded{Interaction: interaction, Response: resp})
	return c.respondErr
}

// AddHandler registers interaction handlers; handlers of any other type are
// accepted and never called.
func (c *Client) AddHandler(handler interface{}) func() {
	h, ok := handler.(interactionHandler)
	if !ok {
		return func() {}
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	handle := c.nextHandle
	c.nextHandle++
	c.handlers[handle] = h

	return func() {
		c.mtx.Lock()
		defer c.mtx.Unlock()
		delete(c.handlers, handle)
	}
}

// Dispatch calls every registered interaction handler with i, on the calling
// goroutine.
func (c *Client) Dispatch(i *discordgo.InteractionCreate) {
	c.mtx.Lock()
	handlers := make([]interactionHandler, 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mtx.Unlock()

	for _, h := range handlers {
		h(nil, i)
	}
}

// Handlers returns how many interaction handlers are registered.
func (c *Client) Handlers() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.handlers)
}

func (c *Client) Sent() []Sent {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]Sent(nil), c.sent...)
}

func (c *Client) Responded() []Responded {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]Responded(nil), c.responded...)
}

func (c *Client) Edited() []*discordgo.MessageEdit {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]*discordgo.MessageEdit(nil), c.edited...)
}

// Renders counts every request that put a page on screen.
func (c *Client) Renders() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.sent) + len(c.responded) + len(c.edited)
}

// LastResponse returns the most recent interaction response, or nil.
func (c *Client) LastResponse() *discordgo.InteractionResponse {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if len(c.responded) == 0 {
		return nil
	}
	return c.responded[len(c.responded)-1].Response
}
