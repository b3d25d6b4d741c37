// Package bot answers "<prefix>pages <set>" messages with a paginated page
// set.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/discord-pagination/pagination-go/internal/config"
	"github.com/discord-pagination/pagination-go/pagination"
)

const Command = "pages"

var ErrUsage = errors.New("usage: " + Command + " <set>")

// Session is the part of *discordgo.Session the bot uses.
type Session interface {
	pagination.Client
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

var _ Session = (*discordgo.Session)(nil)

// Pages resolves a page set name to its embeds.
type Pages interface {
	Get(name string) ([]*discordgo.MessageEmbed, error)
}

type Bot struct {
	session Session
	pages   Pages
	prefix  string
	admins  []string
	opts    []pagination.Option
	log     *logrus.Logger
}

func New(session Session, pages Pages, cfg *config.Config, log *logrus.Logger) (*Bot, error) {
	opts, err := cfg.PaginationOptions(log)
	if err != nil {
		return nil, err
	}
	return &Bot{
		session: session,
		pages:   pages,
		prefix:  cfg.Prefix,
		admins:  cfg.Admins,
		opts:    opts,
		log:     log,
	}, nil
}

// Register subscribes the bot to new messages on its session.
func (b *Bot) Register() (remove func()) {
	return b.session.AddHandler(b.onMessageCreate)
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil {
		return
	}
	if _, err := b.Handle(context.Background(), m.Message); err != nil {
		b.log.WithFields(logrus.Fields{
			"channel": m.ChannelID,
			"message": m.ID,
		}).WithError(err).Warn("pages command failed")
	}
}

// ParseCommand returns the page set named by content, and whether content is
// a pages command at all.
func ParseCommand(prefix, content string) (set string, ok bool, err error) {
	if !strings.HasPrefix(content, prefix) {
		return "", false, nil
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 || !strings.EqualFold(fields[0], Command) {
		return "", false, nil
	}
	if len(fields) != 2 {
		return "", true, ErrUsage
	}
	return fields[1], true, nil
}

// Handle starts a pagination session for m when it is a pages command. It
// returns a nil Pagination for any other message.
func (b *Bot) Handle(ctx context.Context, m *discordgo.Message) (*pagination.Pagination, error) {
	if m.Author == nil || m.Author.Bot {
		return nil, nil
	}
	set, ok, err := ParseCommand(b.prefix, m.Content)
	if !ok || err != nil {
		return nil, err
	}

	pages, err := b.pages.Get(set)
	if err != nil {
		return nil, err
	}
	channel, err := b.session.Channel(m.ChannelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("looking up channel %s: %w", m.ChannelID, err)
	}

	p, err := pagination.New(b.session, b.opts...)
	if err != nil {
		return nil, err
	}
	if _, err := p.SetPages(pages); err != nil {
		return nil, err
	}
	if _, err := p.SetChannel(channel); err != nil {
		return nil, err
	}
	if _, err := p.SetAuthorizedUsers(b.authorized(m.Author.ID)); err != nil {
		return nil, err
	}

	log := b.log.WithFields(logrus.Fields{"session": p.ID(), "set": set})
	p.On(pagination.SessionEventEnded, func(e pagination.SessionEventData) {
		log.WithField("page", e.Current).Debug("session ended")
	})
	p.On(pagination.SessionEventRenderFailed, func(e pagination.SessionEventData) {
		log.WithError(e.Reason).Warn("render failed")
	})

	msg, err := p.Send(ctx)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"user":    m.Author.ID,
		"message": msg.ID,
		"pages":   len(pages),
	}).Info("session started")
	return p, nil
}

// authorized returns the author followed by the admins, without duplicates.
func (b *Bot) authorized(author string) []string {
	users := []string{author}
	for _, id := range b.admins {
		if id != author {
			users = append(users, id)
		}
	}
	return users
}
