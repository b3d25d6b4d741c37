// Package paginationtest provides fakes and helpers for testing code built on
// package pagination.
package paginationtest

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/discord-pagination/pagination-go/pagination"
)

var Timeout = 5 * time.Second
var DefaultLogLevel = pagination.LogNone

func init() {
	if s := os.Getenv("PAGINATION_TEST_TIMEOUT"); s != "" {
		if t, err := time.ParseDuration(s); err == nil {
			Timeout = t
		}
	}
	if n, err := strconv.Atoi(os.Getenv("PAGINATION_TEST_LOGLEVEL")); err == nil {
		DefaultLogLevel = pagination.LogLevel(n)
	}
}

// Embeds returns n embeds titled "Page 0" to "Page n-1".
func Embeds(n int) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, n)
	for i := range embeds {
		embeds[i] = &discordgo.MessageEmbed{
			Title:       "Page " + strconv.Itoa(i),
			Description: "content of page " + strconv.Itoa(i),
		}
	}
	return embeds
}

// TextChannel returns a guild text channel with the given ID.
func TextChannel(id string) *discordgo.Channel {
	return &discordgo.Channel{ID: id, GuildID: "500", Type: discordgo.ChannelTypeGuildText}
}

// DMChannel returns a DM channel with the given ID.
func DMChannel(id string) *discordgo.Channel {
	return &discordgo.Channel{ID: id, Type: discordgo.ChannelTypeDM}
}

// Press builds the interaction Discord delivers when the guild member userID
// presses the button customID on msg.
func Press(msg *discordgo.Message, customID, userID string) *discordgo.InteractionCreate {
	i := DMPress(msg, customID, userID)
	i.User = nil
	i.GuildID = "500"
	i.Member = &discordgo.Member{User: &discordgo.User{ID: userID, Username: "user" + userID}}
	return i
}

// DMPress is like Press for a button in a DM channel.
func DMPress(msg *discordgo.Message, customID, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "interaction-" + customID + "-" + userID,
		Type:      discordgo.InteractionMessageComponent,
		ChannelID: msg.ChannelID,
		Message:   msg,
		User:      &discordgo.User{ID: userID, Username: "user" + userID},
		Data: discordgo.MessageComponentInteractionData{
			CustomID:      customID,
			ComponentType: discordgo.ButtonComponent,
		},
	}}
}

// AfterCall is a pending timer created by the function After returns.
type AfterCall struct {
	Ctx      context.Context
	D        time.Duration
	Deadline time.Time
	fire     chan<- time.Time
}

// Fire makes the timer expire now, as if D had elapsed.
func (c AfterCall) Fire() {
	c.fire <- c.Deadline
}

// After returns a timer function for pagination.WithAfter. Instead of
// waiting, each timer is sent to afterCalls and fires only when the receiver
// calls Fire. A timer cancelled before it was received is dropped, so
// afterCalls only ever carries pending timers.
func After(afterCalls chan<- AfterCall) func(context.Context, time.Duration) <-chan time.Time {
	return func(ctx context.Context, d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		fire := make(chan time.Time, 1)
		call := AfterCall{Ctx: ctx, D: d, Deadline: time.Now().Add(d), fire: fire}

		go func() {
			select {
			case afterCalls <- call:
			case <-ctx.Done():
				close(ch)
				return
			}

			select {
			case <-ctx.Done():
				close(ch)
			case t := <-fire:
				ch <- t
			}
		}()

		return ch
	}
}
