package pagination

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/discord-pagination/pagination-go/pagination/internal/paginationutil"
)

// collector is the interaction subscription of one session. It exists from
// start until the timer fires, at which point it calls end and removes its
// handler.
type collector struct {
	client  Client
	timeout time.Duration
	mode    TimeoutMode
	after   paginationutil.TimerFunc
	log     logger

	// filter decides whether an interaction belongs to the session. collect
	// handles it and reports whether it was accepted.
	filter  func(*discordgo.Interaction) bool
	collect func(context.Context, *discordgo.Interaction) bool
	end     func(context.Context)

	ctx    context.Context
	cancel context.CancelFunc
	reset  chan struct{}

	stopOnce sync.Once
	off      func()
}

func (c *collector) start() {
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.reset = make(chan struct{}, 1)
	c.off = c.client.AddHandler(c.handle)
	go c.loop()
}

func (c *collector) handle(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic == nil || ic.Interaction == nil || !c.filter(ic.Interaction) {
		return
	}
	if !c.collect(c.ctx, ic.Interaction) {
		return
	}
	if c.mode == TimeoutIdle {
		select {
		case c.reset <- struct{}{}:
		default:
		}
	}
}

func (c *collector) loop() {
	for {
		tctx, tcancel := context.WithCancel(c.ctx)
		fired := c.after(tctx, c.timeout)

		select {
		case <-c.reset:
			tcancel()
			c.log.Debugf("timeout restarted after press")
			continue
		case _, ok := <-fired:
			tcancel()
			if !ok {
				return
			}
			c.end(c.ctx)
			c.stop()
			return
		case <-c.ctx.Done():
			tcancel()
			return
		}
	}
}

func (c *collector) stop() {
	c.stopOnce.Do(func() {
		c.off()
		c.cancel()
	})
}
