// Package pagination adds Next/Back button pagination to a list of Discord
// embeds sent through discordgo.
//
//	p, err := pagination.New(session, pagination.WithTimeout(time.Minute))
//	if err != nil {
//		return err
//	}
//	p.SetPages(embeds)
//	p.SetChannel(channel)
//	p.SetAuthorizedUsers([]string{authorID})
//	msg, err := p.Send(ctx)
//
// Sessions
//
// Send posts the first page and starts a session scoped to the sent message.
// Presses of the Next and Back buttons by authorized users move the page
// forward or backward, wrapping around at both ends, and re-render the
// message. Presses by anyone else, or on any other message, are ignored.
//
// A session ends when its timeout elapses. With TimeoutIdle, the default,
// the timeout restarts after every accepted press; with TimeoutFixed it is
// measured once from Send. When it ends the buttons are replaced by disabled
// copies and the last page stays on screen. There is no other way to end a
// session, and an ended session cannot be restarted.
//
// Errors
//
// Invalid options and setter arguments fail with ErrInvalidArgument. Send
// fails with ErrPreconditionFailed when the channel, pages or authorized
// users are missing; match the reason with errors.Is against
// ErrNoDestination, ErrNoPages and ErrNoAuthorizedUsers. Use Code to read the
// code of any error returned by this package.
//
// Renders caused by presses or by the timeout happen off the caller's
// goroutine. Their failures are logged and emitted as
// SessionEventRenderFailed; they do not undo the page change.
//
// Event Emitters
//
// A Pagination emits SessionEvents. The On method registers a handler for
// one event kind and returns a function that removes it. OnAll registers a
// handler for every kind. Once and OnceAll are like On and OnAll, but the
// handler is called at most once. Off and OffAll remove handlers.
//
// Each handler has its own sequential queue: it is never called concurrently
// with itself and receives events in the order they happened. Different
// handlers may be called concurrently.
package pagination
