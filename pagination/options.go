package pagination

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/discord-pagination/pagination-go/pagination/internal/paginationutil"
)

const (
	// DefaultTimeout is how long a session waits for presses before its
	// controls are disabled.
	DefaultTimeout = 3 * time.Second
)

var defaultOptions = Options{
	NextLabel:   "Next",
	NextStyle:   discordgo.PrimaryButton,
	BackLabel:   "Back",
	BackStyle:   discordgo.SecondaryButton,
	Timeout:     DefaultTimeout,
	TimeoutMode: TimeoutIdle,
}

var validate = validator.New()

// Options configures the controls and the timeout of a Pagination. Zero
// fields take their default value.
//
// Labels are limited to the 80 characters Discord accepts. Styles must be one
// of the non-link button styles, since link buttons carry no custom ID.
type Options struct {
	NextLabel string                `validate:"required,max=80"`
	NextStyle discordgo.ButtonStyle `validate:"gte=1,lte=4"`
	BackLabel string                `validate:"required,max=80"`
	BackStyle discordgo.ButtonStyle `validate:"gte=1,lte=4"`

	Timeout     time.Duration `validate:"gt=0"`
	TimeoutMode TimeoutMode   `validate:"oneof=1 2"`
}

// DefaultOptions returns a copy of the options used for unset fields.
func DefaultOptions() Options {
	return defaultOptions
}

type paginationOptions struct {
	Options

	Logger      LoggerOptions
	logLevelSet bool

	After paginationutil.TimerFunc
}

// Option configures a Pagination.
type Option func(*paginationOptions)

// WithOptions overrides the fields of o that are non-zero, leaving the rest
// as they are.
func WithOptions(o Options) Option {
	return func(os *paginationOptions) {
		paginationutil.Merge(&os.Options, &o, false)
	}
}

// WithNextButton sets the label and style of the forward control. A zero
// style keeps the current one.
func WithNextButton(label string, style discordgo.ButtonStyle) Option {
	return func(os *paginationOptions) {
		os.NextLabel = label
		if style != 0 {
			os.NextStyle = style
		}
	}
}

// WithBackButton sets the label and style of the backward control. A zero
// style keeps the current one.
func WithBackButton(label string, style discordgo.ButtonStyle) Option {
	return func(os *paginationOptions) {
		os.BackLabel = label
		if style != 0 {
			os.BackStyle = style
		}
	}
}

// WithTimeout sets how long the session waits before disabling the controls.
func WithTimeout(d time.Duration) Option {
	return func(os *paginationOptions) {
		os.Timeout = d
	}
}

// WithTimeoutMode selects whether accepted presses restart the timeout.
func WithTimeoutMode(mode TimeoutMode) Option {
	return func(os *paginationOptions) {
		os.TimeoutMode = mode
	}
}

// WithLogger sets the logger; the default logs to the logrus standard logger.
func WithLogger(l Logger) Option {
	return func(os *paginationOptions) {
		os.Logger.Logger = l
	}
}

// WithLogLevel sets the most verbose level logged; the default is LogError.
func WithLogLevel(level LogLevel) Option {
	return func(os *paginationOptions) {
		os.Logger.Level = level
		os.logLevelSet = true
	}
}

// WithAfter replaces the timer used for the session timeout.
func WithAfter(after func(ctx context.Context, d time.Duration) <-chan time.Time) Option {
	return func(os *paginationOptions) {
		os.After = after
	}
}

func applyOptionsWithDefaults(opts ...Option) *paginationOptions {
	to := &paginationOptions{}
	for _, set := range opts {
		set(to)
	}
	paginationutil.Merge(&to.Options, &defaultOptions, true)
	if to.Logger.Logger == nil {
		to.Logger.Logger = NewLogrusLogger(logrus.StandardLogger())
	}
	if !to.logLevelSet {
		to.Logger.Level = LogError
	}
	if to.After == nil {
		to.After = paginationutil.After
	}
	return to
}

func (opts *paginationOptions) validate() error {
	if err := validate.Struct(opts.Options); err != nil {
		return newError(ErrInvalidArgument, err)
	}
	return nil
}
