package pagination_test

import (
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discord-pagination/pagination-go/pagination"
	"github.com/discord-pagination/pagination-go/pagination/paginationtest"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts, logOpts := pagination.ApplyOptionsWithDefaults()
	assert.Equal(t, pagination.Options{
		NextLabel:   "Next",
		NextStyle:   discordgo.PrimaryButton,
		BackLabel:   "Back",
		BackStyle:   discordgo.SecondaryButton,
		Timeout:     3 * time.Second,
		TimeoutMode: pagination.TimeoutIdle,
	}, opts)
	assert.Equal(t, pagination.DefaultOptions(), opts)
	assert.NotNil(t, logOpts.Logger)
	assert.Equal(t, pagination.LogError, logOpts.Level)
}

func TestOptionsMerge(t *testing.T) {
	t.Parallel()

	t.Run("unset fields fall back to defaults", func(t *testing.T) {
		opts, _ := pagination.ApplyOptionsWithDefaults(pagination.WithOptions(pagination.Options{
			NextLabel: "Forward",
		}))
		assert.Equal(t, "Forward", opts.NextLabel)
		assert.Equal(t, "Back", opts.BackLabel)
		assert.Equal(t, discordgo.PrimaryButton, opts.NextStyle)
		assert.Equal(t, pagination.DefaultTimeout, opts.Timeout)
	})

	t.Run("later options override earlier ones field by field", func(t *testing.T) {
		opts, _ := pagination.ApplyOptionsWithDefaults(
			pagination.WithOptions(pagination.Options{BackLabel: "Previous", Timeout: time.Minute}),
			pagination.WithOptions(pagination.Options{Timeout: time.Hour}),
		)
		assert.Equal(t, "Previous", opts.BackLabel)
		assert.Equal(t, time.Hour, opts.Timeout)
	})

	t.Run("button options keep style when zero", func(t *testing.T) {
		opts, _ := pagination.ApplyOptionsWithDefaults(
			pagination.WithNextButton("▶", 0),
			pagination.WithBackButton("◀", discordgo.DangerButton),
		)
		assert.Equal(t, "▶", opts.NextLabel)
		assert.Equal(t, discordgo.PrimaryButton, opts.NextStyle)
		assert.Equal(t, "◀", opts.BackLabel)
		assert.Equal(t, discordgo.DangerButton, opts.BackStyle)
	})

	t.Run("timeout mode", func(t *testing.T) {
		opts, _ := pagination.ApplyOptionsWithDefaults(pagination.WithTimeoutMode(pagination.TimeoutFixed))
		assert.Equal(t, pagination.TimeoutFixed, opts.TimeoutMode)
	})

	t.Run("log level none is kept", func(t *testing.T) {
		_, logOpts := pagination.ApplyOptionsWithDefaults(
			pagination.WithLogger(paginationtest.DiscardLogger),
			pagination.WithLogLevel(pagination.LogNone),
		)
		assert.Equal(t, pagination.LogNone, logOpts.Level)
		assert.Equal(t, paginationtest.DiscardLogger, logOpts.Logger)
	})
}

func TestOptionsValidation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		opt  pagination.Option
	}{
		{"label too long", pagination.WithNextButton(strings.Repeat("x", 81), 0)},
		{"link style", pagination.WithBackButton("Back", discordgo.LinkButton)},
		{"unknown style", pagination.WithNextButton("Next", discordgo.ButtonStyle(9))},
		{"negative timeout", pagination.WithTimeout(-time.Second)},
		{"unknown timeout mode", pagination.WithTimeoutMode(pagination.TimeoutMode(7))},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := pagination.ValidateOptions(tc.opt)
			require.Error(t, err)
			assert.Equal(t, pagination.ErrInvalidArgument, pagination.Code(err))

			_, err = pagination.New(paginationtest.NewClient(), tc.opt)
			assert.Equal(t, pagination.ErrInvalidArgument, pagination.Code(err))
		})
	}

	t.Run("label of 80 characters", func(t *testing.T) {
		assert.NoError(t, pagination.ValidateOptions(pagination.WithNextButton(strings.Repeat("x", 80), 0)))
	})
}
