package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/discord-pagination/pagination-go/pagination"
)

func TestStateStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", pagination.StateIdle.String())
	assert.Equal(t, "active", pagination.StateActive.String())
	assert.Equal(t, "disabled", pagination.StateDisabled.String())
	assert.Equal(t, "ControlState(9)", pagination.ControlState(9).String())

	assert.Equal(t, "idle", pagination.TimeoutIdle.String())
	assert.Equal(t, "fixed", pagination.TimeoutFixed.String())
	assert.Equal(t, "TimeoutMode(0)", pagination.TimeoutMode(0).String())
}
