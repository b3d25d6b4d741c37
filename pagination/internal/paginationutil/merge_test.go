package paginationutil_test

import (
	"testing"
	"time"

	"github.com/discord-pagination/pagination-go/pagination/internal/paginationutil"
	"github.com/stretchr/testify/assert"
)

type mergeOptions struct {
	Label   string
	Style   int
	Timeout time.Duration
	Users   []string
	private int
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("copies non-zero fields", func(t *testing.T) {
		dst := mergeOptions{Label: "Next", Style: 1, Timeout: time.Second}
		paginationutil.Merge(&dst, &mergeOptions{Label: "Forward"}, false)
		assert.Equal(t, mergeOptions{Label: "Forward", Style: 1, Timeout: time.Second}, dst)
	})

	t.Run("defaults fill zero fields only", func(t *testing.T) {
		dst := mergeOptions{Label: "Forward"}
		defaults := mergeOptions{Label: "Next", Style: 2, Timeout: 3 * time.Second, Users: []string{"1"}}
		paginationutil.Merge(&dst, &defaults, true)
		assert.Equal(t, "Forward", dst.Label)
		assert.Equal(t, 2, dst.Style)
		assert.Equal(t, 3*time.Second, dst.Timeout)
		assert.Equal(t, []string{"1"}, dst.Users)
	})

	t.Run("nil source is a no-op", func(t *testing.T) {
		dst := mergeOptions{Label: "Next"}
		var src *mergeOptions
		paginationutil.Merge(&dst, src, false)
		assert.Equal(t, mergeOptions{Label: "Next"}, dst)
	})

	t.Run("unexported fields are skipped", func(t *testing.T) {
		dst := mergeOptions{}
		paginationutil.Merge(&dst, &mergeOptions{private: 7}, false)
		assert.Zero(t, dst.private)
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	users := []string{"100", "200"}
	assert.True(t, paginationutil.Contains(users, "100"))
	assert.True(t, paginationutil.Contains(users, "200"))
	assert.False(t, paginationutil.Contains(users, "300"))
	assert.False(t, paginationutil.Contains(nil, "100"))
}
