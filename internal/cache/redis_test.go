package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_EmptyURLBypasses(t *testing.T) {
	c := New("")

	assert.False(t, c.Enabled())
}

func TestNew_InvalidURLBypasses(t *testing.T) {
	c := New("not-a-redis-url")

	assert.False(t, c.Enabled())
}

func TestDisabledCache_OperationsNoOp(t *testing.T) {
	c := New("")
	ctx := context.Background()

	var out []string
	assert.False(t, c.GetJSON(ctx, "jobs", &out))

	// None of these should panic or block.
	c.SetJSON(ctx, "jobs", []string{"a"})
	c.Invalidate(ctx, "jobs")
	assert.NoError(t, c.Close())
}

func TestNilCache_Safe(t *testing.T) {
	var c *Cache

	assert.False(t, c.Enabled())
	assert.False(t, c.GetJSON(context.Background(), "k", nil))
}
