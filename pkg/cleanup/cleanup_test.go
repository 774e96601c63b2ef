package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/vitals/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	var order []string
	cleanup.Register(&cleanup.Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "broken", F: func() error {
		order = append(order, "broken")
		return errors.New("close failed")
	}})
	cleanup.Register(&cleanup.Job{Name: "server", F: func() error {
		order = append(order, "server")
		return nil
	}})

	cleanup.CleanUp()
	assert.Equal(t, []string{"server", "broken", "pool"}, order)

	// jobs run once
	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
