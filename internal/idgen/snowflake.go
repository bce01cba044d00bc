package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init sets up the process-wide node. nodeID must be in [0, 1023].
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("init snowflake node %d: %w", nodeID, err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// New returns the next id. Node 0 is set up lazily when Init was never called.
func New() snowflake.ID {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		mu.Lock()
		if node == nil {
			node, _ = snowflake.NewNode(0)
		}
		n = node
		mu.Unlock()
	}
	return n.Generate()
}

// NewString is New in base-10 text.
func NewString() string {
	return New().String()
}
