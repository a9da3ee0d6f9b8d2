// Package ids wraps snowflake id generation. Snowflake ids are 63-bit
// integers whose high bits encode the creation time, so ids of later
// posts always compare greater — the property the feed tie-break relies on.
package ids

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique int64 ids from a single snowflake node.
type Generator struct {
	node *snowflake.Node
}

// NewGenerator initialises a generator for the given node id (0-1023).
func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node: %w", err)
	}
	return &Generator{node: node}, nil
}

func (g *Generator) NextID() int64 {
	return g.node.Generate().Int64()
}
