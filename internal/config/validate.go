package config

import "fmt"

// Validate checks cross-field constraints after defaults are applied.
func (c *Config) Validate() error {
	if c.Node.Name == "" {
		return fmt.Errorf("node name cannot be empty")
	}
	if c.Node.ID == 0 {
		return fmt.Errorf("node ID cannot be zero")
	}
	if c.Shards.Count < 1 {
		return fmt.Errorf("shard count must be at least 1, got %d", c.Shards.Count)
	}
	if c.Shards.BaseNode == 0 {
		return fmt.Errorf("shard base node ID cannot be zero")
	}
	if int(c.Shards.BaseNode)+c.Shards.Count-1 > 0xFFFF {
		return fmt.Errorf("shard node ID range [%d, %d) exceeds 16 bits",
			c.Shards.BaseNode, int(c.Shards.BaseNode)+c.Shards.Count)
	}
	return nil
}
