package config

import (
	"hash/fnv"

	"github.com/google/uuid"
)

var defaultShards = ShardConfig{
	Count:    1,
	BaseNode: 1,
}

// Default returns a configuration with a freshly derived node identity.
func Default() *Config {
	cfg := &Config{Shards: defaultShards}
	cfg.Node.PopulateDefaults()
	cfg.Shards.BaseNode = cfg.Node.ID
	return cfg
}

// PopulateDefaults fills unset fields across all sections.
func (c *Config) PopulateDefaults() {
	c.Node.PopulateDefaults()
	c.Shards.PopulateDefaults(c.Node.ID)
}

// PopulateDefaults derives a node identity when none is configured: a random
// UUID name folded into a non-zero 16-bit ID.
func (c *NodeConfig) PopulateDefaults() {
	if c.Name == "" {
		c.Name = uuid.New().String()
	}
	if c.ID == 0 {
		c.ID = deriveID(c.Name)
	}
}

// PopulateDefaults anchors a single-shard pool at the node's own ID when the
// shard section is absent.
func (c *ShardConfig) PopulateDefaults(nodeID uint16) {
	if c.Count == 0 {
		c.Count = defaultShards.Count
	}
	if c.BaseNode == 0 {
		c.BaseNode = nodeID
	}
}

// deriveID folds a name into a non-zero 16-bit node ID. Collisions across a
// cluster are possible; operators needing guarantees assign IDs explicitly.
func deriveID(name string) uint16 {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	id := uint16(sum>>16) ^ uint16(sum)
	if id == 0 {
		id = 1
	}
	return id
}
