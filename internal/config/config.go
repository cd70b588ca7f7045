package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the node configuration.
type Config struct {
	Node   NodeConfig  `yaml:"node"`
	Shards ShardConfig `yaml:"shards"`
}

// NodeConfig identifies this node in the cluster. The numeric ID is the
// tie-break field stamped into every timestamp; uniqueness across the
// cluster is the operator's responsibility. ID 0 is treated as unset.
type NodeConfig struct {
	Name string `yaml:"name"`
	ID   uint16 `yaml:"id"`
}

// ShardConfig sizes the per-goroutine clock pool. Shard clocks occupy node
// IDs [BaseNode, BaseNode+Count), so the range must stay clear of other
// nodes' IDs and inside 16 bits.
type ShardConfig struct {
	Count    int    `yaml:"count"`
	BaseNode uint16 `yaml:"base_node"`
}

// Read loads a configuration file, fills in defaults, and validates it.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.PopulateDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}
