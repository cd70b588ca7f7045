package config

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeIdentity names one clock-bearing node in the cluster.
type NodeIdentity struct {
	Name string
	ID   uint16
}

// ParseNodes parses a comma-separated list of node identities in the format:
// "name1=id1,name2=id2,name3=id3". Duplicate names or IDs are rejected since
// the timestamp order relies on ID uniqueness.
func ParseNodes(nodesStr string) ([]NodeIdentity, error) {
	if nodesStr == "" {
		return []NodeIdentity{}, nil
	}

	parts := strings.Split(nodesStr, ",")
	nodes := make([]NodeIdentity, 0, len(parts))
	seenNames := make(map[string]bool)
	seenIDs := make(map[uint16]bool)

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid node format: %s (expected name=id)", part)
		}

		name := strings.TrimSpace(kv[0])
		idStr := strings.TrimSpace(kv[1])
		if name == "" || idStr == "" {
			return nil, fmt.Errorf("node name and ID cannot be empty: %s", part)
		}

		id, err := strconv.ParseUint(idStr, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid node ID %q: %w", idStr, err)
		}
		if id == 0 {
			return nil, fmt.Errorf("node ID cannot be zero: %s", part)
		}

		if seenNames[name] {
			return nil, fmt.Errorf("duplicate node name: %s", name)
		}
		if seenIDs[uint16(id)] {
			return nil, fmt.Errorf("duplicate node ID: %d", id)
		}
		seenNames[name] = true
		seenIDs[uint16(id)] = true

		nodes = append(nodes, NodeIdentity{
			Name: name,
			ID:   uint16(id),
		})
	}

	return nodes, nil
}
