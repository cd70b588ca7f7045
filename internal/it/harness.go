package it

import (
	"fmt"

	"hlcstore/internal/config"
	"hlcstore/internal/hlc"
	"hlcstore/internal/repair"
	"hlcstore/internal/storage"
)

// Cluster is an in-process test cluster: every node owns a clock and a
// store, and writes travel between nodes only through explicit Deliver and
// Broadcast calls, so tests control the causal topology completely.
type Cluster struct {
	nodes map[string]*Node
	order []string
}

// Node is a single simulated node with a manually driven physical clock.
type Node struct {
	Identity config.NodeIdentity
	Source   *hlc.ManualSource
	Store    *storage.InMemoryStore
}

// NewCluster builds a cluster from a node spec like "a=1,b=2,c=3". Every
// node starts with its physical source at zero; use SetTime to skew them.
func NewCluster(spec string) (*Cluster, error) {
	identities, err := config.ParseNodes(spec)
	if err != nil {
		return nil, fmt.Errorf("cluster spec: %w", err)
	}
	if len(identities) == 0 {
		return nil, fmt.Errorf("cluster spec %q names no nodes", spec)
	}

	c := &Cluster{nodes: make(map[string]*Node)}
	for _, identity := range identities {
		source := hlc.NewManualSource(0)
		c.nodes[identity.Name] = &Node{
			Identity: identity,
			Source:   source,
			Store:    storage.NewInMemoryStore(hlc.New(identity.ID, source)),
		}
		c.order = append(c.order, identity.Name)
	}
	return c, nil
}

// Node returns the named node, or nil.
func (c *Cluster) Node(name string) *Node {
	return c.nodes[name]
}

// SetTime pins a node's physical source.
func (c *Cluster) SetTime(name string, ms int64) error {
	node, err := c.node(name)
	if err != nil {
		return err
	}
	node.Source.Set(ms)
	return nil
}

// Put writes a value at the named node and returns its stamp.
func (c *Cluster) Put(name, key string, value []byte) (hlc.Timestamp, error) {
	node, err := c.node(name)
	if err != nil {
		return hlc.Timestamp{}, err
	}
	return node.Store.Put(key, value), nil
}

// Delete writes a tombstone at the named node and returns its stamp.
func (c *Cluster) Delete(name, key string) (hlc.Timestamp, error) {
	node, err := c.node(name)
	if err != nil {
		return hlc.Timestamp{}, err
	}
	return node.Store.Delete(key), nil
}

// Deliver pushes from's current version of key into to, as if a replication
// message arrived.
func (c *Cluster) Deliver(from, to, key string) error {
	src, err := c.node(from)
	if err != nil {
		return err
	}
	dst, err := c.node(to)
	if err != nil {
		return err
	}

	vv := src.Store.Get(key)
	if vv == nil {
		return fmt.Errorf("deliver %q: no version at node %s", key, from)
	}
	if err := dst.Store.Apply(key, vv.Value, vv.Stamp, vv.Deleted); err != nil {
		return fmt.Errorf("deliver %q to node %s: %w", key, to, err)
	}
	return nil
}

// Broadcast delivers from's current version of key to every other node.
func (c *Cluster) Broadcast(from, key string) error {
	for _, name := range c.order {
		if name == from {
			continue
		}
		if err := c.Deliver(from, name, key); err != nil {
			return err
		}
	}
	return nil
}

// Read collects key from every node holding a version and reconciles.
func (c *Cluster) Read(key string) (repair.ReconcileResult, error) {
	var values []repair.VersionedValue
	var replicaIDs []string

	for _, name := range c.order {
		vv := c.nodes[name].Store.Get(key)
		if vv == nil {
			continue
		}
		values = append(values, repair.VersionedValue{
			Value:   vv.Value,
			Stamp:   vv.Stamp,
			Deleted: vv.Deleted,
		})
		replicaIDs = append(replicaIDs, name)
	}
	return repair.Reconcile(values, replicaIDs)
}

// RepairAll reconciles key across the cluster and pushes the winner into
// every stale node, returning how many were repaired.
func (c *Cluster) RepairAll(key string) (int, error) {
	result, err := c.Read(key)
	if err != nil {
		return 0, err
	}

	repairer := repair.NewRepairer()
	for _, name := range c.order {
		repairer.Register(name, c.nodes[name].Store)
	}
	return repairer.Repair(key, result)
}

func (c *Cluster) node(name string) (*Node, error) {
	node, exists := c.nodes[name]
	if !exists {
		return nil, fmt.Errorf("unknown node %q", name)
	}
	return node, nil
}
