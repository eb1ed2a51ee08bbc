package core

import (
	"context"
	"fmt"

	"github.com/joshuarubin/go-sway"
)

// NodeNinja implements some useful utils for working with the layout tree.
type NodeNinja struct {
	client sway.Client
}

// NewNodeNinja summons a new shadow of a shinobi.
func NewNodeNinja(cl sway.Client) *NodeNinja {
	return &NodeNinja{
		client: cl,
	}
}

// Snapshot fetches a fresh copy of the whole layout tree.
func (nn *NodeNinja) Snapshot(ctx context.Context) (*sway.Node, error) {
	t, err := nn.client.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("nn.client.GetTree: %w", err)
	}

	return t, nil
}

// FindParent returns the direct parent of the node with the provided id.
// nil is returned if id belongs to the root or is not in the tree at all.
// Only tiling children are searched.
func FindParent(root *sway.Node, id int64) *sway.Node {
	var find func(node, parent *sway.Node) *sway.Node
	find = func(node, parent *sway.Node) *sway.Node {
		if node.ID == id {
			return parent
		}

		for _, n := range node.Nodes {
			if p := find(n, node); p != nil {
				return p
			}
		}

		return nil
	}

	if root == nil {
		return nil
	}

	return find(root, nil)
}

// Direction represents orientation (horizontal/vertical)
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

// String returns the sway command that splits the focused container in direction d.
func (d Direction) String() string {
	if d == DirectionVertical {
		return "split vertical"
	}
	return "split horizontal"
}

// ApplySplit splits the currently focused container.
func (nn *NodeNinja) ApplySplit(ctx context.Context, dir Direction) error {
	_, err := nn.client.RunCommand(ctx, dir.String())
	if err != nil {
		return fmt.Errorf("nn.client.RunCommand: %w", err)
	}

	return nil
}
