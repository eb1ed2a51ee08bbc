package core

import (
	"testing"

	"github.com/joshuarubin/go-sway"
	"github.com/stretchr/testify/require"
)

// testTree builds the following tree:
//
//	1 (root)
//	├── 2 (output)
//	│   └── 3 (workspace)
//	│       ├── 4
//	│       └── 5
//	│           ├── 6
//	│           └── 7
//	└── 8 (output)
//	    └── 9 (workspace)
func testTree() *sway.Node {
	return &sway.Node{
		ID: 1,
		Nodes: []*sway.Node{
			{
				ID: 2,
				Nodes: []*sway.Node{
					{
						ID: 3,
						Nodes: []*sway.Node{
							{ID: 4},
							{
								ID: 5,
								Nodes: []*sway.Node{
									{ID: 6},
									{ID: 7},
								},
							},
						},
					},
				},
			},
			{
				ID: 8,
				Nodes: []*sway.Node{
					{ID: 9},
				},
			},
		},
	}
}

func TestFindParent(t *testing.T) {
	testCases := []struct {
		comment        string
		id             int64
		expectedParent int64 // 0 means no parent
	}{
		{comment: "root has no parent", id: 1, expectedParent: 0},
		{comment: "direct child of root", id: 2, expectedParent: 1},
		{comment: "workspace", id: 3, expectedParent: 2},
		{comment: "first leaf", id: 4, expectedParent: 3},
		{comment: "nested container", id: 5, expectedParent: 3},
		{comment: "deepest leaf", id: 7, expectedParent: 5},
		{comment: "second branch", id: 9, expectedParent: 8},
		{comment: "absent id", id: 42, expectedParent: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.comment, func(t *testing.T) {
			r := require.New(t)

			parent := FindParent(testTree(), tc.id)
			if tc.expectedParent == 0 {
				r.Nil(parent)
				return
			}

			r.NotNil(parent)
			r.EqualValues(tc.expectedParent, parent.ID)
		})
	}
}

func TestFindParent_ReturnsNodeFromSnapshot(t *testing.T) {
	r := require.New(t)

	tree := testTree()
	container := tree.Nodes[0].Nodes[0].Nodes[1]

	r.Same(container, FindParent(tree, 6))
}

func TestFindParent_FirstMatchWins(t *testing.T) {
	r := require.New(t)

	// ids are unique in a real snapshot, but the search order is still depth first
	tree := &sway.Node{
		ID: 1,
		Nodes: []*sway.Node{
			{ID: 2, Nodes: []*sway.Node{{ID: 10}}},
			{ID: 3, Nodes: []*sway.Node{{ID: 10}}},
		},
	}

	parent := FindParent(tree, 10)
	r.NotNil(parent)
	r.EqualValues(2, parent.ID)
}

func TestFindParent_IgnoresFloatingNodes(t *testing.T) {
	r := require.New(t)

	tree := &sway.Node{
		ID: 1,
		FloatingNodes: []*sway.Node{
			{ID: 2},
		},
	}

	r.Nil(FindParent(tree, 2))
}

func TestFindParent_NilRoot(t *testing.T) {
	require.Nil(t, FindParent(nil, 1))
}

func TestDirection_String(t *testing.T) {
	r := require.New(t)

	r.Equal("split vertical", DirectionVertical.String())
	r.Equal("split horizontal", DirectionHorizontal.String())
}
