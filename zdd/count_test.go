package zdd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/zdd"
)

func TestCount_Terminals(t *testing.T) {
	p := &zdd.PseudoZDD{Root: zdd.Bot, Nodes: map[zdd.NodeID]*zdd.ZDDNode{}, M: 0}
	require.Equal(t, "0", zdd.Count(p).String())

	p2 := &zdd.PseudoZDD{Root: zdd.Top, Nodes: map[zdd.NodeID]*zdd.ZDDNode{}, M: 0}
	require.Equal(t, "1", zdd.Count(p2).String())
}

func TestCount_DiamondSharesSubcount(t *testing.T) {
	// root -> mid on both branches, mid -> {Bot, Top}; a plain diamond where
	// both lo/hi children of root reach the same shared node, whose count is
	// added once for each branch that reaches it.
	const (
		root zdd.NodeID = 2
		mid  zdd.NodeID = 3
	)
	p := &zdd.PseudoZDD{
		Root: root,
		Nodes: map[zdd.NodeID]*zdd.ZDDNode{
			root: {ID: root, Level: 0, Lo: mid, Hi: mid},
			mid:  {ID: mid, Level: 1, Lo: zdd.Bot, Hi: zdd.Top},
		},
		M: 2,
	}
	// Each branch of root reaches mid, which itself has exactly one path to
	// Top, so the total solution count is 2 (root->lo->mid->hi->Top and
	// root->hi->mid->hi->Top), not 1.
	require.Equal(t, "2", zdd.Count(p).String())
}

func TestConstruct_NilInputs(t *testing.T) {
	_, err := zdd.Construct(nil, nil)
	require.ErrorIs(t, err, zdd.ErrNilGraph)
}

func TestConstruct_ContextCancelled(t *testing.T) {
	g := triangleGraph(t)
	pred, err := zdd.NewSTPathPredicate(g, 1, 3, zdd.STPathOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = zdd.Construct(g, pred, zdd.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
