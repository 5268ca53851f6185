package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleGraph_WellFormed(t *testing.T) {
	elements := []GraphElement{
		{ID: "A", Label: "NDA.pdf"},
		{ID: "B", Label: "NDA.pdf"},
		{ID: "C", Label: "Lease.pdf"},
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
	}

	model, err := AssembleGraph(elements)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, model.NodeIDs())
	assert.Equal(t, "NDA.pdf", model.Nodes["A"].Label)
	assert.Equal(t, []GraphEdge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
	}, model.Edges)
}

func TestAssembleGraph_DanglingTarget(t *testing.T) {
	elements := []GraphElement{
		{ID: "A", Label: "NDA.pdf"},
		{Source: "A", Target: "B"},
	}

	model, err := AssembleGraph(elements)
	require.Error(t, err)
	assert.Nil(t, model)

	var malformed *MalformedGraphError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, `"B"`)
}

func TestAssembleGraph_DanglingSource(t *testing.T) {
	elements := []GraphElement{
		{ID: "B"},
		{Source: "A", Target: "B"},
	}

	_, err := AssembleGraph(elements)
	var malformed *MalformedGraphError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, `"A"`)
}

func TestAssembleGraph_DuplicateNode(t *testing.T) {
	elements := []GraphElement{
		{ID: "A", Label: "first"},
		{ID: "A", Label: "second"},
	}

	_, err := AssembleGraph(elements)
	var dup *DuplicateNodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.ID)
}

func TestAssembleGraph_DuplicateEdgeCollapses(t *testing.T) {
	elements := []GraphElement{
		{ID: "A"},
		{ID: "B"},
		{Source: "A", Target: "B"},
		{Source: "A", Target: "B"},
	}

	model, err := AssembleGraph(elements)
	require.NoError(t, err)
	assert.Equal(t, []GraphEdge{{Source: "A", Target: "B"}}, model.Edges)
}

func TestAssembleGraph_DirectedEdgesStayDistinct(t *testing.T) {
	elements := []GraphElement{
		{ID: "A"},
		{ID: "B"},
		{Source: "A", Target: "B"},
		{Source: "B", Target: "A"},
	}

	model, err := AssembleGraph(elements)
	require.NoError(t, err)
	assert.Len(t, model.Edges, 2)
}

func TestAssembleGraph_EdgesBeforeNodes(t *testing.T) {
	// Payload order is not guaranteed; edges may precede their endpoints.
	elements := []GraphElement{
		{Source: "A", Target: "B"},
		{ID: "A"},
		{ID: "B"},
	}

	model, err := AssembleGraph(elements)
	require.NoError(t, err)
	assert.Len(t, model.Edges, 1)
}

func TestAssembleGraph_PartialEdge(t *testing.T) {
	elements := []GraphElement{
		{ID: "A"},
		{Source: "A"},
	}

	_, err := AssembleGraph(elements)
	var malformed *MalformedGraphError
	require.ErrorAs(t, err, &malformed)
}

func TestAssembleGraph_MixedNodeAndEdgeFields(t *testing.T) {
	elements := []GraphElement{
		{ID: "A"},
		{ID: "B", Source: "A", Target: "A"},
	}

	_, err := AssembleGraph(elements)
	var malformed *MalformedGraphError
	require.ErrorAs(t, err, &malformed)
}

func TestAssembleGraph_EmptyElement(t *testing.T) {
	_, err := AssembleGraph([]GraphElement{{}})

	var malformed *MalformedGraphError
	require.ErrorAs(t, err, &malformed)
}

func TestAssembleGraph_EmptyPayload(t *testing.T) {
	model, err := AssembleGraph(nil)
	require.NoError(t, err)
	assert.Empty(t, model.Nodes)
	assert.Empty(t, model.Edges)
}

func TestAssembleGraph_Idempotent(t *testing.T) {
	elements := []GraphElement{
		{ID: "A", Label: "one"},
		{ID: "B", Label: "two"},
		{Source: "A", Target: "B"},
	}

	first, err := AssembleGraph(elements)
	require.NoError(t, err)
	second, err := AssembleGraph(elements)
	require.NoError(t, err)

	// Node/edge sets and positions are identical across rebuilds.
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Edges, second.Edges)
}

func TestScatterPosition_WithinCanvas(t *testing.T) {
	ids := []string{"A", "B", "chunk-42", "", "long-node-identifier"}
	for _, id := range ids {
		pos := scatterPosition(id)
		assert.GreaterOrEqual(t, pos.X, canvasMargin)
		assert.LessOrEqual(t, pos.X, CanvasWidth-canvasMargin)
		assert.GreaterOrEqual(t, pos.Y, canvasMargin)
		assert.LessOrEqual(t, pos.Y, CanvasHeight-canvasMargin)
	}
}
