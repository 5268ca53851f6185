package domain

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Canvas bounds for initial node placement. Final placement is the
// renderer's concern; these only give a force-directed layout somewhere
// sensible to start from.
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0

	// canvasMargin keeps initial positions away from the canvas edge.
	canvasMargin = 20.0
)

// GraphElement is one raw, untyped element of a semantic graph payload.
// The backend sends no explicit kind tag: a node carries ID/Label, an edge
// carries Source/Target. Kind is decided by field presence during assembly,
// and anything undecidable is rejected rather than guessed.
type GraphElement struct {
	ID     string
	Label  string
	Source string
	Target string
}

// isEdge reports whether the element carries edge fields.
func (e GraphElement) isEdge() bool {
	return e.Source != "" || e.Target != ""
}

// Position is an initial 2D layout coordinate within the canvas.
type Position struct {
	X float64
	Y float64
}

// GraphNode is a validated node with its initial placement.
type GraphNode struct {
	Label    string
	Position Position
}

// GraphEdge is a directed edge between two validated node ids.
// (A,B) and (B,A) are distinct.
type GraphEdge struct {
	Source string
	Target string
}

// GraphModel is the render-ready form of a semantic graph payload: unique
// nodes with initial coordinates and deduplicated directed edges whose
// endpoints are guaranteed to exist. It is rebuilt wholesale on every
// fetch, never patched.
type GraphModel struct {
	Nodes map[string]GraphNode
	Edges []GraphEdge
}

// NodeIDs returns the node ids in lexical order, for stable rendering
// and test assertions.
func (m *GraphModel) NodeIDs() []string {
	ids := make([]string, 0, len(m.Nodes))
	for id := range m.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AssembleGraph validates and partitions a raw payload into a GraphModel.
//
// Rules:
//   - An element with source/target fields is an edge; it must carry both
//     endpoints and no node fields. An element with neither node nor edge
//     fields is malformed.
//   - Node ids must be unique (DuplicateNodeError).
//   - Every edge endpoint must reference a known node (MalformedGraphError);
//     a dangling edge signals an upstream inconsistency and fails the whole
//     assembly rather than being dropped.
//   - Exact duplicate edges collapse to one.
//   - Each node receives a deterministic initial position derived from its
//     id, so repeated assemblies of the same payload are stable.
func AssembleGraph(elements []GraphElement) (*GraphModel, error) {
	model := &GraphModel{
		Nodes: make(map[string]GraphNode),
	}

	// First pass: partition and register nodes so edge validation can run
	// regardless of element order in the payload.
	var edges []GraphElement
	for i, el := range elements {
		if el.isEdge() {
			if el.Source == "" || el.Target == "" {
				return nil, &MalformedGraphError{
					Reason: fmt.Sprintf("element %d has a partial edge (source=%q target=%q)", i, el.Source, el.Target),
				}
			}
			if el.ID != "" || el.Label != "" {
				return nil, &MalformedGraphError{
					Reason: fmt.Sprintf("element %d mixes node and edge fields", i),
				}
			}
			edges = append(edges, el)
			continue
		}

		if el.ID == "" {
			return nil, &MalformedGraphError{
				Reason: fmt.Sprintf("element %d has neither node nor edge fields", i),
			}
		}
		if _, exists := model.Nodes[el.ID]; exists {
			return nil, &DuplicateNodeError{ID: el.ID}
		}
		model.Nodes[el.ID] = GraphNode{
			Label:    el.Label,
			Position: scatterPosition(el.ID),
		}
	}

	// Second pass: validate endpoints and deduplicate directed edges.
	seen := make(map[GraphEdge]struct{}, len(edges))
	for _, el := range edges {
		if _, ok := model.Nodes[el.Source]; !ok {
			return nil, &MalformedGraphError{
				Reason: fmt.Sprintf("edge references unknown source node %q", el.Source),
			}
		}
		if _, ok := model.Nodes[el.Target]; !ok {
			return nil, &MalformedGraphError{
				Reason: fmt.Sprintf("edge references unknown target node %q", el.Target),
			}
		}
		edge := GraphEdge{Source: el.Source, Target: el.Target}
		if _, dup := seen[edge]; dup {
			continue
		}
		seen[edge] = struct{}{}
		model.Edges = append(model.Edges, edge)
	}

	return model, nil
}

// scatterPosition derives a stable pseudo-random canvas coordinate from a
// node id. Collisions are acceptable; the external layout stage separates
// overlapping nodes.
func scatterPosition(id string) Position {
	h := fnv.New64a()
	h.Write([]byte(id)) //nolint:errcheck // fnv never fails
	sum := h.Sum64()

	spanX := CanvasWidth - 2*canvasMargin
	spanY := CanvasHeight - 2*canvasMargin
	x := canvasMargin + float64(sum%100000)/100000*spanX
	y := canvasMargin + float64((sum/100000)%100000)/100000*spanY
	return Position{X: x, Y: y}
}
