package graph

import "errors"

// EdgeType is the visual edge style every generated edge carries.
const EdgeType = "smoothstep"

// Document is a named collection of nodes and edges representing a diagram.
// These types document the contract the system prompt dictates to the model;
// shape validation of generated output happens on the decoded JSON value via
// [Validate], not by unmarshaling into them, because nested structure is the
// model's responsibility and is deliberately not re-validated here.
type Document struct {
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a single diagram node. Children of a "group" node reference their
// container through ParentNode.
type Node struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Position   Position `json:"position"`
	ParentNode string   `json:"parentNode,omitempty"`
	Extent     string   `json:"extent,omitempty"`
	Style      *Style   `json:"style,omitempty"`
	Data       NodeData `json:"data"`
}

// Position is a 2D canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style carries optional node dimensions.
type Style struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// NodeData is the node payload: a label plus nested items.
type NodeData struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Item is an ordered entry inside a node, holding its own notes.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Notes []Note `json:"notes"`
}

// Note is the innermost annotation level.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Edge connects two nodes by id.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type,omitempty"`
}

// Validate confirms the minimum top-level shape of a decoded graph payload:
// an object with a string "name", an array "nodes" and an array "edges".
// Nested node/edge structure is trusted, not inspected. The value is passed
// through unchanged on success.
func Validate(v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return errors.New("graph payload is not an object")
	}
	if _, ok := obj["name"].(string); !ok {
		return errors.New("graph payload missing string field: name")
	}
	if _, ok := obj["nodes"].([]any); !ok {
		return errors.New("graph payload missing array field: nodes")
	}
	if _, ok := obj["edges"].([]any); !ok {
		return errors.New("graph payload missing array field: edges")
	}
	return nil
}
