// Package prompt renders the system instructions sent to the completion
// endpoint. The prompt pins down the exact JSON shape the model must return,
// including a literal example document, because shape validation downstream
// only checks the top level; everything below that is enforced here.
package prompt

import (
	"fmt"

	"github.com/graphnote/ai-server/internal/graph"
)

const systemTemplate = `You are a graph builder. Return ONLY valid JSON.
Rules:
- Keep node count <= %[1]d.
- Use unique ids for nodes and edges.
- Provide position.x and position.y for each node.
- Use type="group" for containers and set child nodes' parentNode to the group id.
- Include items/notes only if they add value; otherwise use empty arrays.
- Use edge type "%[2]s".
- Edges must reference existing node ids.

Return this JSON shape:
{
  "name": "Graph name",
  "nodes": [
    {
      "id": "node-1",
      "type": "default",
      "position": {"x": 0, "y": 0},
      "parentNode": null,
      "extent": null,
      "style": null,
      "data": {
        "label": "Node label",
        "position3d": null,
        "items": [
          {
            "id": "item-1",
            "title": "Item title",
            "notes": [{"id": "note-1", "title": "Note title"}]
          }
        ]
      }
    }
  ],
  "edges": [
    {"id": "edge-1", "source": "node-1", "target": "node-2", "type": "%[2]s"}
  ]
}
`

// Build returns the system prompt for the given node-count ceiling. Pure and
// deterministic: equal ceilings produce byte-identical prompts.
func Build(maxNodes int) string {
	return fmt.Sprintf(systemTemplate, maxNodes, graph.EdgeType)
}
