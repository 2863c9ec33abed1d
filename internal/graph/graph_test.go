package graph

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "minimal valid graph",
			payload: `{"name":"g","nodes":[],"edges":[]}`,
			wantErr: "",
		},
		{
			name:    "populated graph",
			payload: `{"name":"todo","nodes":[{"id":"node-1"}],"edges":[{"id":"edge-1"}],"extra":true}`,
			wantErr: "",
		},
		{
			name:    "missing name",
			payload: `{"nodes":[],"edges":[]}`,
			wantErr: "graph payload missing string field: name",
		},
		{
			name:    "name has wrong type",
			payload: `{"name":42,"nodes":[],"edges":[]}`,
			wantErr: "graph payload missing string field: name",
		},
		{
			name:    "missing nodes",
			payload: `{"name":"g","edges":[]}`,
			wantErr: "graph payload missing array field: nodes",
		},
		{
			name:    "nodes has wrong type",
			payload: `{"name":"g","nodes":{},"edges":[]}`,
			wantErr: "graph payload missing array field: nodes",
		},
		{
			name:    "missing edges",
			payload: `{"name":"g","nodes":[]}`,
			wantErr: "graph payload missing array field: edges",
		},
		{
			name:    "top level array",
			payload: `[{"name":"g"}]`,
			wantErr: "graph payload is not an object",
		},
		{
			name:    "top level scalar",
			payload: `"graph"`,
			wantErr: "graph payload is not an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			if err := json.Unmarshal([]byte(tt.payload), &v); err != nil {
				t.Fatalf("test payload is not valid JSON: %v", err)
			}

			err := Validate(v)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// Validate passes the decoded value through untouched; it must never mutate
// or copy the payload it is given.
func TestValidate_PassThrough(t *testing.T) {
	var v any
	if err := json.Unmarshal([]byte(`{"name":"g","nodes":[{"id":"node-1"}],"edges":[]}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if err := Validate(v); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	obj := v.(map[string]any)
	nodes := obj["nodes"].([]any)
	if len(nodes) != 1 {
		t.Errorf("nodes length after Validate = %d, want 1", len(nodes))
	}
}
