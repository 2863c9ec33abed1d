package prompt

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuild_EmbedsCeiling(t *testing.T) {
	tests := []struct {
		name     string
		maxNodes int
		want     string
	}{
		{name: "ten", maxNodes: 10, want: "<= 10"},
		{name: "default ceiling", maxNodes: 28, want: "<= 28"},
		{name: "hard ceiling", maxNodes: 80, want: "<= 80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.maxNodes)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Build(%d) does not contain %q", tt.maxNodes, tt.want)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	if Build(28) != Build(28) {
		t.Error("Build() is not deterministic for equal ceilings")
	}
}

func TestBuild_StatesContract(t *testing.T) {
	got := Build(28)

	for _, want := range []string{
		"ONLY valid JSON",
		"unique ids",
		"position.x and position.y",
		`type="group"`,
		"parentNode",
		`"smoothstep"`,
		"existing node ids",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Build() missing contract clause %q", want)
		}
	}
}

// The prompt embeds one literal example of the expected output shape; it must
// itself be valid JSON with the top-level fields the validator requires.
func TestBuild_ExampleIsValidJSON(t *testing.T) {
	got := Build(28)

	start := strings.Index(got, "{")
	if start < 0 {
		t.Fatal("Build() contains no example JSON object")
	}

	var example struct {
		Name  string `json:"name"`
		Nodes []any  `json:"nodes"`
		Edges []any  `json:"edges"`
	}
	if err := json.Unmarshal([]byte(got[start:]), &example); err != nil {
		t.Fatalf("embedded example is not valid JSON: %v", err)
	}
	if example.Name == "" || len(example.Nodes) != 1 || len(example.Edges) != 1 {
		t.Errorf("embedded example shape = {name:%q nodes:%d edges:%d}, want one node and one edge", example.Name, len(example.Nodes), len(example.Edges))
	}
}
