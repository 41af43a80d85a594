package urplit

import "testing"

func TestResolveWorkflow(t *testing.T) {
	tests := []struct {
		name         string
		hasMetallic  bool
		hasSpecular  bool
		want         Workflow
		dropSpecular bool
	}{
		{"both_prefers_metallic", true, true, WorkflowMetallic, true},
		{"metallic_only", true, false, WorkflowMetallic, false},
		{"specular_only", false, true, WorkflowSpecular, false},
		{"neither_defaults_metallic", false, false, WorkflowMetallic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := ResolveWorkflow(tt.hasMetallic, tt.hasSpecular)
			if dec.Workflow != tt.want {
				t.Fatalf("workflow = %v, want %v", dec.Workflow, tt.want)
			}
			if dec.DropSpecular != tt.dropSpecular {
				t.Fatalf("dropSpecular = %v, want %v", dec.DropSpecular, tt.dropSpecular)
			}
		})
	}
}

func TestWorkflowString(t *testing.T) {
	if WorkflowMetallic.String() != "Metallic" || WorkflowSpecular.String() != "Specular" {
		t.Fatalf("unexpected workflow names: %v, %v", WorkflowMetallic, WorkflowSpecular)
	}
}
