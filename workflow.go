package urplit

//go:generate go tool stringer -type=Workflow -trimprefix=Workflow -output=workflow_string.go

// Workflow selects the reflectance input convention of the target shader.
type Workflow int

const (
	// WorkflowMetallic uses a metallic/smoothness map (URP Lit default).
	WorkflowMetallic Workflow = iota
	// WorkflowSpecular uses a specular/smoothness map.
	WorkflowSpecular
)

// WorkflowDecision is the outcome of resolving competing workflow maps.
type WorkflowDecision struct {
	Workflow Workflow // Selected workflow
	// DropSpecular requests that the caller clear the specular slot and warn;
	// set only when both maps were present.
	DropSpecular bool
}

// ResolveWorkflow decides which workflow a material commits to, given which
// of the two mutually-exclusive maps are assigned. Metallic always wins a
// conflict and is the default when neither map is present. Pure decision
// function; clearing the slot and warning are left to the caller.
func ResolveWorkflow(hasMetallic, hasSpecular bool) WorkflowDecision {
	switch {
	case hasMetallic && hasSpecular:
		return WorkflowDecision{Workflow: WorkflowMetallic, DropSpecular: true}
	case hasMetallic:
		return WorkflowDecision{Workflow: WorkflowMetallic}
	case hasSpecular:
		return WorkflowDecision{Workflow: WorkflowSpecular}
	default:
		return WorkflowDecision{Workflow: WorkflowMetallic}
	}
}
