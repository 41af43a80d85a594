package fshost

import "github.com/woozymasta/urplit"

// knownShaders is the fixed set of pipeline shaders this host can resolve.
var knownShaders = map[string]bool{
	"Universal Render Pipeline/Lit":        true,
	"Universal Render Pipeline/Simple Lit": true,
	"Universal Render Pipeline/Unlit":      true,
	"Standard":                             true,
	"Standard (Specular setup)":            true,
}

// Registry implements urplit.ShaderRegistry over the known shader set.
type Registry struct{}

// Find resolves a shader by its well-known name.
func (Registry) Find(name string) (urplit.Shader, bool) {
	if !knownShaders[name] {
		return urplit.Shader{}, false
	}

	return urplit.Shader{Name: name}, true
}
