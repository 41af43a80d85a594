package urplit

// DefaultTargetShader is the shader materials are converted to.
const DefaultTargetShader = "Universal Render Pipeline/Lit"

// defaultScalar is the value the smoothness and occlusion strength
// properties are reset to on every conversion.
const defaultScalar = 0.5

// ConvertOptions controls conversion behavior.
type ConvertOptions struct {
	// TargetShader is the well-known name looked up in the shader registry
	// (default is DefaultTargetShader).
	TargetShader string
	// Aliases overrides the per-role suffix alias tables used by the
	// texture probe (default is DefaultAliases).
	Aliases *AliasTable
	// DefaultSmoothness is written to every converted material (default 0.5).
	DefaultSmoothness float64
	// DefaultOcclusionStrength is written to every converted material
	// (default 0.5).
	DefaultOcclusionStrength float64
	// DisableAutoFill skips filename-based probing for unassigned slots.
	// Workflow resolution still runs on whatever is already assigned.
	DisableAutoFill bool
}

// normalize normalizes the ConvertOptions.
func (o *ConvertOptions) normalize() ConvertOptions {
	aliases := DefaultAliases()
	if o == nil {
		return ConvertOptions{
			TargetShader:             DefaultTargetShader,
			Aliases:                  &aliases,
			DefaultSmoothness:        defaultScalar,
			DefaultOcclusionStrength: defaultScalar,
		}
	}

	out := *o
	if out.TargetShader == "" {
		out.TargetShader = DefaultTargetShader
	}
	if out.Aliases == nil {
		out.Aliases = &aliases
	}
	if out.DefaultSmoothness == 0 {
		out.DefaultSmoothness = defaultScalar
	}
	if out.DefaultOcclusionStrength == 0 {
		out.DefaultOcclusionStrength = defaultScalar
	}

	return out
}
