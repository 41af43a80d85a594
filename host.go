package urplit

// SurfaceType is the opaque/transparent render surface marker of the target
// shader.
type SurfaceType int

const (
	// SurfaceOpaque marks an opaque surface.
	SurfaceOpaque SurfaceType = iota
	// SurfaceTransparent marks a transparent surface.
	SurfaceTransparent
)

// Shader identifies a shader resolved from the host registry.
type Shader struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"` // Well-known shader name
}

// ShaderRegistry resolves shaders by well-known name.
type ShaderRegistry interface {
	// Find returns the shader registered under name; ok is false when the
	// host has no such shader.
	Find(name string) (Shader, bool)
}

// AssetIndex exposes the host texture database.
type AssetIndex interface {
	// Textures lists every texture asset located anywhere under dir,
	// recursively, in index enumeration order.
	Textures(dir string) ([]TextureRef, error)
}

// UndoRecorder snapshots a material before mutation for later undo.
type UndoRecorder interface {
	Record(m HostMaterial, action string) error
}

// HostMaterial is the editor-side material surface the converter reads and
// mutates. String-keyed property access stays behind this boundary; the
// converter only ever sees roles and typed values.
//
// Slot accessors report ok=false when the material's current shader does not
// expose the slot at all; such slots are silently skipped. An exposed but
// empty slot returns ok=true with a zero TextureRef.
type HostMaterial interface {
	// Name returns the display name used in notices.
	Name() string
	// Path returns the material's asset file path.
	Path() string

	// SetShader reassigns the material to the given shader.
	SetShader(s Shader)
	// SetSurfaceType writes the surface type marker.
	SetSurfaceType(s SurfaceType)
	// SetWorkflow selects the reflectance workflow.
	SetWorkflow(w Workflow)

	// Texture reports the texture assigned to a role slot.
	Texture(r Role) (TextureRef, bool)
	// SetTexture assigns a texture to a role slot.
	SetTexture(r Role, t TextureRef)
	// ClearTexture empties a role slot.
	ClearTexture(r Role)

	// SetSmoothness writes the smoothness scalar.
	SetSmoothness(v float64)
	// SetOcclusionStrength writes the occlusion strength scalar.
	SetOcclusionStrength(v float64)

	// LegacyBaseColor reads the legacy single base-color property; ok is
	// false when the shader does not expose it.
	LegacyBaseColor() (Color, bool)
	// SetBaseColor writes the target base-color property.
	SetBaseColor(c Color)

	// LegacyNormalScale reads the legacy normal-scale-equivalent property;
	// ok is false when the shader does not expose it.
	LegacyNormalScale() (float64, bool)
	// SetNormalScale writes the target normal-scale property.
	SetNormalScale(v float64)
}
