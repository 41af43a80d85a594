package fshost

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/urplit"
)

// Property names of the target shading model.
const (
	propBaseMap     = "_BaseMap"
	propMetallicMap = "_MetallicGlossMap"
	propSpecularMap = "_SpecGlossMap"
	propNormalMap   = "_BumpMap"
	propOcclusion   = "_OcclusionMap"

	propBaseColor         = "_BaseColor"
	propSmoothness        = "_Smoothness"
	propOcclusionStrength = "_OcclusionStrength"
	propNormalScale       = "_BumpScale"
	propSurface           = "_Surface"
	propWorkflowMode      = "_WorkflowMode"
)

// Legacy property spellings read during conversion.
const (
	legacyBaseMap   = "_MainTex"
	legacyBaseColor = "_Color"
)

// slotProps maps each role to its target slot property and the legacy
// spelling consulted when the target one is unset.
var slotProps = map[urplit.Role]struct {
	target string
	legacy string
}{
	urplit.RoleBaseColor: {target: propBaseMap, legacy: legacyBaseMap},
	urplit.RoleMetallic:  {target: propMetallicMap},
	urplit.RoleSpecular:  {target: propSpecularMap},
	urplit.RoleNormal:    {target: propNormalMap},
	urplit.RoleOcclusion: {target: propOcclusion},
}

// materialFile is the on-disk material description.
type materialFile struct {
	Shader   string               `json:"shader,omitempty"`
	Textures map[string]string    `json:"textures,omitempty"` // property name -> texture path
	Floats   map[string]float64   `json:"floats,omitempty"`
	Colors   map[string][]float64 `json:"colors,omitempty"`
}

// Material implements urplit.HostMaterial over a material description file.
type Material struct {
	path string
	file materialFile
}

// Load reads a material description file.
func Load(path string) (*Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := &Material{path: path}
	if err := json.Unmarshal(data, &m.file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.file.Textures == nil {
		m.file.Textures = map[string]string{}
	}
	if m.file.Floats == nil {
		m.file.Floats = map[string]float64{}
	}
	if m.file.Colors == nil {
		m.file.Colors = map[string][]float64{}
	}

	return m, nil
}

// Save writes the material back to its file.
func (m *Material) Save() error {
	data, err := json.MarshalIndent(m.file, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.path, append(data, '\n'), 0o600)
}

// ShaderName returns the material's current shader name.
func (m *Material) ShaderName() string { return m.file.Shader }

// Name returns the material's display name, the file base name without
// extension.
func (m *Material) Name() string {
	base := filepath.Base(m.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Path returns the material's file path.
func (m *Material) Path() string { return m.path }

// SetShader reassigns the material's shader.
func (m *Material) SetShader(s urplit.Shader) { m.file.Shader = s.Name }

// SetSurfaceType writes the surface type marker property.
func (m *Material) SetSurfaceType(s urplit.SurfaceType) {
	m.file.Floats[propSurface] = float64(s)
}

// SetWorkflow writes the workflow mode property. The target shader encodes
// specular as 0 and metallic as 1.
func (m *Material) SetWorkflow(w urplit.Workflow) {
	if w == urplit.WorkflowSpecular {
		m.file.Floats[propWorkflowMode] = 0
		return
	}
	m.file.Floats[propWorkflowMode] = 1
}

// Texture reports the texture assigned to a role slot, consulting the legacy
// spelling when the target property is unset. All five slots are exposed by
// the description format, so ok is false only for unknown roles.
func (m *Material) Texture(r urplit.Role) (urplit.TextureRef, bool) {
	props, known := slotProps[r]
	if !known {
		return urplit.TextureRef{}, false
	}

	if path, ok := m.file.Textures[props.target]; ok && path != "" {
		return refFromPath(path), true
	}
	if props.legacy != "" {
		if path, ok := m.file.Textures[props.legacy]; ok && path != "" {
			return refFromPath(path), true
		}
	}

	return urplit.TextureRef{}, true
}

// SetTexture assigns a texture to a role slot under the target property name
// and drops the legacy spelling.
func (m *Material) SetTexture(r urplit.Role, t urplit.TextureRef) {
	props, known := slotProps[r]
	if !known {
		return
	}

	m.file.Textures[props.target] = t.Path
	if props.legacy != "" {
		delete(m.file.Textures, props.legacy)
	}
}

// ClearTexture empties a role slot, including its legacy spelling.
func (m *Material) ClearTexture(r urplit.Role) {
	props, known := slotProps[r]
	if !known {
		return
	}

	delete(m.file.Textures, props.target)
	if props.legacy != "" {
		delete(m.file.Textures, props.legacy)
	}
}

// SetSmoothness writes the smoothness scalar.
func (m *Material) SetSmoothness(v float64) {
	m.file.Floats[propSmoothness] = v
}

// SetOcclusionStrength writes the occlusion strength scalar.
func (m *Material) SetOcclusionStrength(v float64) {
	m.file.Floats[propOcclusionStrength] = v
}

// LegacyBaseColor reads the legacy single base-color property.
func (m *Material) LegacyBaseColor() (urplit.Color, bool) {
	vals, ok := m.file.Colors[legacyBaseColor]
	if !ok {
		return urplit.Color{}, false
	}

	return urplit.ColorFromArray(vals).Clamped(), true
}

// SetBaseColor writes the target base-color property.
func (m *Material) SetBaseColor(c urplit.Color) {
	m.file.Colors[propBaseColor] = c.ToArray()
}

// LegacyNormalScale reads the normal-scale property.
func (m *Material) LegacyNormalScale() (float64, bool) {
	v, ok := m.file.Floats[propNormalScale]
	return v, ok
}

// SetNormalScale writes the target normal-scale property.
func (m *Material) SetNormalScale(v float64) {
	m.file.Floats[propNormalScale] = v
}

// refFromPath builds a texture reference from a texture file path.
func refFromPath(path string) urplit.TextureRef {
	base := filepath.Base(path)
	return urplit.TextureRef{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: path,
	}
}
