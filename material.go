package urplit

// Assignment is a snapshot of a material's resolved texture slots and
// properties. It is computed fresh from a host material and never written
// back; after conversion it holds at most one of the metallic and specular
// maps.
type Assignment struct {
	BaseColor TextureRef `json:"baseColor,omitempty" yaml:"baseColor,omitempty"` // Base color map
	Metallic  TextureRef `json:"metallic,omitempty" yaml:"metallic,omitempty"`   // Metallic/smoothness map
	Specular  TextureRef `json:"specular,omitempty" yaml:"specular,omitempty"`   // Specular/smoothness map
	Normal    TextureRef `json:"normal,omitempty" yaml:"normal,omitempty"`       // Normal/bump map
	Occlusion TextureRef `json:"occlusion,omitempty" yaml:"occlusion,omitempty"` // Occlusion map
	Workflow  Workflow   `json:"workflow" yaml:"workflow"`                       // Selected workflow
}

// Snapshot reads the current slot assignments and workflow-relevant state of
// a host material. Slots the shader does not expose stay zero.
func Snapshot(m HostMaterial) Assignment {
	var a Assignment
	for _, r := range AllRoles() {
		t, ok := m.Texture(r)
		if !ok {
			continue
		}
		switch r {
		case RoleBaseColor:
			a.BaseColor = t
		case RoleMetallic:
			a.Metallic = t
		case RoleSpecular:
			a.Specular = t
		case RoleNormal:
			a.Normal = t
		case RoleOcclusion:
			a.Occlusion = t
		}
	}
	a.Workflow = ResolveWorkflow(!a.Metallic.IsZero(), !a.Specular.IsZero()).Workflow

	return a
}
