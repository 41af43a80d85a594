package urplit

//go:generate go tool stringer -type=Role -trimprefix=Role -output=role_string.go

// Role identifies one of the five recognized texture slot purposes.
type Role int

const (
	// RoleBaseColor is the albedo/base color map slot.
	RoleBaseColor Role = iota
	// RoleMetallic is the metallic/smoothness map slot.
	RoleMetallic
	// RoleSpecular is the specular/smoothness map slot.
	RoleSpecular
	// RoleNormal is the normal/bump map slot.
	RoleNormal
	// RoleOcclusion is the ambient occlusion map slot.
	RoleOcclusion
)

// AllRoles returns the five roles in probe order.
func AllRoles() []Role {
	return []Role{RoleBaseColor, RoleMetallic, RoleSpecular, RoleNormal, RoleOcclusion}
}

// AliasTable maps each texture role to the known filename suffix spellings
// that identify it, in priority order. Aliases carry their leading underscore
// and are matched case-insensitively against prefix+alias.
type AliasTable struct {
	BaseColor []string `json:"baseColor,omitempty" yaml:"baseColor,omitempty"` // Base color suffixes
	Metallic  []string `json:"metallic,omitempty" yaml:"metallic,omitempty"`   // Metallic/smoothness suffixes
	Specular  []string `json:"specular,omitempty" yaml:"specular,omitempty"`   // Specular/smoothness suffixes
	Normal    []string `json:"normal,omitempty" yaml:"normal,omitempty"`       // Normal/bump suffixes
	Occlusion []string `json:"occlusion,omitempty" yaml:"occlusion,omitempty"` // Occlusion suffixes
}

// DefaultAliases returns the suffix spellings commonly seen in authored
// texture sets, most specific first.
func DefaultAliases() AliasTable {
	return AliasTable{
		BaseColor: []string{"_BaseColor", "_BaseMap", "_AlbedoTransparency", "_Albedo", "_Diffuse", "_DIFF", "_COL", "_D"},
		Metallic:  []string{"_MetallicSmoothness", "_MetallicGloss", "_Metallic", "_METL", "_MS", "_M"},
		Specular:  []string{"_SpecularSmoothness", "_SpecGloss", "_Specular", "_SPEC", "_SS", "_S"},
		Normal:    []string{"_NormalMap", "_Normal", "_NORM", "_NRM", "_Bump", "_N"},
		Occlusion: []string{"_OcclusionMap", "_Occlusion", "_AO", "_OCC", "_O"},
	}
}

// ForRole returns the alias list for a role, nil for unknown roles.
func (t AliasTable) ForRole(r Role) []string {
	switch r {
	case RoleBaseColor:
		return t.BaseColor
	case RoleMetallic:
		return t.Metallic
	case RoleSpecular:
		return t.Specular
	case RoleNormal:
		return t.Normal
	case RoleOcclusion:
		return t.Occlusion
	default:
		return nil
	}
}
