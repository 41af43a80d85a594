package urplit

import "strings"

// TextureRef identifies a texture asset known to the host.
type TextureRef struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"` // Base filename without extension
	Path string `json:"path,omitempty" yaml:"path,omitempty"` // Host asset path
}

// IsZero reports whether the reference points at no texture.
func (t TextureRef) IsZero() bool {
	return t.Name == "" && t.Path == ""
}

// SplitTextureName splits a texture name at its last underscore into a shared
// base name and a role-indicating tag. Names without an underscore are all
// prefix: SplitTextureName("abc") returns ("abc", "").
func SplitTextureName(name string) (prefix, suffix string) {
	i := strings.LastIndex(name, "_")
	if i < 0 {
		return name, ""
	}

	return name[:i], name[i+1:]
}
