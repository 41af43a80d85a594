package fshost

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/woozymasta/urplit"
)

// textureExts are the asset extensions recognized as textures.
var textureExts = map[string]bool{
	".png":  true,
	".tga":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".exr":  true,
	".psd":  true,
}

// Index implements urplit.AssetIndex over the filesystem.
type Index struct{}

// Textures lists every texture file anywhere under dir, recursively.
// WalkDir visits entries in lexical order, so enumeration is deterministic.
func (Index) Textures(dir string) ([]urplit.TextureRef, error) {
	var out []urplit.TextureRef
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !textureExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		out = append(out, refFromPath(path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
