package urplit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stats aggregates the result of one batch conversion.
type Stats struct {
	Total     int // Materials in the selection
	Converted int // Materials driven through the full conversion
	Conflicts int // Materials where a specular map was dropped
}

// Converter drives selected materials through conversion to the target
// shading model. Shaders and Assets are required; Recorder and Notices are
// optional and may be nil.
type Converter struct {
	Shaders  ShaderRegistry // Host shader registry
	Assets   AssetIndex     // Host texture index
	Recorder UndoRecorder   // Pre-mutation snapshots, optional
	Notices  NoticeSink     // Operator notices, optional
}

// ConvertSelection converts every selected material, strictly sequentially.
//
// An empty selection aborts with ErrEmptySelection and a warning notice; a
// target shader that cannot be resolved aborts the whole batch with
// ErrShaderNotFound before any material is touched. Individual materials are
// never rolled back once mutated.
func (c *Converter) ConvertSelection(mats []HostMaterial, opt *ConvertOptions) (Stats, error) {
	copt := opt.normalize()

	var stats Stats
	if len(mats) == 0 {
		c.notify(Notice{Level: NoticeWarning, Message: "no materials selected"})
		return stats, ErrEmptySelection
	}

	shader, ok := c.Shaders.Find(copt.TargetShader)
	if !ok {
		c.notify(Notice{Level: NoticeError, Message: "shader not found: " + copt.TargetShader})
		return stats, fmt.Errorf("%w: %s", ErrShaderNotFound, copt.TargetShader)
	}

	stats.Total = len(mats)
	for _, m := range mats {
		if m == nil {
			continue
		}
		if c.convertMaterial(m, shader, copt) {
			stats.Conflicts++
		}
		stats.Converted++
	}

	return stats, nil
}

// convertMaterial runs the full conversion sequence on one material and
// reports whether a workflow conflict was resolved by dropping the specular
// map. Properties the material's shader does not expose are skipped silently.
func (c *Converter) convertMaterial(m HostMaterial, shader Shader, opt ConvertOptions) bool {
	if c.Recorder != nil {
		if err := c.Recorder.Record(m, "Convert to "+shader.Name); err != nil {
			c.notify(Notice{Level: NoticeWarning, Message: "undo snapshot failed: " + err.Error(), Asset: m.Name()})
		}
	}

	m.SetShader(shader)

	// The host caches render state per surface type; writing transparent
	// first and opaque second flushes the stale entry. Keep both writes.
	m.SetSurfaceType(SurfaceTransparent)
	m.SetSurfaceType(SurfaceOpaque)

	m.SetSmoothness(opt.DefaultSmoothness)
	m.SetOcclusionStrength(opt.DefaultOcclusionStrength)

	var names []string
	for _, r := range AllRoles() {
		if t, ok := m.Texture(r); ok && !t.IsZero() {
			names = append(names, t.Name)
		}
	}

	prefix, ok := InferPrefix(names)
	if !ok {
		prefix = materialBaseName(m.Path())
	}

	if !opt.DisableAutoFill {
		c.fillSlots(m, prefix, *opt.Aliases)
	}

	metallic, mok := m.Texture(RoleMetallic)
	specular, sok := m.Texture(RoleSpecular)
	dec := ResolveWorkflow(mok && !metallic.IsZero(), sok && !specular.IsZero())
	m.SetWorkflow(dec.Workflow)
	if dec.DropSpecular {
		m.ClearTexture(RoleSpecular)
		c.notify(Notice{
			Level:   NoticeWarning,
			Message: "both metallic and specular maps assigned; dropping specular",
			Asset:   m.Name(),
		})
	}

	if col, ok := m.LegacyBaseColor(); ok {
		m.SetBaseColor(col)
	}
	if scale, ok := m.LegacyNormalScale(); ok {
		m.SetNormalScale(scale)
	}

	c.notify(Notice{Level: NoticeInfo, Message: "converted to " + shader.Name, Asset: m.Name()})

	return dec.DropSpecular
}

// fillSlots probes the material's own directory for textures matching
// prefix+alias and assigns the first hit per still-empty slot. Assigned
// slots are never overwritten.
func (c *Converter) fillSlots(m HostMaterial, prefix string, aliases AliasTable) {
	candidates, err := c.Assets.Textures(filepath.Dir(m.Path()))
	if err != nil {
		c.notify(Notice{Level: NoticeWarning, Message: "texture scan failed: " + err.Error(), Asset: m.Name()})
		return
	}

	for _, r := range AllRoles() {
		t, ok := m.Texture(r)
		if !ok || !t.IsZero() {
			continue
		}
		if match, found := FindTexture(candidates, aliases.ForRole(r), prefix); found {
			m.SetTexture(r, match)
		}
	}
}

// materialBaseName strips the directory and extension from a material asset
// path; used as the probe prefix when no shared texture prefix exists.
func materialBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// notify forwards a notice to the sink, if one is configured.
func (c *Converter) notify(n Notice) {
	if c.Notices == nil {
		return
	}
	c.Notices.Notify(n)
}
