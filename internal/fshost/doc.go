// Package fshost adapts a directory of material description files to the
// host interfaces of the urplit converter. Materials are JSON files with
// string-keyed property maps; translation between property names and texture
// roles happens here, at the boundary, so the converter core never sees a
// property string.
package fshost
