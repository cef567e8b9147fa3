package writer

import (
	"io"
	"os"

	"github.com/achilleasa/objmerge/asset/mesh"
	"github.com/achilleasa/objmerge/log"
)

// Merger concatenates meshes into a single wavefront obj stream. Each
// appended mesh is written as a separate object/group block with its face
// indices shifted by the element counts of the previously appended meshes.
type Merger struct {
	logger log.Logger

	w       io.Writer
	offsets mesh.Offsets
}

// Create a merger that writes merged obj output to w. The caller retains
// ownership of w and must write exactly one header before appending meshes.
func NewMerger(w io.Writer) *Merger {
	return &Merger{
		logger: log.New("obj merger"),
		w:      w,
	}
}

// Write the merged file header. Must be called once, before the first Append.
func (m *Merger) WriteHeader() error {
	_, err := io.WriteString(m.w, "# Merged OBJ file\n\n")
	return err
}

// Append renders one mesh block and advances the running offsets by the
// mesh's element counts so the next block's face indices land after all
// previously emitted elements.
func (m *Merger) Append(msh *mesh.Mesh) error {
	m.logger.Debugf(`appending mesh "%s" at offsets v=%d vt=%d vn=%d`,
		msh.Name, m.offsets.Vertex, m.offsets.TexCoord, m.offsets.Normal)

	offsets, err := renderMesh(m.w, msh, m.offsets)
	if err != nil {
		return err
	}
	m.offsets = offsets
	return nil
}

// Offsets returns the cumulative element counts of all appended meshes.
func (m *Merger) Offsets() mesh.Offsets {
	return m.offsets
}

// Merge meshes into a single obj file. The output file is created upfront so
// an unwritable path fails before any input is parsed; on error the partially
// written file is left behind and the caller is expected to discard it.
func MergeMeshes(meshes []*mesh.Mesh, outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}

	merger := NewMerger(f)
	err = merger.WriteHeader()
	for _, msh := range meshes {
		if err != nil {
			break
		}
		err = merger.Append(msh)
	}

	// Close exactly once on every exit path.
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
