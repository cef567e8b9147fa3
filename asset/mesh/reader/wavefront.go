package reader

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/achilleasa/objmerge/asset"
	"github.com/achilleasa/objmerge/asset/mesh"
	"github.com/achilleasa/objmerge/log"
)

type wavefrontMeshReader struct {
	logger log.Logger
}

// Create a new wavefront obj mesh reader.
func newWavefrontReader() *wavefrontMeshReader {
	return &wavefrontMeshReader{
		logger: log.New("wavefront mesh reader"),
	}
}

// Read mesh statements from a wavefront obj resource. Statements are grouped
// by kind but otherwise kept verbatim; coordinate values are treated as
// opaque text. Object and group statements are dropped as the merger
// regenerates them from the mesh name, and statements with unsupported
// keywords (materials, smoothing groups e.t.c.) are silently ignored.
func (r *wavefrontMeshReader) Read(res *asset.Resource) (*mesh.Mesh, error) {
	r.logger.Infof(`parsing mesh from "%s"`, res.Path())

	base := res.Base()
	m := mesh.New(strings.TrimSuffix(base, filepath.Ext(base)))

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch keyword(line) {
		case "v":
			m.Vertices = append(m.Vertices, line)
		case "vt":
			m.TexCoords = append(m.TexCoords, line)
		case "vn":
			m.Normals = append(m.Normals, line)
		case "f":
			m.Faces = append(m.Faces, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	r.logger.Debugf(`mesh "%s": %d vertices, %d tex coords, %d normals, %d faces`,
		m.Name, len(m.Vertices), len(m.TexCoords), len(m.Normals), len(m.Faces))

	return m, nil
}

// Return the statement keyword of a trimmed obj line. Keyword-only lines
// carry no data and yield an empty keyword.
func keyword(line string) string {
	if cut := strings.IndexAny(line, " \t"); cut != -1 {
		return line[:cut]
	}
	return ""
}
