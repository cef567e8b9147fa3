package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/achilleasa/objmerge/asset/mesh"
)

// Render one mesh as an object/group block: o/g statements generated from the
// mesh name followed by the vertex, tex coord and normal statements copied
// verbatim and the face statements renumbered against the supplied offsets.
// Returns the offsets advanced by this mesh's element counts.
func renderMesh(w io.Writer, msh *mesh.Mesh, offsets mesh.Offsets) (mesh.Offsets, error) {
	var buf strings.Builder

	buf.WriteString("o " + msh.Name + "\n")
	buf.WriteString("g " + msh.Name + "\n")

	// Coordinate statements carry no cross-mesh indices; copy them as is.
	for _, v := range msh.Vertices {
		buf.WriteString(v + "\n")
	}
	for _, vt := range msh.TexCoords {
		buf.WriteString(vt + "\n")
	}
	for _, vn := range msh.Normals {
		buf.WriteString(vn + "\n")
	}

	for _, face := range msh.Faces {
		renumbered, err := renumberFace(face, offsets)
		if err != nil {
			return offsets, fmt.Errorf(`mesh "%s": %s`, msh.Name, err.Error())
		}
		buf.WriteString(renumbered + "\n")
	}

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return offsets, err
	}
	return offsets.Add(msh.Counts()), nil
}

// Renumber a face statement by shifting each index field with the matching
// offset. Face arguments use the following formats:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
func renumberFace(line string, offsets mesh.Offsets) (string, error) {
	tokens := strings.Fields(line)[1:] // skip the "f" keyword
	renumbered := make([]string, len(tokens))

	var err error
	for arg, token := range tokens {
		renumbered[arg], err = renumberFaceArg(token, offsets)
		if err != nil {
			return "", fmt.Errorf("face argument %d: %s", arg, err.Error())
		}
	}

	return "f " + strings.Join(renumbered, " "), nil
}

// Renumber a single face argument. An empty index field stays empty so the
// slash-separated field positions survive the rewrite; in particular
// vertexIndex//normalIndex keeps its double slash instead of collapsing to
// the malformed vertexIndex/normalIndex form.
func renumberFaceArg(token string, offsets mesh.Offsets) (string, error) {
	fields := strings.Split(token, "/")

	vIdx, err := shiftIndex(fields, 0, offsets.Vertex)
	if err != nil {
		return "", fmt.Errorf("could not parse vertex index: %s", err.Error())
	}
	tIdx, err := shiftIndex(fields, 1, offsets.TexCoord)
	if err != nil {
		return "", fmt.Errorf("could not parse tex coord index: %s", err.Error())
	}
	nIdx, err := shiftIndex(fields, 2, offsets.Normal)
	if err != nil {
		return "", fmt.Errorf("could not parse normal index: %s", err.Error())
	}

	switch {
	case tIdx == "" && nIdx == "":
		return vIdx, nil
	case nIdx == "":
		return vIdx + "/" + tIdx, nil
	default:
		return vIdx + "/" + tIdx + "/" + nIdx, nil
	}
}

// Shift the 1-based index in fields[pos] by offset. Absent and empty fields
// are returned as the empty string, not defaulted to the offset alone.
func shiftIndex(fields []string, pos, offset int) (string, error) {
	if pos >= len(fields) || fields[pos] == "" {
		return "", nil
	}

	idx, err := strconv.Atoi(fields[pos])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(idx + offset), nil
}
