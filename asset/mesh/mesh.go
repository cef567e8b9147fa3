package mesh

// Mesh holds the raw statements of a single wavefront obj file grouped by
// statement kind. Statement text is stored verbatim (whitespace-trimmed);
// coordinate values are never interpreted.
type Mesh struct {
	// Mesh name; used for the generated o/g statements in merged output.
	Name string

	// Vertex (v), texture coordinate (vt) and normal (vn) statements in
	// the order they were encountered.
	Vertices  []string
	TexCoords []string
	Normals   []string

	// Face (f) statements in the order they were encountered. Face indices
	// are 1-based and local to this mesh.
	Faces []string
}

// Create a new named mesh.
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// Counts returns the number of vertex, texture coordinate and normal
// statements in this mesh as an Offsets value.
func (m *Mesh) Counts() Offsets {
	return Offsets{
		Vertex:   len(m.Vertices),
		TexCoord: len(m.TexCoords),
		Normal:   len(m.Normals),
	}
}

// Offsets tracks how many elements of each kind have been emitted by
// previously merged meshes. Face indices of the next mesh are shifted by
// these counts so they keep referencing the correct elements after
// concatenation.
type Offsets struct {
	Vertex   int
	TexCoord int
	Normal   int
}

// Add returns the sum of two offset values.
func (o Offsets) Add(other Offsets) Offsets {
	return Offsets{
		Vertex:   o.Vertex + other.Vertex,
		TexCoord: o.TexCoord + other.TexCoord,
		Normal:   o.Normal + other.Normal,
	}
}
