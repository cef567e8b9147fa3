package writer

import (
	"strings"
	"testing"

	"github.com/achilleasa/objmerge/asset/mesh"
)

func TestRenumberFaceArg(t *testing.T) {
	offsets := mesh.Offsets{Vertex: 10, TexCoord: 20, Normal: 30}

	type spec struct {
		in  string
		out string
	}
	specs := []spec{
		{"3", "13"},
		{"3/4", "13/24"},
		{"3/4/5", "13/24/35"},
		// An omitted tex coord must keep its empty field so the normal
		// index stays in the third position.
		{"3//5", "13//35"},
		{"3/4/", "13/24"},
		{"3//", "13"},
		// Negative (relative) indices are shifted as is.
		{"-2", "8"},
		// Fields beyond the third are dropped.
		{"3/4/5/6", "13/24/35"},
	}

	for idx, s := range specs {
		v, err := renumberFaceArg(s.in, offsets)
		if err != nil {
			t.Fatalf("[spec %d] %v", idx, err)
		}
		if v != s.out {
			t.Fatalf("[spec %d] expected face argument to be renumbered to %s; got %s", idx, s.out, v)
		}
	}
}

func TestRenumberFaceArgErrors(t *testing.T) {
	type spec struct {
		in       string
		expError string
	}
	specs := []spec{
		{"x", "could not parse vertex index"},
		{"1/x", "could not parse tex coord index"},
		{"1/2/x", "could not parse normal index"},
		{"1.5", "could not parse vertex index"},
	}

	for idx, s := range specs {
		_, err := renumberFaceArg(s.in, mesh.Offsets{})
		if err == nil || !strings.HasPrefix(err.Error(), s.expError) {
			t.Fatalf("[spec %d] expected error with prefix %q; got %v", idx, s.expError, err)
		}
	}
}

// Older exporters collapsed a "v//n" argument to the malformed "v/n" form
// when rewriting indices, silently turning the normal index into a tex coord
// index. Guard against a regression to the collapsed form.
func TestDoubleSlashIsNotCollapsed(t *testing.T) {
	v, err := renumberFaceArg("7//9", mesh.Offsets{Vertex: 1, TexCoord: 1, Normal: 1})
	if err != nil {
		t.Fatal(err)
	}

	legacyForm := "8/10"
	if v == legacyForm {
		t.Fatalf("face argument collapsed to the legacy %s form; expected 8//10", legacyForm)
	}
	if v != "8//10" {
		t.Fatalf("expected face argument to be renumbered to 8//10; got %s", v)
	}
}

func TestRenumberFace(t *testing.T) {
	offsets := mesh.Offsets{Vertex: 3, TexCoord: 2, Normal: 1}

	type spec struct {
		in  string
		out string
	}
	specs := []spec{
		// Bare vertex indices never gain slashes.
		{"f 1 2 3", "f 4 5 6"},
		{"f 1/1/1 2/2/2 3/3/3", "f 4/3/2 5/4/3 6/5/4"},
		{"f 1//1 2//2 3//3", "f 4//2 5//3 6//4"},
		{"f  1   2  3", "f 4 5 6"},
		{"f 1/1 2/2 3/3 4/4", "f 4/3 5/4 6/5 7/6"},
	}

	for idx, s := range specs {
		v, err := renumberFace(s.in, offsets)
		if err != nil {
			t.Fatalf("[spec %d] %v", idx, err)
		}
		if v != s.out {
			t.Fatalf("[spec %d] expected face statement to be renumbered to %q; got %q", idx, s.out, v)
		}
	}

	expError := "face argument 1: could not parse vertex index"
	_, err := renumberFace("f 1 nope 3", offsets)
	if err == nil || !strings.HasPrefix(err.Error(), expError) {
		t.Fatalf("expected error with prefix %q; got %v", expError, err)
	}
}

func TestRenderMesh(t *testing.T) {
	msh := &mesh.Mesh{
		Name:      "cube",
		Vertices:  []string{"v 0 0 0", "v 1 0 0", "v 0 1 0"},
		TexCoords: []string{"vt 0 0", "vt 1 0"},
		Normals:   []string{"vn 0 0 1"},
		Faces:     []string{"f 1/1/1 2/2/1 3/1/1"},
	}

	var buf strings.Builder
	offsets, err := renderMesh(&buf, msh, mesh.Offsets{Vertex: 10, TexCoord: 5, Normal: 2})
	if err != nil {
		t.Fatal(err)
	}

	expOut := `o cube
g cube
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vn 0 0 1
f 11/6/3 12/7/3 13/6/3
`
	if buf.String() != expOut {
		t.Fatalf("expected rendered block to be:\n%s\ngot:\n%s", expOut, buf.String())
	}

	expOffsets := mesh.Offsets{Vertex: 13, TexCoord: 7, Normal: 3}
	if offsets != expOffsets {
		t.Fatalf("expected advanced offsets to be %+v; got %+v", expOffsets, offsets)
	}
}

// Merging a single mesh at zero offsets must reproduce its statements
// unchanged apart from the generated o/g headers.
func TestRenderMeshZeroOffsetRoundTrip(t *testing.T) {
	msh := &mesh.Mesh{
		Name:     "tri",
		Vertices: []string{"v 0 0 0", "v 1 0 0", "v 0 1 0"},
		Faces:    []string{"f 1 2 3"},
	}

	var buf strings.Builder
	if _, err := renderMesh(&buf, msh, mesh.Offsets{}); err != nil {
		t.Fatal(err)
	}

	expOut := "o tri\ng tri\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if buf.String() != expOut {
		t.Fatalf("expected rendered block to be %q; got %q", expOut, buf.String())
	}
}
