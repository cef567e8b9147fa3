package reader

import (
	"fmt"
	"strings"

	"github.com/achilleasa/objmerge/asset"
	"github.com/achilleasa/objmerge/asset/mesh"
)

// The Reader interface is implemented by all mesh readers.
type Reader interface {
	// Read mesh data from a resource.
	Read(*asset.Resource) (*mesh.Mesh, error)
}

// Read mesh from a local file or URL.
func ReadMesh(pathToMesh string, relTo *asset.Resource) (*mesh.Mesh, error) {
	res, err := asset.NewResource(pathToMesh, relTo)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if !strings.HasSuffix(strings.ToLower(res.Base()), ".obj") {
		return nil, fmt.Errorf("readMesh: unsupported file format")
	}
	return newWavefrontReader().Read(res)
}
