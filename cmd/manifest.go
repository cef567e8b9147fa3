package cmd

import (
	"fmt"
	"io"

	"github.com/achilleasa/objmerge/asset"
	"github.com/achilleasa/objmerge/asset/mesh"
	"github.com/achilleasa/objmerge/asset/mesh/reader"
	"gopkg.in/yaml.v3"
)

// A merge manifest pins the exact merge order instead of relying on the
// sorted directory listing. Inputs may be local paths or http(s) URLs and
// are resolved relative to the manifest location.
type manifest struct {
	Inputs []string `yaml:"inputs"`
	Output string   `yaml:"output"`
}

// Read all meshes referenced by a yaml manifest, in manifest order. Returns
// the meshes together with the manifest's output path (may be empty).
func readManifestMeshes(manifestFile string) ([]*mesh.Mesh, string, error) {
	res, err := asset.NewResource(manifestFile, nil)
	if err != nil {
		return nil, "", err
	}
	defer res.Close()

	data, err := io.ReadAll(res)
	if err != nil {
		return nil, "", fmt.Errorf(`manifest "%s": %s`, res.Path(), err.Error())
	}

	var man manifest
	if err = yaml.Unmarshal(data, &man); err != nil {
		return nil, "", fmt.Errorf(`manifest "%s": %s`, res.Path(), err.Error())
	}
	if len(man.Inputs) == 0 {
		return nil, "", fmt.Errorf(`manifest "%s": no inputs defined`, res.Path())
	}

	meshes := make([]*mesh.Mesh, 0, len(man.Inputs))
	for _, input := range man.Inputs {
		m, err := reader.ReadMesh(input, res)
		if err != nil {
			return nil, "", err
		}
		meshes = append(meshes, m)
	}
	return meshes, man.Output, nil
}
