package cmd

import (
	"errors"
	"os"

	"github.com/achilleasa/objmerge/asset/mesh"
	"github.com/achilleasa/objmerge/asset/mesh/reader"
	"github.com/urfave/cli"
)

// Display statement counts for an obj file or for all obj files in a
// directory without merging anything.
func ShowMeshInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		cli.ShowCommandHelp(ctx, "info")
		return errors.New("missing obj file or directory argument")
	}

	target := ctx.Args().First()
	fi, err := os.Stat(target)
	if err != nil {
		return err
	}

	var meshes []*mesh.Mesh
	if fi.IsDir() {
		meshes, err = readMeshDir(target)
	} else {
		var m *mesh.Mesh
		m, err = reader.ReadMesh(target, nil)
		meshes = append(meshes, m)
	}
	if err != nil {
		return err
	}

	displayMeshStats(meshes)
	return nil
}
