package main

import (
	"os"

	"github.com/achilleasa/objmerge/cmd"
	"github.com/achilleasa/objmerge/log"
	"github.com/urfave/cli"
)

var logger = log.New("objmerge")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "objmerge"
	app.Usage = "concatenate wavefront obj meshes into a single file"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "merge",
			Usage: "merge all obj files in a directory into a single obj file",
			Description: `
Concatenate every .obj file found directly inside the input directory into a
single obj file. Each source file is emitted as a separate object/group so
that importers can split the merged file back into sub-objects. All face
indices are shifted by the vertex/texcoord/normal counts of the previously
merged files so references stay valid.

Wavefront obj has no pivot or transform concept; each mesh's vertices must
already be positioned where you want them in the merged scene.`,
			ArgsUsage: "<input_dir> [output_file]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "manifest, m",
					Usage: "merge the inputs listed in a yaml manifest instead of scanning a directory",
				},
			},
			Action: cmd.MergeMeshes,
		},
		{
			Name:      "info",
			Usage:     "display statement counts for obj files without merging them",
			ArgsUsage: "<file.obj|directory>",
			Action:    cmd.ShowMeshInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
