package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/achilleasa/objmerge/asset/mesh"
	"github.com/achilleasa/objmerge/asset/mesh/reader"
	"github.com/achilleasa/objmerge/asset/mesh/writer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

const defaultOutputFile = "merged_output.obj"

// Merge obj files into a single obj file.
//
// Inputs come either from scanning a directory for .obj files or, when the
// manifest flag is set, from an explicitly ordered yaml manifest.
func MergeMeshes(ctx *cli.Context) error {
	setupLogging(ctx)

	var (
		meshes    []*mesh.Mesh
		inputDesc string
		outFile   = defaultOutputFile
		err       error
	)

	if manifestFile := ctx.String("manifest"); manifestFile != "" {
		var manifestOut string
		meshes, manifestOut, err = readManifestMeshes(manifestFile)
		if err != nil {
			return err
		}
		if manifestOut != "" {
			outFile = manifestOut
		}
		inputDesc = manifestFile
	} else {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "merge")
			return errors.New("missing input directory argument")
		}

		inputDir := ctx.Args().First()
		meshes, err = readMeshDir(inputDir)
		if err != nil {
			return err
		}
		if ctx.NArg() > 1 {
			outFile = ctx.Args().Get(1)
		}
		inputDesc = inputDir
	}

	if len(meshes) == 0 {
		logger.Warningf(`no obj meshes found in "%s"; output will only contain the file header`, inputDesc)
	}

	if err = writer.MergeMeshes(meshes, outFile); err != nil {
		return err
	}

	displayMeshStats(meshes)
	logger.Noticef(`merged %d meshes from "%s" into "%s"`, len(meshes), inputDesc, outFile)
	return nil
}

// Read all obj meshes found directly inside inputDir. Merge order is the
// ascending file name order, independent of the directory iteration order.
func readMeshDir(inputDir string) ([]*mesh.Mesh, error) {
	files, err := enumerateMeshFiles(inputDir)
	if err != nil {
		return nil, err
	}

	meshes := make([]*mesh.Mesh, 0, len(files))
	for _, file := range files {
		m, err := reader.ReadMesh(filepath.Join(inputDir, file), nil)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// List the regular *.obj files (case-insensitive) directly inside inputDir
// sorted by ascending file name.
func enumerateMeshFiles(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".obj") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// Display a statement count table for the given meshes.
func displayMeshStats(meshes []*mesh.Mesh) {
	var buf bytes.Buffer
	var total mesh.Offsets
	totalFaces := 0

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Mesh", "Vertices", "Tex coords", "Normals", "Faces"})
	for _, msh := range meshes {
		counts := msh.Counts()
		table.Append([]string{
			msh.Name,
			fmt.Sprintf("%d", counts.Vertex),
			fmt.Sprintf("%d", counts.TexCoord),
			fmt.Sprintf("%d", counts.Normal),
			fmt.Sprintf("%d", len(msh.Faces)),
		})
		total = total.Add(counts)
		totalFaces += len(msh.Faces)
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", total.Vertex),
		fmt.Sprintf("%d", total.TexCoord),
		fmt.Sprintf("%d", total.Normal),
		fmt.Sprintf("%d", totalFaces),
	})

	table.Render()
	logger.Noticef("mesh statistics\n%s", buf.String())
}
