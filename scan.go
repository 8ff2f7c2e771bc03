package traitgen

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LoadLayers scans dir for layers: every sub-directory is a layer and
// every image file inside it an element. See LoadLayersFS.
func LoadLayers(dir string) ([]*Layer, error) {
	return LoadLayersFS(os.DirFS(dir), ".")
}

// LoadLayersFS scans root in fsys. Directories and files are ordered with
// locale-aware collation, so "b.png" sorts before "C.png". Element ids
// are assigned in that order starting at 0. Hidden and non-image files
// are ignored and directories without images are skipped. Images are
// decoded lazily during generation.
//
// Layers use default rendering parameters; callers adjust Blend, Opacity,
// DisplayName and BypassDNA afterwards.
func LoadLayersFS(fsys fs.FS, root string) ([]*Layer, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("traitgen: reading layers directory: %w", err)
	}

	col := collate.New(language.Und)
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	col.SortStrings(dirs)

	var layers []*Layer
	for _, name := range dirs {
		dir := path.Join(root, name)
		files, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("traitgen: reading layer %q: %w", name, err)
		}

		var images []string
		for _, f := range files {
			if f.IsDir() || f.Name()[0] == '.' {
				continue
			}
			if !IsImageFile(f.Name()) {
				Logger().Warn("traitgen: skipping non-image file", "layer", name, "file", f.Name())
				continue
			}
			images = append(images, f.Name())
		}
		if len(images) == 0 {
			Logger().Debug("traitgen: skipping layer without images", "layer", name)
			continue
		}
		col.SortStrings(images)

		elements := make([]*Element, len(images))
		for i, file := range images {
			elements[i] = NewElement(i, file, FileSource{FS: fsys, Path: path.Join(dir, file)})
		}
		layers = append(layers, NewLayer(name, elements...))
	}

	Logger().Info("traitgen: layers loaded", "layers", len(layers))
	return layers, nil
}
