package tu

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads the dataset called name from directory root. The dataset's files
// are expected in root/name/, the layout of an extracted TU archive.
func Load(root string, name string) (*Dataset, error) {
	return LoadFS(os.DirFS(filepath.Join(root, name)), name)
}

// LoadFS reads the dataset called name from the root of fsys. All the files
// are read before the dataset is assembled. No partial result is returned on
// error.
func LoadFS(fsys fs.FS, name string) (*Dataset, error) {
	var raw RawArrays
	var err error

	if raw.GraphIndicator, err = ReadArray(fsys, name, FieldGraphIndicator, ParseInt); err != nil {
		return nil, err
	}
	if raw.GraphIndicator == nil {
		return nil, fmt.Errorf("dataset %s: %w (%s)", name, ErrNoGraphIndicator, FieldGraphIndicator.FileName(name))
	}
	if raw.Edges, err = ReadArray(fsys, name, FieldEdges, ParseInt); err != nil {
		return nil, err
	}
	if raw.NodeLabels, err = ReadArray(fsys, name, FieldNodeLabels, ParseInt); err != nil {
		return nil, err
	}
	if raw.EdgeLabels, err = ReadArray(fsys, name, FieldEdgeLabels, ParseInt); err != nil {
		return nil, err
	}
	if raw.NodeAttributes, err = ReadArray(fsys, name, FieldNodeAttributes, ParseFloat32); err != nil {
		return nil, err
	}
	if raw.GraphLabels, err = ReadArray(fsys, name, FieldGraphLabels, ParseInt); err != nil {
		return nil, err
	}

	return Assemble(name, raw)
}
