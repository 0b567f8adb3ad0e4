package catalog

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"lon/internal/color"
)

//go:embed data/tcx.json data/solid_coated.json
var bundled embed.FS

// Source provides the raw bytes of a library resource.
type Source interface {
	Open(library color.Library) ([]byte, error)
}

// ResourceName returns the file name a library is stored under.
func ResourceName(library color.Library) string {
	switch library {
	case color.FashionHomeTCX:
		return "tcx.json"
	case color.SolidCoated:
		return "solid_coated.json"
	default:
		return library.Key() + ".json"
	}
}

type fsSource struct {
	fsys fs.FS
	dir  string
}

// EmbeddedSource reads the libraries compiled into the binary.
func EmbeddedSource() Source {
	return fsSource{fsys: bundled, dir: "data"}
}

// DirSource reads tcx.json and solid_coated.json from dir.
func DirSource(dir string) Source {
	return fsSource{fsys: os.DirFS(dir), dir: "."}
}

// FSSource reads the library resources from the root of fsys.
func FSSource(fsys fs.FS) Source {
	return fsSource{fsys: fsys, dir: "."}
}

func (s fsSource) Open(library color.Library) ([]byte, error) {
	return fs.ReadFile(s.fsys, path.Join(s.dir, ResourceName(library)))
}
