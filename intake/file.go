package intake

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"photo-board/board"
)

type osFile struct {
	path string
}

// FromPath wraps a file on disk.
func FromPath(p string) board.File {
	return osFile{path: p}
}

func (f osFile) Name() string                 { return filepath.Base(f.path) }
func (f osFile) Open() (io.ReadCloser, error) { return os.Open(f.path) }

type fsFile struct {
	fsys fs.FS
	name string
}

// FromFS wraps a file inside fsys, such as the files dropped onto the window.
func FromFS(fsys fs.FS, name string) board.File {
	return fsFile{fsys: fsys, name: name}
}

func (f fsFile) Name() string                 { return path.Base(f.name) }
func (f fsFile) Open() (io.ReadCloser, error) { return f.fsys.Open(f.name) }

// FilesIn lists the regular files at the top of fsys.
func FilesIn(fsys fs.FS) ([]board.File, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var out []board.File
	for _, e := range entries {
		if e.Type().IsRegular() {
			out = append(out, FromFS(fsys, e.Name()))
		}
	}
	return out, nil
}
