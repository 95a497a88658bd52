package working_dir

import (
	"fasta-fetcher-workers/src/lib/cerr"
	"os"
	"path/filepath"
)

type WorkingDir struct {
	root string
}

// NewWorkingDir creates root and any missing parents. An existing directory
// is left as is.
func NewWorkingDir(root string) (WorkingDir, error) {
	if root == "" {
		return WorkingDir{}, cerr.Error("Working directory path is empty")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return WorkingDir{}, cerr.Field("root", root).Wrap(err).Error("Failed to generate absolute path for working directory")
	}

	if err := os.MkdirAll(absRoot, os.ModePerm); err != nil {
		return WorkingDir{}, cerr.Field("root", absRoot).Wrap(err).Error("Failed to create working directory")
	}

	return WorkingDir{
		root: absRoot,
	}, nil
}

func (w WorkingDir) Root() string {
	return w.root
}

func (w WorkingDir) FilePath(name string) string {
	return filepath.Join(w.root, name)
}
