package installer

import "path/filepath"

// Dirs is the directory layout every stage works against, derived once
// from the configured build directory:
//
//	Root   — the resolved build-dir flag
//	Source — Root/opencv, the cloned tree
//	Build  — Source/build, the out-of-tree CMake build directory
type Dirs struct {
	Root   string
	Source string
	Build  string
}

// NewDirs resolves buildDir to an absolute path and derives the layout.
// The top-level directory is not created here: entering a missing Root
// fails in the source fetcher.
func NewDirs(buildDir string) (Dirs, error) {
	root, err := filepath.Abs(buildDir)
	if err != nil {
		return Dirs{}, err
	}
	source := filepath.Join(root, "opencv")
	return Dirs{
		Root:   root,
		Source: source,
		Build:  filepath.Join(source, "build"),
	}, nil
}
