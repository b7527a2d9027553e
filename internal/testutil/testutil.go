// Package testutil provides in-memory pipeline file fixtures for tests.
package testutil

// MemFile is a minimal in-memory pipeline file. It satisfies
// remember.File without importing it.
type MemFile struct {
	FilePath   string
	Contents   []byte
	PriorPaths []string
}

// NewMemFile returns a file at path carrying contents, with a
// single-element history equal to path.
func NewMemFile(path string, contents []byte) *MemFile {
	return &MemFile{
		FilePath:   path,
		Contents:   contents,
		PriorPaths: []string{path},
	}
}

// NewRenamedFile returns a file at path whose history records the paths
// it was previously known by, ending with path itself.
func NewRenamedFile(path string, contents []byte, prior ...string) *MemFile {
	return &MemFile{
		FilePath:   path,
		Contents:   contents,
		PriorPaths: append(append([]string{}, prior...), path),
	}
}

// NewBareFile returns a file that reports no history at all, for
// exercising history normalization.
func NewBareFile(path string, contents []byte) *MemFile {
	return &MemFile{FilePath: path, Contents: contents}
}

// Path implements the pipeline file contract.
func (f *MemFile) Path() string {
	return f.FilePath
}

// History implements the pipeline file contract.
func (f *MemFile) History() []string {
	return f.PriorPaths
}
