package model

// Path represents a file system path.
type Path string

// File represents a source file with its raw contents.
type File struct {
	Path    Path
	Content []byte
}
