package ports

//go:generate mockgen -destination=../mocks/mock_ports.go -package=mocks . FileStore,Globber

// FileStore exposes the temporary file operations driven by the CLI.
type FileStore interface {
	TempPath(prefix string, create bool) (string, error)
	TempPathIn(dir, prefix string, create bool) (string, error)
	WriteBytes(path string, data []byte) error
	AppendBytes(path string, data []byte) error
	ReadBytes(path string) ([]byte, error)
	CleanupFile(path string) error
	RandomBytes(n int) []byte
}

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}
