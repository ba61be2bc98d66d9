package testfiles

var std = New()

// Default returns the Files used by the package-level functions. It works on
// the OS filesystem under os.TempDir with a time-seeded random source.
func Default() *Files {
	return std
}

// TempPath calls Default().TempPath.
func TempPath(prefix string, create bool) (string, error) {
	return std.TempPath(prefix, create)
}

// TempPathIn calls Default().TempPathIn.
func TempPathIn(dir, prefix string, create bool) (string, error) {
	return std.TempPathIn(dir, prefix, create)
}

// WriteBytes calls Default().WriteBytes.
func WriteBytes(path string, data []byte) error {
	return std.WriteBytes(path, data)
}

// AppendBytes calls Default().AppendBytes.
func AppendBytes(path string, data []byte) error {
	return std.AppendBytes(path, data)
}

// ReadBytes calls Default().ReadBytes.
func ReadBytes(path string) ([]byte, error) {
	return std.ReadBytes(path)
}

// CleanupFile calls Default().CleanupFile.
func CleanupFile(path string) error {
	return std.CleanupFile(path)
}

// RandomBytes calls Default().RandomBytes.
func RandomBytes(n int) []byte {
	return std.RandomBytes(n)
}
