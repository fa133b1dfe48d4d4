package ports

// ScriptWriter publishes compiled script text to the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=script_writer.go -destination=mocks/mock_script_writer.go -package=mocks
type ScriptWriter interface {
	// Write installs the script at path, executable, replacing any previous
	// version atomically.
	Write(path, text string) error
}
