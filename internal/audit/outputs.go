package audit

import (
	"fmt"
	"os"
	"path/filepath"
)

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	_ = os.Stdout.Sync()
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// FileOutput appends events to one JSON-lines file per topic under its
// base path, creating files lazily on first write.
type FileOutput struct {
	files    map[string]*os.File
	basePath string
}

func NewFileOutput(basePath string) *FileOutput {
	return &FileOutput{
		files:    make(map[string]*os.File),
		basePath: basePath,
	}
}

func (f *FileOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := f.files[topic]
	if !ok {
		if err := os.MkdirAll(f.basePath, 0o755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
		filename := filepath.Join(f.basePath, topic+".jsonl")
		created, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		f.files[topic] = created
		file = created
	}

	if _, err := file.Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (f *FileOutput) Close() error {
	for topic, file := range f.files {
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close file for topic %s: %w", topic, err)
		}
	}
	return nil
}
