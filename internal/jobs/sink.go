package jobs

import (
	"os"
	"sync"
)

// Sink is an append-only destination for job output lines. Jobs never own
// file handles; they write through whatever sink the app injects.
type Sink interface {
	Append(line string) error
}

type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (fs *FileSink) Append(line string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, err := os.OpenFile(fs.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line + "\n")
	return err
}
