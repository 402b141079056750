package logs

import (
	"io"
	"os"
)

// Writer receives terminal output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
