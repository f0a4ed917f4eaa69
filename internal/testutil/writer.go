package testutil

import "errors"

// ErrWrite is returned by FailingWriter.
var ErrWrite = errors.New("write failed")

// FailingWriter is an io.Writer whose every write fails with ErrWrite.
type FailingWriter struct{}

func (FailingWriter) Write([]byte) (int, error) { return 0, ErrWrite }
