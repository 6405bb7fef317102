// Package logutil provides logging utilities.
//
// All loggers share one output, which discards everything until SetOutput or
// SetOutputFile is called. This makes it cheap to sprinkle debug logging in
// packages that are also used as libraries.
package logutil

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sink = &switchSink{w: io.Discard}
	core = zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink, zap.DebugLevel)
	root = zap.New(core)
)

// GetLogger gets a logger with the given name.
func GetLogger(name string) *zap.SugaredLogger {
	return root.Named(name).Sugar()
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(w io.Writer) {
	sink.swap(w)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file. If the file doesn't exist, it is created; otherwise it is
// truncated. An empty name means discarding the output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	SetOutput(file)
	return nil
}

type switchSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchSink) swap(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.w.(*os.File); ok && c != os.Stdout && c != os.Stderr {
		c.Close()
	}
	s.w = w
}

func (s *switchSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(*os.File); ok {
		return f.Sync()
	}
	return nil
}
