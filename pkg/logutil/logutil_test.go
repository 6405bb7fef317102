package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	GetLogger("test").Debugw("hello", "k", 1)

	out := buf.String()
	if !strings.Contains(out, "test") || !strings.Contains(out, "hello") {
		t.Errorf("log output %q does not contain name and message", out)
	}
}

func TestSetOutputFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	GetLogger("file").Infof("to file %d", 42)
	SetOutput(io.Discard)

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file 42") {
		t.Errorf("log file content %q", data)
	}
}

func TestSetOutputFile_Empty(t *testing.T) {
	if err := SetOutputFile(""); err != nil {
		t.Errorf("SetOutputFile(\"\") -> %v", err)
	}
}
