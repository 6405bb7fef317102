package stream

import (
	"bufio"
	"io"
	"strings"

	"github.com/edwingeng/deque"
)

const windowKey = "window"

// Window returns a step function for a sliding window of the given size. The
// first pull fills the window with size values; each later pull drops the
// oldest value and pulls one more. Each pull returns a new []any.
func Window(size int) StepFunc {
	return func(src Source, st State) (any, error) {
		buf, ok := st[windowKey].(deque.Deque)
		if !ok {
			buf = deque.NewDeque()
			for i := 0; i < size; i++ {
				v, err := src.Next()
				if err != nil {
					return nil, err
				}
				buf.PushBack(v)
			}
			st[windowKey] = buf
			return snapshot(buf), nil
		}
		v, err := src.Next()
		if err != nil {
			return nil, err
		}
		buf.PopFront()
		buf.PushBack(v)
		return snapshot(buf), nil
	}
}

// Copies the content of the deque by rotating it once.
func snapshot(buf deque.Deque) []any {
	n := buf.Len()
	values := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v := buf.Front()
		buf.PopFront()
		values = append(values, v)
		buf.PushBack(v)
	}
	return values
}

type lineSource struct {
	scanner *bufio.Scanner
}

func (s lineSource) Next() (any, error) {
	if s.scanner.Scan() {
		return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, ErrEnd
}

// FromReader returns a stream of the lines read from r, without line
// terminators. When the stream ends, onClose is called.
func FromReader(r io.Reader, onClose func()) *Stream {
	return New(lineSource{bufio.NewScanner(r)}, nil, onClose)
}
