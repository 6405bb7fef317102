// Package stream implements lazy pull streams.
//
// A Stream pulls from a Source through a step function. Pulling is
// synchronous: a downstream pull calls into its upstream on the same call
// stack. The end of a stream is signaled by returning ErrEnd, which is
// distinct from any failure of the computation.
package stream

import (
	"errors"

	"github.com/tevino/abool/v2"
)

// ErrEnd is returned by Next when a stream has no more values.
var ErrEnd = errors.New("end of stream")

// Source is something a stream can pull values from. Next returns ErrEnd when
// there are no more values.
type Source interface {
	Next() (any, error)
}

// State is the private state of a stream. It persists across pulls of the
// same stream and is not shared with its source.
type State = map[string]any

// StepFunc computes the next value of a stream from its source and state.
type StepFunc func(src Source, st State) (any, error)

// Forward is the default step function. It pulls one value from the source.
func Forward(src Source, _ State) (any, error) { return src.Next() }

// Stream is a lazy, single-consumer sequence of values.
type Stream struct {
	source  Source
	step    StepFunc
	state   State
	onClose func()
	closed  *abool.AtomicBool
}

// New creates a Stream. A nil step means Forward; onClose may be nil.
func New(src Source, step StepFunc, onClose func()) *Stream {
	if step == nil {
		step = Forward
	}
	return &Stream{src, step, State{}, onClose, abool.NewBool(false)}
}

// Next pulls the next value. The first time the stream ends, it is closed.
func (s *Stream) Next() (any, error) {
	v, err := s.step(s.source, s.state)
	if err != nil {
		if errors.Is(err, ErrEnd) {
			s.Close()
			return nil, ErrEnd
		}
		return nil, err
	}
	return v, nil
}

// Close runs the close callback, at most once over the lifetime of the
// stream.
func (s *Stream) Close() {
	if s.closed.SetToIf(false, true) && s.onClose != nil {
		s.onClose()
	}
}

// Closed reports whether the stream has been closed.
func (s *Stream) Closed() bool { return s.closed.IsSet() }

// Kind returns "stream".
func (s *Stream) Kind() string { return "stream" }

type sliceSource struct {
	values []any
	i      int
}

func (s *sliceSource) Next() (any, error) {
	if s.i >= len(s.values) {
		return nil, ErrEnd
	}
	v := s.values[s.i]
	s.i++
	return v, nil
}

// FromSlice returns a stream of the values.
func FromSlice(values []any) *Stream {
	return New(&sliceSource{values: values}, nil, nil)
}

// From coerces a value to a stream. Streams are returned as is, a []any
// becomes a stream of its elements, and any other value becomes a stream of
// one value.
func From(v any) *Stream {
	switch v := v.(type) {
	case *Stream:
		return v
	case []any:
		return FromSlice(v)
	default:
		return FromSlice([]any{v})
	}
}

// Collect drains the source into a slice.
func Collect(src Source) ([]any, error) {
	var values []any
	err := ForEach(src, func(v any) error {
		values = append(values, v)
		return nil
	})
	return values, err
}

// ForEach calls f with each value of the source until the source ends or
// either the source or f fails.
func ForEach(src Source, f func(any) error) error {
	for {
		v, err := src.Next()
		if err != nil {
			if errors.Is(err, ErrEnd) {
				return nil
			}
			return err
		}
		if err := f(v); err != nil {
			return err
		}
	}
}
