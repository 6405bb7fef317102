// Package errs declares error types used as exception reasons.
package errs

import (
	"fmt"
	"strconv"
)

// OutOfRange encodes an error where a value is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  string
	ValidHigh string
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if less(e.ValidHigh, e.ValidLow) {
		return fmt.Sprintf(
			"out of range: %v has no valid value, but is %v", e.What, e.Actual)
	}
	return fmt.Sprintf(
		"out of range: %s must be from %s to %s, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// Compares numerically when both strings are numbers.
func less(a, b string) bool {
	x, errX := strconv.ParseFloat(a, 64)
	y, errY := strconv.ParseFloat(b, 64)
	if errX == nil && errY == nil {
		return x < y
	}
	return a < b
}

// BadValue encodes an error where the value does not meet a requirement. For
// out-of-range errors, use OutOfRange.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return fmt.Sprintf(
		"bad value: %v must be %v, but is %v", e.What, e.Valid, e.Actual)
}

// ArityMismatch encodes an error where the expected number of values is out of
// the valid range. A negative ValidHigh means no upper bound.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %v must be %v, but is %v",
			e.What, nValues(e.ValidLow), nValues(e.Actual))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %v must be %v or more values, but is %v",
			e.What, e.ValidLow, nValues(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %v must be %v to %v values, but is %v",
			e.What, e.ValidLow, e.ValidHigh, nValues(e.Actual))
	}
}

func nValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}

// NoCompiler is returned when a node has no compiler. It indicates a node type
// that the evaluator does not know about.
type NoCompiler struct {
	NodeType string
}

func (e NoCompiler) Error() string {
	return "no compiler for node type " + e.NodeType
}

// BadOperator is returned for an operator that the evaluator does not know.
type BadOperator struct {
	Op string
}

func (e BadOperator) Error() string {
	return "unknown operator " + e.Op
}

// BadOperand is returned when an operator does not support the kinds of its
// operands.
type BadOperand struct {
	Op    string
	Left  string
	Right string
}

func (e BadOperand) Error() string {
	return fmt.Sprintf("unsupported operands for %s: %s and %s", e.Op, e.Left, e.Right)
}

// NotAssignable is returned when assigning to something that is not a
// variable or a property.
type NotAssignable struct {
	What string
}

func (e NotAssignable) Error() string {
	return "cannot assign to " + e.What + ", must be a variable or property"
}

// NotCallable is returned when calling a value that is not a function.
type NotCallable struct {
	Kind string
}

func (e NotCallable) Error() string {
	return "cannot call a value of kind " + e.Kind
}

// UnboundVariable is returned when looking up a name that is not bound in any
// enclosing scope.
type UnboundVariable struct {
	Name string
}

func (e UnboundVariable) Error() string {
	return "variable " + e.Name + " not found"
}

// DimensionMismatch is returned by element-wise operations on vectors of
// different dimensions.
type DimensionMismatch struct {
	Op    string
	Left  int
	Right int
}

func (e DimensionMismatch) Error() string {
	return fmt.Sprintf(
		"vector dimension mismatch, cannot %s vector of dimension %d with %d",
		e.Op, e.Left, e.Right)
}
