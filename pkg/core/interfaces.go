package core

import "fmt"

// Logger interface for kernel and renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// ContractError describes a call that violated an operation's precondition,
// such as taking the magnitude of a point. It is only ever used as a panic value.
type ContractError struct {
	Op    string // Operation that was called
	Value Tuple  // Offending operand
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: tuple must be a vector, got %v (w=%g)", e.Op, e.Value, e.Value.W)
}

// requireVector panics with a ContractError unless t is a vector
func requireVector(op string, t Tuple) {
	if !t.IsVector() {
		panic(&ContractError{Op: op, Value: t})
	}
}
