// Package stack implements the fixed capacity call return address stack.
package stack

import (
	"github.com/retroenv/retrochip8/internal/vmerror"
)

// DefaultDepth is the historical stack depth.
const DefaultDepth = 16

// Stack is a LIFO of return addresses over a fixed size array.
type Stack struct {
	entries []uint16
	sp      int
}

// New returns an empty stack with the given capacity.
func New(depth int) *Stack {
	return &Stack{
		entries: make([]uint16, depth),
	}
}

// Push adds an address. A push onto a full stack fails with a StackOverflow
// exception and leaves the stack unmodified.
func (s *Stack) Push(address uint16) error {
	if s.sp == len(s.entries) {
		return vmerror.New(vmerror.StackOverflow, "push of $%04X exceeds stack depth %d", address, len(s.entries))
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed address. A pop from an
// empty stack fails with a StackUnderflow exception.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, vmerror.New(vmerror.StackUnderflow, "return with empty stack")
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Pointer returns the stack pointer, the number of stored addresses.
func (s *Stack) Pointer() uint8 {
	return uint8(s.sp)
}

// Len returns the number of stored addresses.
func (s *Stack) Len() int {
	return s.sp
}

// Cap returns the stack depth.
func (s *Stack) Cap() int {
	return len(s.entries)
}

// Entries returns a copy of the stored addresses, the oldest first.
func (s *Stack) Entries() []uint16 {
	return append([]uint16(nil), s.entries[:s.sp]...)
}

// Reset empties the stack.
func (s *Stack) Reset() {
	clear(s.entries)
	s.sp = 0
}
