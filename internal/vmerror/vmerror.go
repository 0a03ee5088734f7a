// Package vmerror contains the exception taxonomy shared by the interpreter
// and the assembler tooling. Every failure is a single tagged value made of a
// code and a bounded descriptive message.
package vmerror

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxMessageSize is the maximum length in bytes of an exception message.
const MaxMessageSize = 256

// Code identifies the kind of an exception. The numeric values are stable.
type Code int

// Exception codes.
const (
	InvalidInstruction           Code = -3
	TooManyLabels                Code = -4
	StackOverflow                Code = -5
	InvalidArgument              Code = -6
	DuplicateLabel               Code = -7
	InvalidSymbol                Code = -8
	MemoryAllocation             Code = -9
	Unknown                      Code = -10
	TooManySymbols               Code = -11
	LoadFileFailure              Code = -12
	FileTooBig                   Code = -13
	InvalidColorPalette          Code = -14
	InvalidQuirk                 Code = -15
	FailedGraphicsInitialization Code = -16
	InvalidFont                  Code = -17
	InvalidClockSpeed            Code = -18
	StackUnderflow               Code = -19
)

// Class groups exception codes by the phase in which they occur.
type Class int

// Exception classes.
const (
	Unclassified Class = iota
	// Configuration failures are detected before execution and are
	// recoverable by supplying a corrected configuration.
	Configuration
	// Execution failures halt the running machine.
	Execution
	Assembler
	// Fatal failures are not recoverable within the session.
	Fatal
)

var codeInfo = map[Code]struct {
	name        string
	description string
	class       Class
}{
	InvalidInstruction:           {"invalid instruction", "An invalid instruction exists in the input file.", Execution},
	TooManyLabels:                {"too many labels", "Too many labels are defined in the input file.", Assembler},
	StackOverflow:                {"stack overflow", "A stack overflow occurred during execution.", Execution},
	InvalidArgument:              {"invalid argument", "An invalid instruction argument was given.", Configuration},
	DuplicateLabel:               {"duplicate label", "A label was defined multiple times.", Assembler},
	InvalidSymbol:                {"invalid symbol", "An invalid symbol exists in the input file.", Assembler},
	MemoryAllocation:             {"memory allocation", "Failed to allocate memory.", Fatal},
	Unknown:                      {"unknown", "An unknown error has occurred.", Unclassified},
	TooManySymbols:               {"too many symbols", "Too many symbols exist in the input file.", Assembler},
	LoadFileFailure:              {"load file failure", "Failed to load file.", Configuration},
	FileTooBig:                   {"file too big", "The given file is too big.", Configuration},
	InvalidColorPalette:          {"invalid color palette", "Invalid color palette.", Configuration},
	InvalidQuirk:                 {"invalid quirk", "Invalid quirk.", Configuration},
	FailedGraphicsInitialization: {"failed graphics initialization", "Failed to initialize graphics.", Fatal},
	InvalidFont:                  {"invalid font", "Invalid font.", Configuration},
	InvalidClockSpeed:            {"invalid clock speed", "Clock speed cannot be less than 1.", Configuration},
	StackUnderflow:               {"stack underflow", "Stack underflow occurred during execution.", Execution},
}

// Codes returns all defined exception codes in declaration order.
func Codes() []Code {
	return []Code{
		InvalidInstruction, TooManyLabels, StackOverflow, InvalidArgument,
		DuplicateLabel, InvalidSymbol, MemoryAllocation, Unknown,
		TooManySymbols, LoadFileFailure, FileTooBig, InvalidColorPalette,
		InvalidQuirk, FailedGraphicsInitialization, InvalidFont,
		InvalidClockSpeed, StackUnderflow,
	}
}

// String returns the short name of the code.
func (c Code) String() string {
	if info, ok := codeInfo[c]; ok {
		return info.name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Description returns the fixed human readable description of the code.
func (c Code) Description() string {
	if info, ok := codeInfo[c]; ok {
		return info.description
	}
	return codeInfo[Unknown].description
}

// Class returns the class of the code.
func (c Code) Class() Class {
	return codeInfo[c].class
}

// Recoverable returns whether the host can recover by supplying a corrected
// configuration.
func (c Code) Recoverable() bool {
	return c.Class() == Configuration
}

// Error is an exception value.
type Error struct {
	Code    Code
	Message string
}

// New returns a new exception with a formatted message. The message is
// truncated to at most MaxMessageSize bytes without splitting a character.
func New(code Code, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > MaxMessageSize {
		end := MaxMessageSize
		for end > 0 && !utf8.RuneStart(msg[end]) {
			end--
		}
		msg = msg[:end]
	}
	return &Error{
		Code:    code,
		Message: msg,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.Description()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an exception with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Is returns whether err is or wraps an exception with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// CodeOf returns the code of the exception wrapped by err. Errors that are not
// exceptions are reported as Unknown.
func CodeOf(err error) Code {
	var e *Error
	if !errors.As(err, &e) {
		return Unknown
	}
	return e.Code
}
