// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import "fmt"

func NewCycleError(key string) error {
	return &CycleError{Key: key}
}

func NewMissingKeyError(op, key string) error {
	return &MissingKeyError{Op: op, Key: key}
}

func NewInvalidArgumentError(op, expected string) error {
	return &InvalidArgumentError{Op: op, Expected: expected}
}

func NewUnknownTypeError(typeName string) error {
	return &UnknownTypeError{Type: typeName}
}

// CycleError indicates that a chain of '$ref' expansions returned to a
// key whose own resolution was still in progress.
type CycleError struct {
	Key string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("Detected reference cycle on key '%s'", e.Key)
}

// MissingKeyError indicates a lookup miss: a '$ref' naming an absent
// toplevel key, or a '$env' naming an absent variable with no default.
type MissingKeyError struct {
	Op  string
	Key string
}

func (e MissingKeyError) Error() string {
	if e.Op == envOp {
		return fmt.Sprintf("Expected to find '%s' in environment (no default provided)", e.Key)
	}
	return fmt.Sprintf("Expected to find key '%s' in toplevel template (via '%s')", e.Key, e.Op)
}

// InvalidArgumentError indicates an operator argument of the wrong
// shape or arity.
type InvalidArgumentError struct {
	Op       string
	Expected string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument for '%s': expected %s", e.Op, e.Expected)
}

// UnknownTypeError indicates a '$env' type field outside the fixed
// conversion set.
type UnknownTypeError struct {
	Type string
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("Unknown type '%s' for '%s' (expected one of: str, int, float, bool)", e.Type, envOp)
}
