package lexicon

import (
	"errors"
	"fmt"
)

const (
	stageStart = "start"
	stageEnd   = "end"
)

var (
	ErrNullArg    = errors.New("required argument is nil")
	ErrIndexRange = errors.New("index range out of bounds")
	ErrNoMoreKeys = errors.New("there are no more keys in the lexicon")
)

type (
	// Key is the UTF-8 encoding of a string. A nil Key stands for a missing
	// argument, while Key{} is the empty string.
	Key []byte

	lexicon struct {
		root *node
		size int
		opts Options
	}

	node struct {
		key         Key
		left, right *node
	}

	iterator struct {
		stack []*node
	}
)

// ArgError names the argument of Op that was rejected.
type ArgError struct {
	Op  string
	Arg string
	Err error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("lexicon: %s: %s: %s", e.Op, e.Arg, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

func nullArg(op, arg string) error {
	return &ArgError{Op: op, Arg: arg, Err: ErrNullArg}
}

// InvariantError is the panic value raised when a lexicon is found
// malformed at the start or end of an operation.
type InvariantError struct {
	Op    string
	Stage string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("lexicon: invariant false at %s of %s", e.Stage, e.Op)
}

func newNode(key Key) *node {
	return &node{key: key.clone()}
}

func (k Key) clone() Key {
	if k == nil {
		return nil
	}
	return append(Key{}, k...)
}

func (k Key) String() string {
	return string(k)
}
