package graph

import (
	"errors"
	"fmt"
)

// ValueType represents the type of a node attribute value
type ValueType uint8

const (
	TypeString ValueType = iota
	TypeInt
	TypeFloat
	TypeBool
)

// Value represents a typed node attribute value. Attribute maps are bounded
// (MaxAttributes per node) so arbitrary upstream columns cannot grow the
// schema unchecked.
type Value struct {
	Type  ValueType
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// Helper functions to create typed values
func StringValue(s string) Value {
	return Value{Type: TypeString, Str: s}
}

func IntValue(i int64) Value {
	return Value{Type: TypeInt, Int: i}
}

func FloatValue(f float64) Value {
	return Value{Type: TypeFloat, Float: f}
}

func BoolValue(b bool) Value {
	return Value{Type: TypeBool, Bool: b}
}

// MaxAttributes is the maximum number of attributes a single node may carry.
const MaxAttributes = 32

// Node is a graph vertex identified by a non-empty string identifier.
type Node struct {
	ID    string
	Attrs map[string]Value
}

// EdgeRecord is one row of the deduplicated edge list supplied by an
// upstream cleaning collaborator. A zero Weight means "unspecified" and
// defaults to 1.0 during construction.
type EdgeRecord struct {
	Source string
	Target string
	Weight float64
}

// ErrInvalidEdge is returned when an edge references a malformed endpoint,
// forms a self-loop, or carries a non-positive weight.
var ErrInvalidEdge = errors.New("invalid edge")

// ErrTooManyAttributes is returned when a node attribute map would exceed
// MaxAttributes.
var ErrTooManyAttributes = fmt.Errorf("node exceeds %d attributes", MaxAttributes)
