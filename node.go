// SPDX-License-Identifier: MIT
package yamlite

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Node is a parsed document element: a Scalar, Sequence or Mapping.
	//
	// Nodes are not modified once returned by a parse operation.
	Node interface {
		fmt.Stringer

		node()
	}

	// Scalar is an untyped leaf value.
	Scalar string

	// Sequence is an ordered list of Nodes.
	Sequence []Node

	// Mapping associates unique keys to Nodes.
	Mapping map[string]Node
)

func (Scalar) node()   {}
func (Sequence) node() {}
func (Mapping) node()  {}

// String is the fmt.Stringer implementation for Scalar.
func (s Scalar) String() string { return strconv.Quote(string(s)) }

// String is the fmt.Stringer implementation for Sequence.
func (s Sequence) String() string {
	var buffer strings.Builder

	buffer.WriteByte('[')
	for index, item := range s {
		if index > 0 {
			buffer.WriteString(", ")
		}
		buffer.WriteString(nodeString(item))
	}
	buffer.WriteByte(']')

	return buffer.String()
}

// String is the fmt.Stringer implementation for Mapping.
//
// Keys are rendered in sorted order.
func (m Mapping) String() string {
	var buffer strings.Builder

	buffer.WriteByte('{')
	for index, key := range m.Keys() {
		if index > 0 {
			buffer.WriteString(", ")
		}
		fmt.Fprintf(&buffer, "%q: %s", key, nodeString(m[key]))
	}
	buffer.WriteByte('}')

	return buffer.String()
}

// Keys lists the Mapping's keys in sorted order.
func (m Mapping) Keys() []string {
	keys := maps.Keys(m)
	slices.Sort(keys)

	return keys
}

// Lookup walks a Node along a path of mapping keys & sequence indices.
func Lookup(n Node, path ...string) (Node, bool) {
	for _, step := range path {
		switch v := n.(type) {
		case Mapping:
			child, ok := v[step]
			if !ok {
				return nil, false
			}
			n = child
		case Sequence:
			index, err := strconv.Atoi(step)
			if err != nil || index < 0 || index >= len(v) {
				return nil, false
			}
			n = v[index]
		default:
			return nil, false
		}
	}

	return n, n != nil
}

// ToValue projects a Node onto plain Go values.
//
// Scalars become string, Sequences []any & Mappings map[string]any; nil yields nil.
func ToValue(n Node) any {
	switch v := n.(type) {
	case Scalar:
		return string(v)
	case Sequence:
		list := make([]any, len(v))
		for index := range v {
			list[index] = ToValue(v[index])
		}
		return list
	case Mapping:
		m := make(map[string]any, len(v))
		for key, child := range v {
			m[key] = ToValue(child)
		}
		return m
	default:
		return nil
	}
}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}

	return n.String()
}
