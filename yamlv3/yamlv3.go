// SPDX-License-Identifier: MIT

// Package yamlv3 converts yamlite trees into gopkg.in/yaml.v3 nodes.
//
// Scalars are tagged `!!str`, values are never inferred as numbers, booleans or null.
package yamlv3

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/yamlite"
)

const (
	strTag = "!!str"
	seqTag = "!!seq"
	mapTag = "!!map"
)

// ToNode converts a yamlite.Node into a *yaml.Node.
//
// Mapping keys are emitted in sorted order; a nil Node yields nil.
func ToNode(n yamlite.Node) *yaml.Node {
	switch v := n.(type) {
	case yamlite.Scalar:
		return scalar(string(v))
	case yamlite.Sequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: seqTag, Content: make([]*yaml.Node, 0, len(v))}
		for _, item := range v {
			if child := ToNode(item); child != nil {
				out.Content = append(out.Content, child)
			}
		}
		return out
	case yamlite.Mapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: mapTag, Content: make([]*yaml.Node, 0, 2*len(v))}
		for _, key := range v.Keys() {
			if child := ToNode(v[key]); child != nil {
				out.Content = append(out.Content, scalar(key), child)
			}
		}
		return out
	default:
		return nil
	}
}

// Unmarshal parses a document & decodes it into v.
//
// Destinations must accept strings for every scalar; an empty document yields
// yamlite.ErrEmptyDocument. Parsing errors are only returned when yamlite.WithStrict is set.
func Unmarshal(text string, v any, opts ...yamlite.Option) error {
	root, err := yamlite.ParseWith(text, opts...)
	if err != nil {
		return err
	}
	if root == nil {
		return yamlite.ErrEmptyDocument
	}

	if err = ToNode(root).Decode(v); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: value}
}
