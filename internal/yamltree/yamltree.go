// Package yamltree loads YAML documents into path trees.
//
// Mapping keys and sequence indexes become path segments and scalars become values:
//
//	users:
//	  john: {profile: P}   ->   users/john/profile = P
//	  jane: [a, b]         ->   users/jane/0 = a, users/jane/1 = b
//
// A null scalar keeps its path with an empty value. A document consisting of a single scalar
// sets the root value.
package yamltree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/aglyzov/go-pathtree/pathtree"
)

const nullTag = "!!null"

// Load decodes every document of the stream. Later documents override the values of the
// earlier ones.
func Load(r io.Reader) (*pathtree.Tree[string], error) {
	var (
		dec  = yaml.NewDecoder(r)
		tree = pathtree.New[string]()
	)

	for i := 0; ; i++ {
		var doc yaml.Node

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return tree, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not parse document %d: %w", i, err)
		}

		next := pathtree.New[string]()
		if err := walk(next, nil, &doc); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}

		tree = tree.Merging(next, pathtree.KeepLast[string])
	}
}

// LoadFile is Load for a named file.
func LoadFile(path string) (*pathtree.Tree[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tree, nil
}

func walk(tree *pathtree.Tree[string], path []string, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if err := walk(tree, path, c); err != nil {
				return err
			}
		}

	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: unsupported mapping key of kind %d", key.Line, key.Kind)
			}
			if err := walk(tree, append(path[:len(path):len(path)], key.Value), n.Content[i+1]); err != nil {
				return err
			}
		}

	case yaml.SequenceNode:
		for i, c := range n.Content {
			if err := walk(tree, append(path[:len(path):len(path)], strconv.Itoa(i)), c); err != nil {
				return err
			}
		}

	case yaml.AliasNode:
		return walk(tree, path, n.Alias)

	case yaml.ScalarNode:
		if n.ShortTag() == nullTag {
			tree.Set(path, "")
		} else {
			tree.Set(path, n.Value)
		}
	}

	return nil
}
