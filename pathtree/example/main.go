package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aglyzov/go-pathtree/pathtree"
)

func split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func main() {
	tree := pathtree.New[string]()
	tree.Set(split("users"), "All users")
	tree.Set(split("users/john/profile"), "John's profile")
	tree.Set(split("users/john/settings"), "John's settings")
	tree.Set(split("users/jane/photos/1"), "Jane's photo")

	tree.DebugDump(os.Stdout)

	println("------")

	tree.Iter(split("users/john"), func(path []string, val string) bool {
		fmt.Printf("%s = %q\n", strings.Join(path, "/"), val)
		return true
	})

	println("------")

	// persistent changes keep the original intact
	next := tree.Deleting(split("users/john/settings"))
	next = next.Merging(pathtree.New(
		pathtree.Item[string]{Path: split("users/jane/photos/2"), Val: "Another photo"},
	), pathtree.KeepFirst[string])

	next.DebugDump(os.Stdout)
	fmt.Println("original size:", tree.Len(), "new size:", next.Len())

	println("------")

	if sub, ok := next.Traverse(split("users/jane")); ok {
		fmt.Println(sub.Items())
	}

	for _, along := range next.ValuesAlongPath("users-and-more") {
		fmt.Printf("%q = %q (%d below)\n", along.Key, along.Val, along.Tree.Len())
	}
}
