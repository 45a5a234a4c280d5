package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/go-pathtree/critbit/dict"
)

func main() {
	d := dict.New[int]()
	d.Set("c", 1)
	d.Set("a1", 3)
	d.Set("a2", 4)
	d.Set("a3", 5)
	d.Set("a22", 6)
	d.Set("bb", 7)
	d.Set("", 8)

	d.DebugDump(os.Stdout)

	println("------")

	visitor := func(item dict.Item[int]) bool {
		fmt.Printf("%q = %v\n", item.Key, item.Val)
		return true
	}
	d.Iter("a", visitor)

	println("------")

	if sub, ok := d.Traverse("a2"); ok {
		sub.Iter("", visitor)
	}

	println("------")

	for _, along := range d.ValuesAlongPath("a22x") {
		fmt.Printf("%q = %v, rest: %q\n", along.Key, along.Val, along.Rest.Keys())
	}
}
