package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/emmaagwu/boundcache"
)

func main() {
	c := boundcache.New[string, string](
		boundcache.WithCapacity(2),
		boundcache.WithPolicy(boundcache.LFU),
		boundcache.WithLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})),
		boundcache.WithEvictionHandler(func(key, _ string) {
			fmt.Println("DISCARD:", key)
		}),
	)

	c.Put("A", "Hello")
	c.Put("B", "World")

	// A is used twice more than B, so B goes when C arrives.
	c.Get("A")
	c.Get("A")
	c.Put("C", "Holberton")

	c.Range(func(key, value string) bool {
		fmt.Printf("%s: %s\n", key, value)
		return true
	})
}
