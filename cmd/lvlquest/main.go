// Command lvlquest lists the problems of the collection, runs their cases
// against every solution variant and exercises the caches interactively.
//
//	lvlquest list [family]
//	lvlquest run [problem...] [--variant v] [--cases file] [--parallel n] [--fail-fast]
//	lvlquest cache --kind lru --capacity 2 --ops put:1:1,get:1
package main

import "os"

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
