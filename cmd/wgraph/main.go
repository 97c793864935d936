// Command wgraph loads a weighted graph from an adjacency-list file and prints
// it, its minimum spanning tree, shortest distances from a vertex, or a
// Graphviz rendering.
//
//	$ wgraph print -f graph.txt
//	$ wgraph mst -f graph.txt -method kruskal
//	$ wgraph paths -f graph.txt -s 0 -to 3
//	$ wgraph dot -f graph.txt -mst | dot -Tsvg > mst.svg
//	$ wgraph gen -shape connected -n 50 -extra 100 -seed 7 > graph.txt
//
// With no -f (or -f -) the graph is read from standard input.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetPrefix("wgraph: ")
	log.SetFlags(0)

	cmd := newCommand(os.Stdin, os.Stdout)
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}
