// Package render turns a social graph or a shortest-path tree into Graphviz
// DOT text and, optionally, SVG.
//
// GraphDOT draws every user as a node and every friendship as an undirected
// edge. TreeDOT draws a bfs.PathTree as a digraph rooted at the search root,
// one edge per (predecessor → user) link, so each user has exactly one
// incoming edge.
//
// SVG rendering runs in-process through [github.com/goccy/go-graphviz]; no
// dot binary is required.
//
// Both DOT emitters list nodes and edges in ascending ID order, so output is
// stable across runs for the same graph.
package render
