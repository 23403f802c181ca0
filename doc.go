// Package socialpath models a social network as an undirected graph of users
// and friendships, fills it at random and answers "how am I connected to
// everyone else?" with breadth-first search.
//
// The module is organized into small packages:
//
//	queue/     - generic FIFO used by the traversal
//	core/      - Graph: user directory + symmetric friendship sets under one RWMutex
//	populate/  - Exhaustive (shuffled candidate pairs) and Rejection (random draws) strategies
//	bfs/       - FindAllPaths: shortest friendship path from a root to every reachable user
//	render/    - Graphviz DOT export and in-process SVG rendering
//
// Quick ASCII example:
//
//	    1───2───3
//	    │
//	    4       5
//
//	FindAllPaths(g, 1) = {1:[1], 2:[1 2], 3:[1 2 3], 4:[1 4]}; 5 is unreachable.
//
// The socialpath command (cmd/socialpath) is the reference driver:
//
//	go run ./cmd/socialpath paths --users 1000 --avg 5 --seed 42
package socialpath
