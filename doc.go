// Package longpath computes maximum-weight simple paths from a start vertex
// in directed graphs with signed integer edge weights.
//
// 🚀 What is longpath?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Graph store: fixed vertex count, ordered edge catalog, snapshots
//		• Reachability: iterative DFS from the start vertex
//		• Longest path: maximizing Bellman-Ford with positive-cycle detection
//		• Reconstruction: greedy walk over the final distance vector
//		• File I/O: YAML, JSON and TOML graph documents with labels
//
// Layout:
//
//	core/     - Graph, Edge, Snapshot and statistics
//	dfs/      - Reachable: vertices reachable from a start
//	longest/  - LongestPath, Reconstruct, Distance and Result
//	builder/  - deterministic graph generators (Path, Cycle, RandomDAG, Layered)
//	graphio/  - labelled graph documents and decoders
//	internal/ - CLI (cobra) and configuration (viper)
//	cmd/longestpath - the command-line entry point
//
// Quick example (start B):
//
//	edges: A→B 1, A→C 2, B→C -3, B→D 4, C→D 5
//
//	Longest path from B is B→D with weight 4; B→C→D only reaches 2.
//
// A positive-weight cycle reachable from the start makes the longest path
// unbounded; LongestPath then fails with longest.ErrNoPathExists.
//
//	go get github.com/katalvlaran/longpath
package longpath
