// Package hollowmaze is an in-memory engine for grid mazes stocked with
// treasure hollows — escape routes, greedy loot selection, and the
// data structures underneath.
//
// 🚀 What is hollowmaze?
//
//	A small, deterministic library that brings together:
//		• Sorting: stable merge sort over keyed entries, O(n log n) guaranteed
//		• Trees: a generic BST with a balanced build from sorted data
//		• Heaps: a generic array-backed max-heap with O(n) heapify
//		• Hollows: two interchangeable greedy "best ratio that fits" strategies
//		• Mazes: a typed 2-D grid, depth-first escape search, and a
//		  path-order treasure walk under a weight budget
//
// ✨ Why choose hollowmaze?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed neighbor order, reproducible tie-breaks
//   - Pure Go core – no cgo, single-threaded, no hidden global state
//   - Honest bounds – every operation documents best/worst complexity
//
// Under the hood, everything is organized in flat subpackages:
//
//	keyed/     — the Entry[K, I] key/item pair shared by the containers
//	mergesort/ — stable divide-and-conquer sort (feeds the balanced build)
//	bst/       — binary search tree + midpoint balanced construction
//	heap/      — array-backed max-heap (heapify, push, pop-max)
//	treasure/  — the Treasure record, ratios, and random generation
//	hollow/    — Spooky (tree-backed) and Mystical (heap-backed) selection
//	maze/      — grid model, DFS path search, treasure walk, text loader
//
// Quick ASCII example:
//
//	    P.S#
//	    .#.#
//	    .M.E
//
//	a 3×4 maze: start P, exit E, walls #, a spooky hollow S and a
//	mystical hollow M along the way.
//
// Dive into examples/ for a full hunt: load a maze, find the way out,
// and collect the greedy-optimal treasures along the path.
//
//	go get github.com/katalvlaran/hollowmaze
package hollowmaze
