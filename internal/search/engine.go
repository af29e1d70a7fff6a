// Package search implements the breadth-first, canonical-state-deduplicated
// search harness shared by the Chrooma and Transmission solvers. Search
// nodes form a tree rooted at the initial state; rather than a pointer
// graph with no single owner, nodes here live in one growing slice and
// parent links are plain integers into it. Reconstructing a trace or
// deduplicating a visited state is then just an index lookup, never a
// pointer chase with an ownership question attached.
package search

import (
	"context"

	"github.com/pkg/errors"
)

// Node is one point in the search tree. Move is a human-readable label
// for the edge from Parent to this node (">"/"v"/"<"/"^" for Chrooma,
// "3->5" for Transmission); Payload is the mechanic-specific state that
// produced this node, kept around so Expand can be called again when this
// node is popped from the frontier.
type Node struct {
	Parent  int
	Move    string
	Depth   int
	Key     string
	Payload any
}

// Successor is one candidate next state produced by a mechanic's Expand
// function.
type Successor struct {
	Payload any
	// Key is the canonical-bytes identity of Payload, used for
	// deduplication. Two successors with equal Key are the same state for
	// search purposes regardless of how they were reached.
	Key  string
	Move string
	// Dead marks a successor the mechanic has already determined cannot
	// lead anywhere (e.g. a Chrooma move that failed outright). Dead
	// successors are skipped: never recorded as nodes and never enqueued.
	Dead bool
}

// ExpandFunc produces every legal successor of a popped node's payload.
type ExpandFunc func(ctx context.Context, payload any) ([]Successor, error)

// GoalFunc reports whether payload is a winning state.
type GoalFunc func(payload any) bool

// Stats aggregates what a driver wants to report after a search: how
// many nodes were expanded and the deepest depth generated.
type Stats struct {
	Expanded int
	Depth    int
}

// Outcome distinguishes why Run stopped.
type Outcome int

const (
	OutcomeNoSolution Outcome = iota
	OutcomeSolved
	OutcomeDepthLimitExceeded
)

// Engine is a FIFO BFS over an arena of Nodes, deduplicated by Key.
type Engine struct {
	nodes   []Node
	visited map[string]int // key -> node index, for cheap membership + trace reuse
}

func NewEngine() *Engine {
	return &Engine{visited: make(map[string]int)}
}

// Run performs breadth-first search from the initial payload/key until
// goal holds, the queue is exhausted, or maxDepth is exceeded (negative
// maxDepth means unbounded). Nodes at depth maxDepth are still expanded;
// their children get goal-checked on generation, so a win one move past
// the limit is found before the limit is reported. It returns the
// winning node's index (for Trace), the outcome, and aggregate stats.
func (e *Engine) Run(ctx context.Context, initial any, initialKey string, expand ExpandFunc, goal GoalFunc, maxDepth int) (int, Outcome, Stats, error) {
	e.nodes = e.nodes[:0]
	e.visited = make(map[string]int)

	root := Node{Parent: -1, Depth: 0, Key: initialKey, Payload: initial}
	e.nodes = append(e.nodes, root)
	e.visited[initialKey] = 0

	if goal(initial) {
		return 0, OutcomeSolved, Stats{Expanded: 0, Depth: 0}, nil
	}

	queue := []int{0}
	stats := Stats{}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return -1, OutcomeNoSolution, stats, errors.Wrap(err, "search canceled")
		}
		cur := queue[0]
		queue = queue[1:]
		curNode := e.nodes[cur]

		// A node sitting exactly at maxDepth is still expanded; its
		// children get goal-checked below before ever being enqueued.
		// Only a node already past the limit is skipped.
		if maxDepth >= 0 && curNode.Depth > maxDepth {
			continue
		}

		successors, err := expand(ctx, curNode.Payload)
		if err != nil {
			return -1, OutcomeNoSolution, stats, errors.Wrap(err, "expand")
		}
		stats.Expanded++

		for _, succ := range successors {
			if succ.Dead {
				continue
			}
			if _, seen := e.visited[succ.Key]; seen {
				continue
			}
			idx := len(e.nodes)
			node := Node{
				Parent:  cur,
				Move:    succ.Move,
				Depth:   curNode.Depth + 1,
				Key:     succ.Key,
				Payload: succ.Payload,
			}
			e.nodes = append(e.nodes, node)
			e.visited[succ.Key] = idx
			if node.Depth > stats.Depth {
				stats.Depth = node.Depth
			}

			if goal(succ.Payload) {
				return idx, OutcomeSolved, stats, nil
			}
			queue = append(queue, idx)
		}
	}

	if maxDepth >= 0 && stats.Depth > maxDepth {
		return -1, OutcomeDepthLimitExceeded, stats, nil
	}
	return -1, OutcomeNoSolution, stats, nil
}

// Trace reconstructs the root-to-node path of moves by walking parent
// links backward, then reversing.
func (e *Engine) Trace(nodeIdx int) []Node {
	var path []Node
	for nodeIdx != -1 {
		n := e.nodes[nodeIdx]
		path = append(path, n)
		nodeIdx = n.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
