// Package level reads pipe puzzles from YAML level files and turns them into
// pipenet networks. A network is rebuilt from its level every session; no
// runtime state is ever written back.
//
// Format:
//
//	name: life-support
//	threshold: 2        # optional adjacency threshold, default 2
//	spacing: 2          # optional grid spacing for "cell", default 2
//	tiles:
//	  - name: in
//	    cell: [0, 0]    # or pos: [x, y]
//	    connections: E
//	    input: {side: E, gas: Oxygen}
//	  - name: mid
//	    cell: [1, 0]
//	    connections: W|E
//	    orientation: 1
//	  - name: out
//	    cell: [2, 0]
//	    connections: W
//	    output: W
//
// cell is [column, row] with row 0 the northmost; it maps to
// pos [column*spacing, -row*spacing].
package level
