// SPDX-License-Identifier: MIT

// Package gridgraph treats a grid.Grid as an implicit graph whose vertices
// are cells and whose edges join Conn4 or Conn8 neighbours.
//
// What:
//
//   - BFS / Distances / ShortestPath: unweighted shortest paths from a start
//     cell over passable cells, with depth limiting and cancellation.
//   - CheapestPath: Dijkstra over per-cell entry costs, walls excluded.
//   - Regions: flood fill into maximal groups of equal values, each reporting
//     Area, Perimeter and Sides (straight fence runs).
//   - Components: connected "land" cells for a caller-supplied predicate.
//   - Bridge: minimum number of water cells to convert so that two land
//     components touch (0-1 BFS).
//
// Why:
//
//   - Maze and map puzzles: step counts, reachable sets, garden plots,
//     island bridging.
//
// Complexity (n = rows*cols, d = 4 or 8):
//
//   - BFS, Distances, ShortestPath: O(n·d) time, O(n) memory.
//   - Regions, Components:          O(n·d) time, O(n) memory.
//   - CheapestPath:                  O(n·d·log n) time, O(n·d) memory.
//   - Region.Perimeter, Region.Sides: O(Area).
//   - Bridge:                        O(n·d) time, O(n) memory.
//
// Options:
//
//   - WithConnectivity(grid.Conn4 | grid.Conn8), default Conn4.
//   - WithMaxDistance(d): d > 0 limits BFS depth (total cost for
//     CheapestPath), 0 disables the limit.
//   - WithContext(ctx): cancellation checked once per dequeued cell.
//   - WithOnVisit(fn): callback per visited cell; an error aborts the walk.
//
// Errors:
//
//   - ErrGridNil: nil grid pointer.
//   - ErrOutOfBounds: start or target outside the grid.
//   - ErrOptionViolation: invalid option value.
//   - ErrComponentIndex: component index out of range.
//   - ErrNegativeCost: a weight function returned a negative cost.
//   - ErrNoPath: target unreachable.
package gridgraph
