// Package gridtour plans routes for a single walker on a weighted 2D grid:
// cheapest paths between cells and the cheapest closed tour that collects
// every reachable objective and returns to the start.
//
// What lives where?
//
//	gridgraph/: cells, terrain, directed travel costs and the movement network
//	dijkstra/: single-source cheapest paths and shortest-path trees on a network
//	tsp/: Held–Karp exact tours, the tour planner and the in-order walk
//	scenario/: text loaders and a SQLite store for named scenarios
//	report/: the step-by-step text log of a tour or walk
//	render/: PNG pictures of a grid with an overlaid route
//	cmd/gridtour: the command-line front end
//
// Quick ASCII example (X is impassable, o an objective, S the start):
//
//	o . o
//	. X .
//	S . .
//
// The planner leaves S, visits both objectives around the wall in the
// cheapest order, and comes back to S.
//
//	go install github.com/katalvlaran/gridtour/cmd/gridtour@latest
package gridtour
