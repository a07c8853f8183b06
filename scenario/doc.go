// Package scenario loads the inputs of a tour computation: the terrain grid,
// the travel-cost table, the origin and the objectives.
//
// Two sources are supported:
//
//   - Whitespace-separated text files.
//     Map:        "width height" followed by "x y terrain" triples
//     (0 grass, 1 sand, 2 impassable).
//     Costs:      "x1 y1 x2 y2 cost" records.
//     Objectives: the origin "x y" followed by one "x y" pair per objective.
//     Tokens may be split across lines freely; syntax errors report the line
//     of the offending token.
//   - A SQLite database (modernc.org/sqlite) holding named scenarios, written
//     by Store.Save and read back by Store.Load.
//
// Cost files commonly list every move once for both directions; pass
// LoadOptions{Mirror: true} to apply each record both ways. A Store keeps the
// effective directed table.
package scenario
