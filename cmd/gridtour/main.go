// Command gridtour computes knight routes over a weighted terrain grid.
//
// Inputs come from three text files (map, travel costs, objectives) or from
// a named scenario in a SQLite database. Settings are read from flags, then
// GRIDTOUR_* environment variables, then a .env file in the working
// directory.
//
//	gridtour tour    --map map.txt --costs costs.txt --objectives obj.txt --png tour.png
//	gridtour walk    --db scenarios.db --name knight
//	gridtour import  --map map.txt --costs costs.txt --objectives obj.txt --db scenarios.db --name knight
//	gridtour inspect --db scenarios.db
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridtour:", err)
		os.Exit(1)
	}
}
