// Package report renders tours and in-order walks as the step-by-step text
// log of the knight: one line per move with the running cost, a line for
// every objective collected, and a closing total.
//
// Costs are printed with two decimals. Objectives are numbered from 1 in
// input order.
package report
