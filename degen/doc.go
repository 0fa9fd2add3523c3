// Package degen implements component H, degeneralization of a generalized
// Büchi automaton (acceptance Inf(S) over a set S of n marks) into an
// equivalent Büchi automaton (a single Inf set) whose states are pairs
// (s, level) tracking how much of an ordering of S has been witnessed since
// the level last reset. See Build for the construction and Options for its
// heuristic and output-shape knobs.
package degen
