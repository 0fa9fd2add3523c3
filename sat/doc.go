// Package sat implements spec.md §6's optional SAT-solver invocation
// contract: a callable taking a CNF formula and returning a satisfying
// assignment or unsat. DefaultSolver answers the contract in-process via
// go-air/gini; CommandSolver answers it by shelling out to an external
// solver reading and writing the DIMACS file formats, as the contract's
// %I/%O placeholder convention describes.
package sat
