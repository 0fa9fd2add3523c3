package sat

// Clause is a disjunction of signed DIMACS literals: a positive entry i
// asserts variable i true, a negative entry asserts it false. 0 is never a
// valid literal (it is DIMACS's clause terminator, not a variable).
type Clause []int

// CNF is a conjunctive-normal-form formula over the variable universe
// [1, NumVars].
type CNF struct {
	NumVars int
	Clauses []Clause
}

// Model is a satisfying assignment: one signed literal per variable,
// positive if that variable is true in the assignment, negative if false,
// matching spec.md §6's "vector of signed variable indices".
type Model []int
