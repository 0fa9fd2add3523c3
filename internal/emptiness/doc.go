// Package emptiness is the internal brute-force reachable-accepting-cycle
// oracle spec.md §4.F's determine_unknown_acceptance post-pass and the §8
// is_rejecting_scc testable property both rely on. It is not an
// emptiness-check algorithm in its own right in the sense excluded by
// spec.md's Non-goals — it is the small, self-contained primitive those
// higher-level consumers (sccinfo's refinement pass, determinize's
// empty-language check, transform's Rabin and strength classification) need
// internally and is not exposed as a public API.
package emptiness
