// Package generator produces random CNF instances in which every variable
// carries its own inclusion probability.
//
// A run draws one probability per variable, then builds each clause by
// sampling every variable in with its probability and negating included
// variables with probability 0.25. Clauses that end up with fewer than two
// literals are replaced by a random subset of between 3 and N variables.
//
// All sampling goes through the *rand.Rand handed to New, so a seeded source
// reproduces an instance exactly.
package generator
