// Package populate fills a core.Graph with a fixed number of users and a
// randomized set of friendships.
//
// Two interchangeable strategies share one contract,
//
//	Populate(g, numUsers, avgFriendships) (Result, error)
//
// and both target pairsNeeded = numUsers*avgFriendships/2 friendships
// (integer division), since every friendship contributes to two users'
// counts.
//
//   - Exhaustive: enumerate every unordered pair {i,j}, shuffle the list
//     and keep the first pairsNeeded entries. O(n²) time and memory; every
//     possible friendship is equally likely.
//   - Rejection:  draw two random users at a time, keep the pair if it is new
//     and not a self-pair, retry otherwise. Expected O(pairsNeeded) draws
//     on sparse graphs; slows down sharply as the graph approaches complete.
//
// Both strategies reset the graph first: users, friendships and the ID
// counter start from scratch on every call.
//
// Randomness
//
//	All draws go through a Source (IntRange(lo, hi) with inclusive bounds).
//	WithSeed / WithRand / WithSource make runs reproducible or scripted;
//	without any of them a time-seeded source is used.
//
// Errors
//
//   - ErrInvalidParameter         negative numUsers or avgFriendships.
//   - ErrPopulationUnsatisfiable  Rejection asked for more friendships than
//     distinct pairs exist, or WithMaxAttempts ran out.
//   - ErrUnknownStrategy          ByName got an unrecognized name.
//
// The precondition numUsers > avgFriendships is not enforced: Exhaustive
// simply produces fewer friendships when there are not enough pairs.
package populate
