// Package core provides the in-memory social Graph: a directory of users
// keyed by sequential integer IDs plus an undirected friendship adjacency.
//
// The Graph G = (U,F) keeps three invariants at all times:
//
//   - Symmetry:     b ∈ friends(a)  ⇔  a ∈ friends(b)
//   - Irreflexive:  a ∉ friends(a)
//   - Coverage:     every user in the directory owns an adjacency entry,
//     created by AddUser (possibly empty).
//
// IDs
//
//	AddUser assigns 1, 2, 3, … in call order. IDs are never reused while the
//	graph lives; Reset drops every user and restarts the counter so the next
//	AddUser returns 1 again.
//
// Advisory conditions vs. errors
//
//	AddFriendship distinguishes two classes of failure:
//	  • Advisory (ErrSelfFriendship, ErrDuplicateFriendship): the call is a
//	    safe no-op. The condition is logged at warn level and handed to the
//	    optional warning hook; AddFriendship still returns nil.
//	  • Structural (ErrUnknownUser): an ID that was never created. Returned
//	    to the caller, nothing is mutated.
//
// Configuration Options (GraphOption):
//
//	– WithLogger(l *log.Logger)      charmbracelet logger for advisories (default: discard)
//	– WithWarningHook(fn func(error)) receives every advisory condition
//
// Core Methods:
//
//	// Users
//	AddUser(name string) int              // O(1)
//	HasUser(id int) bool                  // O(1)
//	User(id int) (User, error)            // O(1)
//	Users() []User                        // O(U log U), sorted by ID
//	UserCount() int                       // O(1)
//
//	// Friendships
//	AddFriendship(userID, friendID int) error // O(1)
//	AreFriends(a, b int) bool                 // O(1)
//	FriendIDs(id int) ([]int, error)          // O(deg), unordered
//	FriendCount(id int) (int, error)          // O(1)
//	Friendships() [][2]int                    // O(F log F), sorted pairs
//	FriendshipCount() int                     // O(1)
//
//	// Whole graph
//	Reset()                               // O(1) reallocation
//	Stats() Stats                         // O(U) snapshot
//
// Concurrency:
//
//	The contract is single-threaded. A single sync.RWMutex still guards the
//	whole graph so one instance may be shared by an embedding; there is no
//	finer-grained locking.
//
// Determinism:
//
//	Users() and Friendships() are sorted. FriendIDs() deliberately is not:
//	it reflects map iteration order, and callers that need a canonical order
//	(e.g. bfs.WithSortedNeighbors) sort it themselves.
package core
