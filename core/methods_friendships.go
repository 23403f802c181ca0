// File: methods_friendships.go
// Role: Friendship lifecycle & queries.
//
// Invariants kept here:
//   - Both directions are inserted under one write-lock acquisition.
//   - Self and duplicate friendships never mutate the graph.
//
// Determinism:
//   - Friendships() is sorted by (low ID, high ID).
//   - FriendIDs() follows map iteration order and is intentionally unordered.

package core

import (
	"fmt"
	"sort"
)

// AddFriendship creates a bidirectional friendship between userID and friendID.
//
// Steps:
//  1. Both IDs must exist, else an error wrapping ErrUnknownUser (no mutation).
//  2. userID == friendID ⇒ advisory ErrSelfFriendship, no-op, returns nil.
//  3. Already friends (either direction) ⇒ advisory ErrDuplicateFriendship, no-op, returns nil.
//  4. Otherwise insert friendID into friends(userID) and userID into friends(friendID).
//
// Advisories are logged at warn level and passed to the warning hook.
// Complexity: O(1).
func (g *Graph) AddFriendship(userID, friendID int) error {
	g.mu.Lock()
	if _, ok := g.friends[userID]; !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownUser, userID)
	}
	if _, ok := g.friends[friendID]; !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownUser, friendID)
	}

	var advisory error
	switch {
	case userID == friendID:
		advisory = ErrSelfFriendship
	case g.linkedLocked(userID, friendID):
		advisory = ErrDuplicateFriendship
	default:
		g.friends[userID][friendID] = struct{}{}
		g.friends[friendID][userID] = struct{}{}
		g.friendshipCount++
	}
	g.mu.Unlock()

	if advisory != nil {
		g.warn(fmt.Errorf("%w (%d, %d)", advisory, userID, friendID), userID, friendID)
	}

	return nil
}

// AreFriends reports whether a and b are friends. Unknown IDs yield false.
// Complexity: O(1).
func (g *Graph) AreFriends(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.linkedLocked(a, b)
}

// FriendIDs returns the neighbor IDs of id in map iteration order.
// Returns ErrUnknownUser if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) FriendIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.friends[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUser, id)
	}
	out := make([]int, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}

	return out, nil
}

// FriendCount returns deg(id), or ErrUnknownUser.
// Complexity: O(1).
func (g *Graph) FriendCount(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.friends[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownUser, id)
	}

	return len(set), nil
}

// Friendships returns every friendship once as [low, high], sorted.
// Complexity: O(F log F).
func (g *Graph) Friendships() [][2]int {
	g.mu.RLock()
	out := make([][2]int, 0, g.friendshipCount)
	for a, set := range g.friends {
		for b := range set {
			if a < b {
				out = append(out, [2]int{a, b})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// FriendshipCount returns the number of unordered friendship pairs.
// Complexity: O(1).
func (g *Graph) FriendshipCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.friendshipCount
}

// linkedLocked checks both directions; caller holds mu.
func (g *Graph) linkedLocked(a, b int) bool {
	if _, ok := g.friends[a][b]; ok {
		return true
	}
	_, ok := g.friends[b][a]

	return ok
}

// warn reports an advisory through the logger and the hook. Must be called without mu held.
func (g *Graph) warn(err error, userID, friendID int) {
	g.logger.Warn("friendship not added", "user", userID, "friend", friendID, "reason", err)
	g.onWarning(err)
}
