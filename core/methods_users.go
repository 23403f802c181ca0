// File: methods_users.go
// Role: User directory lifecycle & queries.
//
// Determinism:
//   - IDs are issued 1,2,3,… in call order.
//   - Users() returns records sorted by ID ascending.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddUser stores a new user with the next sequential ID and gives it an
// empty friend set. The first ID on a fresh (or Reset) graph is 1.
//
// Complexity: O(1) amortized.
func (g *Graph) AddUser(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastID++
	id := g.lastID
	g.users[id] = &User{ID: id, Name: name}
	g.friends[id] = make(map[int]struct{})

	return id
}

// HasUser reports whether id exists in the directory.
// Complexity: O(1).
func (g *Graph) HasUser(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.users[id]

	return ok
}

// User returns a copy of the record for id, or ErrUnknownUser.
// Complexity: O(1).
func (g *Graph) User(id int) (User, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.users[id]
	if !ok {
		return User{}, fmt.Errorf("%w: %d", ErrUnknownUser, id)
	}

	return *u, nil
}

// Users returns copies of all user records sorted by ID.
// Complexity: O(U log U).
func (g *Graph) Users() []User {
	g.mu.RLock()
	out := make([]User, 0, len(g.users))
	for _, u := range g.users {
		out = append(out, *u)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// UserCount returns the number of users in the directory.
// Complexity: O(1).
func (g *Graph) UserCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.users)
}

// Reset drops every user and friendship and restarts the ID counter, so the
// next AddUser returns 1. Containers are reallocated rather than cleared.
// Configuration (logger, hook) is preserved.
//
// Complexity: O(1).
func (g *Graph) Reset() {
	g.mu.Lock()
	g.lastID = 0
	g.users = make(map[int]*User)
	g.friends = make(map[int]map[int]struct{})
	g.friendshipCount = 0
	g.mu.Unlock()
}
