// File: stats.go
// Role: Read-only snapshot of directory and degree statistics.

package core

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Users       int     // number of users
	Friendships int     // unordered friendship pairs
	Isolated    int     // users with no friends
	MinDegree   int     // 0 on an empty graph
	MaxDegree   int     // 0 on an empty graph
	AvgDegree   float64 // 2F/U; 0 on an empty graph
}

// Stats computes a consistent snapshot under a single read lock.
// Complexity: O(U).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Users: len(g.users), Friendships: g.friendshipCount}
	if s.Users == 0 {
		return s
	}

	first := true
	for _, set := range g.friends {
		d := len(set)
		if d == 0 {
			s.Isolated++
		}
		if first || d < s.MinDegree {
			s.MinDegree = d
		}
		if first || d > s.MaxDegree {
			s.MaxDegree = d
		}
		first = false
	}
	s.AvgDegree = float64(2*s.Friendships) / float64(s.Users)

	return s
}
