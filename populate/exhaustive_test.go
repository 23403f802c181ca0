package populate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/populate"
)

// ExhaustiveSuite exercises the candidate-list strategy.
type ExhaustiveSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *ExhaustiveSuite) SetupTest() {
	s.g = core.NewGraph()
}

// TestZeroAverage: 10 users, avg 0 ⇒ 10 users, 0 friendships.
func (s *ExhaustiveSuite) TestZeroAverage() {
	res, err := populate.NewExhaustive(populate.WithSeed(7)).Populate(s.g, 10, 0)
	s.Require().NoError(err)
	s.Equal(10, s.g.UserCount())
	s.Equal(0, s.g.FriendshipCount())
	s.Equal(0, res.Requested)
}

// TestSixUsersTwoFriends: 6 users, avg 2 ⇒ exactly 6 unique pairs.
func (s *ExhaustiveSuite) TestSixUsersTwoFriends() {
	res, err := populate.NewExhaustive(populate.WithSeed(42)).Populate(s.g, 6, 2)
	s.Require().NoError(err)
	s.Equal(6, s.g.UserCount())
	s.Equal(6, s.g.FriendshipCount())
	s.Equal(populate.Result{
		Strategy: populate.NameExhaustive, Users: 6, Friendships: 6, Requested: 6, Draws: 15,
	}, res)
	requireSimpleGraph(s.T(), s.g)
}

// TestResetsGraph: a second call starts from an empty graph with IDs from 1.
func (s *ExhaustiveSuite) TestResetsGraph() {
	s.g.AddUser("stale")
	s.g.AddUser("stale")
	s.Require().NoError(s.g.AddFriendship(1, 2))

	_, err := populate.NewExhaustive(populate.WithSeed(1)).Populate(s.g, 3, 0)
	s.Require().NoError(err)
	s.Equal(3, s.g.UserCount())
	s.Equal(0, s.g.FriendshipCount())
	u, err := s.g.User(1)
	s.Require().NoError(err)
	s.Equal("0", u.Name)
}

// TestScriptedShuffle pins the swap semantics with a scripted source.
func (s *ExhaustiveSuite) TestScriptedShuffle() {
	// candidates: [(1,2) (1,3) (2,3)]
	// idx0↔2: [(2,3) (1,3) (1,2)]; idx1↔2: [(2,3) (1,2) (1,3)]; idx2↔2: unchanged
	src := &scriptedSource{t: s.T(), values: []int{2, 2, 2}}
	_, err := populate.NewExhaustive(populate.WithSource(src)).Populate(s.g, 3, 1)
	s.Require().NoError(err)
	s.Equal([][2]int{{2, 3}}, s.g.Friendships())
	s.Equal(3, src.pos)
}

// TestNotEnoughPairs: avg ≥ n yields every pair instead of an error.
func (s *ExhaustiveSuite) TestNotEnoughPairs() {
	res, err := populate.NewExhaustive(populate.WithSeed(3)).Populate(s.g, 4, 6)
	s.Require().NoError(err)
	s.Equal(12, res.Requested)
	s.Equal(6, res.Friendships) // K4
}

// TestDeterministicSeed: equal seeds ⇒ equal friendships.
func (s *ExhaustiveSuite) TestDeterministicSeed() {
	other := core.NewGraph()
	_, err := populate.NewExhaustive(populate.WithSeed(99)).Populate(s.g, 40, 4)
	s.Require().NoError(err)
	_, err = populate.NewExhaustive(populate.WithSeed(99)).Populate(other, 40, 4)
	s.Require().NoError(err)
	s.Equal(s.g.Friendships(), other.Friendships())
}

func TestExhaustiveSuite(t *testing.T) {
	suite.Run(t, new(ExhaustiveSuite))
}

func TestExhaustive_InvalidParameters(t *testing.T) {
	g := core.NewGraph()
	g.AddUser("kept")
	e := populate.NewExhaustive(populate.WithSeed(1))

	_, err := e.Populate(g, -1, 2)
	require.ErrorIs(t, err, populate.ErrInvalidParameter)
	_, err = e.Populate(g, 5, -2)
	require.ErrorIs(t, err, populate.ErrInvalidParameter)
	assert.Equal(t, 1, g.UserCount(), "invalid input must not reset the graph")
}

func TestExhaustive_NameScheme(t *testing.T) {
	g := core.NewGraph()
	_, err := populate.NewExhaustive(populate.WithSeed(1), populate.WithNameScheme(populate.PrefixedName("user"))).
		Populate(g, 3, 0)
	require.NoError(t, err)
	names := make([]string, 0, 3)
	for _, u := range g.Users() {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"user0", "user1", "user2"}, names)
}
