package blueprint_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/suite"

	"github.com/cedab23/blueprints/internal/blueprint"
)

// StoreSuite exercises the Store contract. Backends embed it and supply
// newStore, which must return an empty store.
type StoreSuite struct {
	suite.Suite
	newStore func() blueprint.Store
	store    blueprint.Store
	ctx      context.Context
}

func (s *StoreSuite) SetupTest() {
	s.store = s.newStore()
	s.ctx = context.Background()
}

func pts(coords ...int) []blueprint.Point {
	points := make([]blueprint.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, blueprint.Point{X: coords[i], Y: coords[i+1]})
	}
	return points
}

func (s *StoreSuite) create(author, name string, points []blueprint.Point) {
	s.T().Helper()
	s.Require().NoError(s.store.Create(s.ctx, &blueprint.Blueprint{Author: author, Name: name, Points: points}))
}

// TestCreateAndGet verifies points round-trip in insertion order.
func (s *StoreSuite) TestCreateAndGet() {
	s.Run("returns the same points in the same order", func() {
		s.create("ana", "house", pts(0, 0, 10, 0, 10, 10, 0, 10))

		bp, err := s.store.Get(s.ctx, "ana", "house")
		s.Require().NoError(err)
		s.Equal("ana", bp.Author)
		s.Equal("house", bp.Name)
		s.Equal(pts(0, 0, 10, 0, 10, 10, 0, 10), bp.Points)
	})

	s.Run("keeps duplicate points", func() {
		s.create("ana", "line", pts(1, 1, 1, 1, -5, 7))

		bp, err := s.store.Get(s.ctx, "ana", "line")
		s.Require().NoError(err)
		s.Equal(pts(1, 1, 1, 1, -5, 7), bp.Points)
	})

	s.Run("blueprint without points exists with zero points", func() {
		s.create("ana", "garage", nil)

		bp, err := s.store.Get(s.ctx, "ana", "garage")
		s.Require().NoError(err)
		s.NotNil(bp.Points)
		s.Empty(bp.Points)
	})

	s.Run("returns ErrBlueprintNotFound for unknown pair", func() {
		_, err := s.store.Get(s.ctx, "ana", "castle")
		s.ErrorIs(err, blueprint.ErrBlueprintNotFound)

		_, err = s.store.Get(s.ctx, "nobody", "house")
		s.ErrorIs(err, blueprint.ErrBlueprintNotFound)
	})

	s.Run("mutating the input after create does not affect storage", func() {
		points := pts(3, 3)
		s.create("ana", "shed", points)
		points[0] = blueprint.Point{X: 99, Y: 99}

		bp, err := s.store.Get(s.ctx, "ana", "shed")
		s.Require().NoError(err)
		s.Equal(pts(3, 3), bp.Points)
	})
}

// TestDuplicateCreate verifies (author, name) uniqueness.
func (s *StoreSuite) TestDuplicateCreate() {
	s.create("ana", "house", pts(0, 0, 10, 0))

	err := s.store.Create(s.ctx, &blueprint.Blueprint{Author: "ana", Name: "house", Points: pts(5, 5)})
	s.Require().Error(err)
	s.ErrorIs(err, blueprint.ErrPersistence)
	s.ErrorIs(err, blueprint.ErrDuplicateBlueprint)

	bp, err := s.store.Get(s.ctx, "ana", "house")
	s.Require().NoError(err)
	s.Equal(pts(0, 0, 10, 0), bp.Points, "existing points are unchanged")

	s.Run("same name under another author is allowed", func() {
		s.create("bob", "house", pts(1, 2))
	})
}

// TestAppendPoint verifies points are appended at the end.
func (s *StoreSuite) TestAppendPoint() {
	s.create("ana", "house", pts(0, 0, 10, 0))

	s.Run("adds exactly one point at the end", func() {
		s.Require().NoError(s.store.AppendPoint(s.ctx, "ana", "house", blueprint.Point{X: 10, Y: 10}))

		bp, err := s.store.Get(s.ctx, "ana", "house")
		s.Require().NoError(err)
		s.Require().Len(bp.Points, 3)
		s.Equal(blueprint.Point{X: 10, Y: 10}, bp.Points[2])
	})

	s.Run("appends to a blueprint created without points", func() {
		s.create("ana", "garage", nil)
		s.Require().NoError(s.store.AppendPoint(s.ctx, "ana", "garage", blueprint.Point{X: -1, Y: 4}))

		bp, err := s.store.Get(s.ctx, "ana", "garage")
		s.Require().NoError(err)
		s.Equal(pts(-1, 4), bp.Points)
	})

	s.Run("missing pair returns ErrBlueprintNotFound and creates nothing", func() {
		before, err := s.store.List(s.ctx)
		s.Require().NoError(err)

		err = s.store.AppendPoint(s.ctx, "ana", "castle", blueprint.Point{X: 1, Y: 1})
		s.ErrorIs(err, blueprint.ErrBlueprintNotFound)

		after, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Equal(before, after)

		_, err = s.store.Get(s.ctx, "ana", "castle")
		s.ErrorIs(err, blueprint.ErrBlueprintNotFound)
	})
}

// TestConcurrentAppends verifies no appended point is lost under concurrency.
func (s *StoreSuite) TestConcurrentAppends() {
	s.create("ana", "busy", nil)
	const writers = 20

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.store.AppendPoint(s.ctx, "ana", "busy", blueprint.Point{X: i, Y: i})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	bp, err := s.store.Get(s.ctx, "ana", "busy")
	s.Require().NoError(err)
	s.Len(bp.Points, writers)
}

// TestListByAuthor verifies grouping of an author's blueprints.
func (s *StoreSuite) TestListByAuthor() {
	s.Run("author with no blueprints returns ErrBlueprintNotFound", func() {
		_, err := s.store.ListByAuthor(s.ctx, "ana")
		s.ErrorIs(err, blueprint.ErrBlueprintNotFound)
	})

	s.create("ana", "house", pts(0, 0, 10, 0))
	s.create("ana", "garage", nil)
	s.create("bob", "tower", pts(5, 5))

	s.Run("returns each blueprint once, ordered by name", func() {
		blueprints, err := s.store.ListByAuthor(s.ctx, "ana")
		s.Require().NoError(err)
		s.Require().Len(blueprints, 2)

		s.Equal("garage", blueprints[0].Name)
		s.Empty(blueprints[0].Points)
		s.Equal("house", blueprints[1].Name)
		s.Equal(pts(0, 0, 10, 0), blueprints[1].Points)
		for _, bp := range blueprints {
			s.Equal("ana", bp.Author)
		}
	})

	s.Run("returns N populated aggregates", func() {
		const n = 5
		for i := 0; i < n; i++ {
			s.create("carol", fmt.Sprintf("plan-%d", i), pts(i, 0, i, 1))
		}

		blueprints, err := s.store.ListByAuthor(s.ctx, "carol")
		s.Require().NoError(err)
		s.Require().Len(blueprints, n)
		for i, bp := range blueprints {
			s.Equal(fmt.Sprintf("plan-%d", i), bp.Name)
			s.Equal(pts(i, 0, i, 1), bp.Points)
		}
	})
}

// TestOrderingIsBytewise verifies ordering ignores locale rules.
func (s *StoreSuite) TestOrderingIsBytewise() {
	s.create("ana", "alpha", nil)
	s.create("ana", "Zeta", nil)
	s.create("ana", "beta", nil)
	s.create("Bob", "tower", nil)

	blueprints, err := s.store.ListByAuthor(s.ctx, "ana")
	s.Require().NoError(err)
	s.Require().Len(blueprints, 3)
	s.Equal([]string{"Zeta", "alpha", "beta"}, []string{blueprints[0].Name, blueprints[1].Name, blueprints[2].Name})

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	s.Equal("Bob", all[0].Author)
	s.Equal("Zeta", all[1].Name)
}

// TestList verifies listing across all authors.
func (s *StoreSuite) TestList() {
	s.Run("empty store returns empty slice", func() {
		blueprints, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.NotNil(blueprints)
		s.Empty(blueprints)
	})

	s.create("bob", "tower", pts(5, 5))
	s.create("ana", "house", pts(0, 0, 10, 0))
	s.create("ana", "garage", nil)

	s.Run("returns every blueprint ordered by author and name", func() {
		blueprints, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Equal([]blueprint.Blueprint{
			{Author: "ana", Name: "garage", Points: []blueprint.Point{}},
			{Author: "ana", Name: "house", Points: pts(0, 0, 10, 0)},
			{Author: "bob", Name: "tower", Points: pts(5, 5)},
		}, blueprints)
	})
}
