package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"enrolld/internal/institution/models"
	"enrolld/internal/institution/store"
	"enrolld/internal/platform/logger"
	dErrors "enrolld/pkg/domain-errors"
)

type CatalogSuite struct {
	suite.Suite
	catalog *Catalog
	ctx     context.Context
}

func (s *CatalogSuite) SetupTest() {
	fileStore := store.NewFileStore(s.T().TempDir(), logger.NewNop())
	s.catalog = NewCatalog(fileStore, logger.NewNop())
	s.ctx = context.Background()
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) TestCreateIgnoresCallerSuppliedID() {
	created, err := s.catalog.Create(s.ctx, models.Institution{ID: 999, Name: "Alpha U", Type: "Public"})
	s.Require().NoError(err)
	s.Equal(int64(1), created.ID)

	// The assigned ID is usable immediately.
	found, err := s.catalog.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Alpha U", found.Name)
}

func (s *CatalogSuite) TestCreateAssignsSequentialIDs() {
	first, err := s.catalog.Create(s.ctx, models.Institution{Name: "First"})
	s.Require().NoError(err)
	second, err := s.catalog.Create(s.ctx, models.Institution{Name: "Second"})
	s.Require().NoError(err)
	s.Greater(second.ID, first.ID)
}

func (s *CatalogSuite) TestCreateRequiresName() {
	_, err := s.catalog.Create(s.ctx, models.Institution{Type: "Public"})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *CatalogSuite) TestGetByIDNotFound() {
	_, err := s.catalog.GetByID(s.ctx, 42)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogSuite) TestReplaceForcesPathID() {
	created, err := s.catalog.Create(s.ctx, models.Institution{Name: "Alpha U", Type: "Public"})
	s.Require().NoError(err)

	// Body carries a different ID; the path ID wins.
	replaced, err := s.catalog.Replace(s.ctx, created.ID, models.Institution{
		ID:   777,
		Name: "Alpha University",
		Type: "National",
	})
	s.Require().NoError(err)
	s.Equal(created.ID, replaced.ID)

	found, err := s.catalog.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Alpha University", found.Name)
	s.Equal("National", found.Type)

	_, err = s.catalog.GetByID(s.ctx, 777)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogSuite) TestReplaceNotFound() {
	_, err := s.catalog.Replace(s.ctx, 42, models.Institution{Name: "Ghost"})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogSuite) TestDelete() {
	created, err := s.catalog.Create(s.ctx, models.Institution{Name: "Doomed"})
	s.Require().NoError(err)

	s.Require().NoError(s.catalog.Delete(s.ctx, created.ID))

	_, err = s.catalog.GetByID(s.ctx, created.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.catalog.Delete(s.ctx, created.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogSuite) TestQueryFilters() {
	_, err := s.catalog.Create(s.ctx, models.Institution{
		Name: "Alpha U", Type: "Public",
		Colleges: []models.College{{Name: "Engineering"}},
	})
	s.Require().NoError(err)
	_, err = s.catalog.Create(s.ctx, models.Institution{
		Name: "Beta College", Type: "Private",
		Colleges: []models.College{{Name: "Arts"}, {Name: "Law"}},
	})
	s.Require().NoError(err)

	s.Run("no filters returns everything", func() {
		institutions, total, err := s.catalog.Query(s.ctx, models.Filter{})
		s.Require().NoError(err)
		s.Len(institutions, 2)
		s.Equal(2, total)
	})

	s.Run("name is a case-insensitive substring match", func() {
		institutions, total, err := s.catalog.Query(s.ctx, models.Filter{Name: "alpha"})
		s.Require().NoError(err)
		s.Require().Equal(1, total)
		s.Equal("Alpha U", institutions[0].Name)
	})

	s.Run("type matches exactly", func() {
		_, total, err := s.catalog.Query(s.ctx, models.Filter{Type: "Private"})
		s.Require().NoError(err)
		s.Equal(1, total)

		_, total, err = s.catalog.Query(s.ctx, models.Filter{Type: "private"})
		s.Require().NoError(err)
		s.Equal(0, total)
	})

	s.Run("college matches any element exactly", func() {
		institutions, total, err := s.catalog.Query(s.ctx, models.Filter{College: "Engineering"})
		s.Require().NoError(err)
		s.Require().Equal(1, total)
		s.Equal("Alpha U", institutions[0].Name)

		institutions, total, err = s.catalog.Query(s.ctx, models.Filter{College: "Medicine"})
		s.Require().NoError(err)
		s.Equal(0, total)
		s.Empty(institutions)
	})

	s.Run("filters are conjunctive", func() {
		_, total, err := s.catalog.Query(s.ctx, models.Filter{Name: "alpha", Type: "Private"})
		s.Require().NoError(err)
		s.Equal(0, total)
	})
}

func (s *CatalogSuite) TestCollegeOrderIsPreserved() {
	created, err := s.catalog.Create(s.ctx, models.Institution{
		Name:     "Ordered U",
		Colleges: []models.College{{Name: "Zeta"}, {Name: "Alpha"}, {Name: "Mu"}},
	})
	s.Require().NoError(err)

	found, err := s.catalog.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal([]models.College{{Name: "Zeta"}, {Name: "Alpha"}, {Name: "Mu"}}, found.Colleges)
}
