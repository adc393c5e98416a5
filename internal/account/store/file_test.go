package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"enrolld/internal/account/models"
	"enrolld/internal/platform/logger"
	"enrolld/pkg/platform/sentinel"
)

type FileStoreSuite struct {
	suite.Suite
	store *FileStore
	ctx   context.Context
}

func (s *FileStoreSuite) SetupTest() {
	s.store = NewFileStore(s.T().TempDir(), logger.NewNop())
	s.ctx = context.Background()
}

func TestFileStoreSuite(t *testing.T) {
	suite.Run(t, new(FileStoreSuite))
}

func (s *FileStoreSuite) newAccount(email string) models.Account {
	return models.Account{
		ID:           uuid.NewString(),
		Name:         "Someone",
		Email:        email,
		PasswordHash: "$2a$04$fakehash",
	}
}

func (s *FileStoreSuite) TestAppendAndAll() {
	s.Require().NoError(s.store.Append(s.ctx, s.newAccount("a@example.com")))
	s.Require().NoError(s.store.Append(s.ctx, s.newAccount("b@example.com")))

	accounts, err := s.store.All(s.ctx)
	s.Require().NoError(err)
	s.Len(accounts, 2)
}

func (s *FileStoreSuite) TestEmailUniquenessIgnoresCase() {
	s.Require().NoError(s.store.Append(s.ctx, s.newAccount("Ana@X.com")))

	err := s.store.Append(s.ctx, s.newAccount("ana@x.com"))
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	accounts, err := s.store.All(s.ctx)
	s.Require().NoError(err)
	s.Len(accounts, 1)
}

func (s *FileStoreSuite) TestFindByEmailFold() {
	account := s.newAccount("Ana@X.com")
	s.Require().NoError(s.store.Append(s.ctx, account))

	found, err := s.store.FindByEmailFold(s.ctx, "ANA@X.COM")
	s.Require().NoError(err)
	s.Equal(account.ID, found.ID)

	_, err = s.store.FindByEmailFold(s.ctx, "nobody@x.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *FileStoreSuite) TestFindByEmailExactIsCaseSensitive() {
	account := s.newAccount("Ana@X.com")
	s.Require().NoError(s.store.Append(s.ctx, account))

	found, err := s.store.FindByEmailExact(s.ctx, "Ana@X.com")
	s.Require().NoError(err)
	s.Equal(account.ID, found.ID)

	_, err = s.store.FindByEmailExact(s.ctx, "ana@x.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *FileStoreSuite) TestRecordsSurviveReopen() {
	dir := s.T().TempDir()
	first := NewFileStore(dir, logger.NewNop())
	account := s.newAccount("persist@example.com")
	s.Require().NoError(first.Append(s.ctx, account))

	reopened := NewFileStore(dir, logger.NewNop())
	found, err := reopened.FindByEmailExact(s.ctx, "persist@example.com")
	s.Require().NoError(err)
	s.Equal(account, found)
}
