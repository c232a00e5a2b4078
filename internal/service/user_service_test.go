package service

import (
	"context"
	"testing"

	"bondify-be/internal/dto"
	"bondify-be/internal/entity"
	"bondify-be/internal/model"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/repository/contract"
	"bondify-be/internal/repository/specification"
	"bondify-be/internal/repository/unitofwork"
	"bondify-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staleReadFactory hides existing users from lookups, as when another signup
// commits between the username check and the insert.
type staleReadFactory struct {
	unitofwork.RepositoryFactory
}

func (f staleReadFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return staleReadUnitOfWork{f.RepositoryFactory.NewUnitOfWork(ctx)}
}

type staleReadUnitOfWork struct {
	unitofwork.UnitOfWork
}

func (u staleReadUnitOfWork) UserRepository() contract.UserRepository {
	return staleReadUsers{u.UnitOfWork.UserRepository()}
}

type staleReadUsers struct {
	contract.UserRepository
}

func (staleReadUsers) FindOne(context.Context, ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

func newUserTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	db, err := database.NewInMemoryGormDB()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return unitofwork.NewRepositoryFactory(db)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newUserTestFactory(t), nil, logger.NewNopLogger())

	user, err := svc.Create(ctx, &dto.CreateUserRequest{Username: "sam", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "sam", user.Username)

	_, err = svc.Create(ctx, &dto.CreateUserRequest{Username: "sam", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_CreateRacingSignup(t *testing.T) {
	ctx := context.Background()
	factory := newUserTestFactory(t)

	_, err := NewUserService(factory, nil, logger.NewNopLogger()).Create(ctx, &dto.CreateUserRequest{Username: "sam", Password: "secret-pass"})
	require.NoError(t, err)

	late := NewUserService(staleReadFactory{factory}, nil, logger.NewNopLogger())
	_, err = late.Create(ctx, &dto.CreateUserRequest{Username: "sam", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// EnsureAdmin treats the lost race like an existing account.
	assert.NoError(t, late.EnsureAdmin(ctx, "sam", "admin-pass"))
}
