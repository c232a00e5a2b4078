package unitofwork

import (
	"context"

	"bondify-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CategoryRepository() contract.CategoryRepository
	QuestionRepository() contract.QuestionRepository
	ConversationPackRepository() contract.ConversationPackRepository
	UserRepository() contract.UserRepository
}
