package contract

import (
	"context"

	"bondify-be/internal/entity"
	"bondify-be/internal/repository/specification"
)

type ConversationPackRepository interface {
	Create(ctx context.Context, pack *entity.ConversationPack) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationPack, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationPack, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
