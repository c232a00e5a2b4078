package implementation

import (
	"context"
	stderrors "errors"

	"bondify-be/internal/entity"
	"bondify-be/internal/mapper"
	"bondify-be/internal/model"
	"bondify-be/internal/repository/contract"
	"bondify-be/internal/repository/specification"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ConversationPackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationPackMapper
}

func NewConversationPackRepository(db *gorm.DB) contract.ConversationPackRepository {
	return &ConversationPackRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationPackMapper(),
	}
}

func (r *ConversationPackRepositoryImpl) Create(ctx context.Context, pack *entity.ConversationPack) error {
	m := r.mapper.ToModel(pack)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "create conversation pack")
	}
	*pack = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConversationPackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationPack, error) {
	var m model.ConversationPack
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find conversation pack")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConversationPackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationPack, error) {
	var ms []*model.ConversationPack
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "list conversation packs")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *ConversationPackRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ConversationPack{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count conversation packs")
	}
	return count, nil
}
