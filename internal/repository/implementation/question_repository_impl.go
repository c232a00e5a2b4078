package implementation

import (
	"context"

	"bondify-be/internal/entity"
	"bondify-be/internal/mapper"
	"bondify-be/internal/model"
	"bondify-be/internal/repository/contract"
	"bondify-be/internal/repository/specification"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *entity.Question) error {
	m := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "create question")
	}
	*question = *r.mapper.ToEntity(m)
	return nil
}

// CreateMany inserts in one batch and writes generated ids back.
func (r *QuestionRepositoryImpl) CreateMany(ctx context.Context, questions []*entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	ms := r.mapper.ToModels(questions)
	if err := r.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return errors.Wrap(err, "create questions")
	}
	for i, m := range ms {
		*questions[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var ms []*model.Question
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "list questions")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *QuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Question{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count questions")
	}
	return count, nil
}
