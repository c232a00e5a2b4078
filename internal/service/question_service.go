package service

import (
	"context"

	"bondify-be/internal/dto"
	"bondify-be/internal/repository/specification"
	"bondify-be/internal/repository/unitofwork"
)

type IQuestionService interface {
	// GetByCategory lists a category's questions; an unknown category has none.
	GetByCategory(ctx context.Context, categoryId string) ([]*dto.QuestionResponse, error)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory) IQuestionService {
	return &questionService{uowFactory: uowFactory}
}

func (s *questionService) GetByCategory(ctx context.Context, categoryId string) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByCategory{CategoryId: categoryId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}
	return toQuestionResponses(questions), nil
}
