package service

import (
	"context"

	"bondify-be/internal/dto"
	"bondify-be/internal/repository/specification"
	"bondify-be/internal/repository/unitofwork"
)

type ICategoryService interface {
	GetAll(ctx context.Context) ([]*dto.CategoryResponse, error)
	GetById(ctx context.Context, id string) (*dto.CategoryResponse, error)
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory) ICategoryService {
	return &categoryService{uowFactory: uowFactory}
}

func (s *categoryService) GetAll(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "position"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = toCategoryResponse(c)
	}
	return res, nil
}

func (s *categoryService) GetById(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return toCategoryResponse(category), nil
}
