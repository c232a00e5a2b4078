package mapper

import (
	"time"

	"bondify-be/internal/entity"
	"bondify-be/internal/model"

	"gorm.io/datatypes"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		Quote:       c.Quote,
		ImageURL:    c.ImageURL,
		IsPremium:   c.IsPremium,
		Position:    c.Position,
	}
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		Quote:       c.Quote,
		ImageURL:    c.ImageURL,
		IsPremium:   c.IsPremium,
		Position:    c.Position,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:         q.Id,
		CategoryId: q.CategoryId,
		PackId:     q.PackId,
		Text:       q.Text,
		IsPremium:  q.IsPremium,
		CreatedAt:  q.CreatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:         q.Id,
		CategoryId: q.CategoryId,
		PackId:     q.PackId,
		Text:       q.Text,
		IsPremium:  q.IsPremium,
		CreatedAt:  q.CreatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

func (m *QuestionMapper) ToModels(questions []*entity.Question) []*model.Question {
	models := make([]*model.Question, len(questions))
	for i, q := range questions {
		models[i] = m.ToModel(q)
	}
	return models
}

type ConversationPackMapper struct{}

func NewConversationPackMapper() *ConversationPackMapper {
	return &ConversationPackMapper{}
}

func (m *ConversationPackMapper) ToEntity(p *model.ConversationPack) *entity.ConversationPack {
	if p == nil {
		return nil
	}
	return &entity.ConversationPack{
		Id:           p.Id,
		Title:        p.Title,
		Description:  p.Description,
		ExpertName:   p.ExpertName,
		ExpertTitle:  p.ExpertTitle,
		ExpertAvatar: p.ExpertAvatar,
		ReleaseDate:  time.Time(p.ReleaseDate).UTC(),
		Theme:        p.Theme,
		IsPremium:    p.IsPremium,
		IsActive:     p.IsActive,
		IsFeatured:   p.IsFeatured,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *ConversationPackMapper) ToModel(p *entity.ConversationPack) *model.ConversationPack {
	if p == nil {
		return nil
	}
	return &model.ConversationPack{
		Id:           p.Id,
		Title:        p.Title,
		Description:  p.Description,
		ExpertName:   p.ExpertName,
		ExpertTitle:  p.ExpertTitle,
		ExpertAvatar: p.ExpertAvatar,
		ReleaseDate:  datatypes.Date(p.ReleaseDate),
		Theme:        p.Theme,
		IsPremium:    p.IsPremium,
		IsActive:     p.IsActive,
		IsFeatured:   p.IsFeatured,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *ConversationPackMapper) ToEntities(packs []*model.ConversationPack) []*entity.ConversationPack {
	entities := make([]*entity.ConversationPack, len(packs))
	for i, p := range packs {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
