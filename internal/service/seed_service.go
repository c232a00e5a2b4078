package service

import (
	"context"
	"time"

	"bondify-be/internal/catalog"
	"bondify-be/internal/entity"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/repository/unitofwork"
)

// SeedDatabase loads the bundled catalog into an empty database. It reports
// false without writing when categories already exist. Pack release dates
// are resolved against today.
func SeedDatabase(ctx context.Context, uowFactory unitofwork.RepositoryFactory, bundle *catalog.Bundle, today time.Time, log logger.ILogger) (bool, error) {
	uow := uowFactory.NewUnitOfWork(ctx)
	count, err := uow.CategoryRepository().Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Info("Seed", "Database already contains data, skipping seed", nil)
		return false, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	for i, c := range bundle.Categories {
		category := &entity.Category{
			Id:          c.ID,
			Name:        c.Name,
			Subtitle:    c.Subtitle,
			Description: c.Description,
			Quote:       c.Quote,
			ImageURL:    c.ImageURL,
			IsPremium:   c.IsPremium,
			Position:    i,
		}
		if err := uow.CategoryRepository().Create(ctx, category); err != nil {
			return false, err
		}

		questions := make([]*entity.Question, len(c.Questions))
		for j, text := range c.Questions {
			questions[j] = &entity.Question{
				CategoryId: &category.Id,
				Text:       text,
				IsPremium:  c.IsPremium,
			}
		}
		if err := uow.QuestionRepository().CreateMany(ctx, questions); err != nil {
			return false, err
		}
	}

	for _, p := range bundle.Packs {
		pack := &entity.ConversationPack{
			Title:        p.Title,
			Description:  p.Description,
			ExpertName:   p.ExpertName,
			ExpertTitle:  p.ExpertTitle,
			ExpertAvatar: p.ExpertAvatar,
			ReleaseDate:  p.ReleaseDate(today),
			Theme:        p.Theme,
			IsPremium:    p.IsPremium,
			IsActive:     p.IsActive,
			IsFeatured:   p.IsFeatured,
		}
		if err := uow.ConversationPackRepository().Create(ctx, pack); err != nil {
			return false, err
		}

		questions := make([]*entity.Question, len(p.Questions))
		for j, text := range p.Questions {
			questions[j] = &entity.Question{
				PackId:    &pack.Id,
				Text:      text,
				IsPremium: pack.IsPremium,
			}
		}
		if err := uow.QuestionRepository().CreateMany(ctx, questions); err != nil {
			return false, err
		}
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	log.Info("Seed", "Database seeded", map[string]interface{}{
		"categories": len(bundle.Categories),
		"packs":      len(bundle.Packs),
	})
	return true, nil
}
