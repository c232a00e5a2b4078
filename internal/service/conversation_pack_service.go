package service

import (
	"context"
	"time"

	"bondify-be/internal/dto"
	"bondify-be/internal/entity"
	"bondify-be/internal/eventbus"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/repository/specification"
	"bondify-be/internal/repository/unitofwork"
	"bondify-be/pkg/events"
)

type IConversationPackService interface {
	GetAll(ctx context.Context) ([]*dto.ConversationPackResponse, error)
	GetById(ctx context.Context, id uint) (*dto.ConversationPackResponse, error)
	// GetWeekly returns the newest active pack already released today.
	GetWeekly(ctx context.Context) (*dto.ConversationPackResponse, error)
	GetFeatured(ctx context.Context) ([]*dto.ConversationPackResponse, error)
	GetQuestions(ctx context.Context, packId uint) ([]*dto.QuestionResponse, error)
	Create(ctx context.Context, req *dto.CreateConversationPackRequest) (*dto.ConversationPackResponse, error)
	AddQuestions(ctx context.Context, packId uint, texts []string) ([]*dto.QuestionResponse, error)
}

type conversationPackService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  eventbus.Publisher
	logger     logger.ILogger
	now        func() time.Time
}

func NewConversationPackService(uowFactory unitofwork.RepositoryFactory, publisher eventbus.Publisher, log logger.ILogger) IConversationPackService {
	return &conversationPackService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
		now:        time.Now,
	}
}

func (s *conversationPackService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *conversationPackService) list(ctx context.Context, specs ...specification.Specification) ([]*dto.ConversationPackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	packs, err := uow.ConversationPackRepository().FindAll(ctx, append(specs, specification.NewestReleaseFirst{})...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConversationPackResponse, len(packs))
	for i, p := range packs {
		res[i] = toPackResponse(p)
	}
	return res, nil
}

func (s *conversationPackService) GetAll(ctx context.Context) ([]*dto.ConversationPackResponse, error) {
	return s.list(ctx)
}

func (s *conversationPackService) GetFeatured(ctx context.Context) ([]*dto.ConversationPackResponse, error) {
	return s.list(ctx, specification.FeaturedPacks{})
}

func (s *conversationPackService) GetById(ctx context.Context, id uint) (*dto.ConversationPackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pack, err := uow.ConversationPackRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, ErrPackNotFound
	}
	return toPackResponse(pack), nil
}

func (s *conversationPackService) GetWeekly(ctx context.Context) (*dto.ConversationPackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pack, err := uow.ConversationPackRepository().FindOne(ctx,
		specification.ActivePacks{},
		specification.ReleasedBy{Day: s.today()},
		specification.NewestReleaseFirst{},
	)
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, ErrPackNotFound
	}
	return toPackResponse(pack), nil
}

func (s *conversationPackService) GetQuestions(ctx context.Context, packId uint) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pack, err := uow.ConversationPackRepository().FindOne(ctx, specification.ByID{ID: packId})
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, ErrPackNotFound
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByPack{PackId: packId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

func (s *conversationPackService) Create(ctx context.Context, req *dto.CreateConversationPackRequest) (*dto.ConversationPackResponse, error) {
	releaseDate, err := time.ParseInLocation(dayLayout, req.ReleaseDate, time.UTC)
	if err != nil {
		return nil, err
	}

	pack := &entity.ConversationPack{
		Title:        req.Title,
		Description:  req.Description,
		ExpertName:   req.ExpertName,
		ExpertTitle:  req.ExpertTitle,
		ExpertAvatar: req.ExpertAvatar,
		ReleaseDate:  releaseDate,
		Theme:        req.Theme,
		IsPremium:    boolOr(req.IsPremium, true),
		IsActive:     boolOr(req.IsActive, true),
		IsFeatured:   boolOr(req.IsFeatured, false),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationPackRepository().Create(ctx, pack); err != nil {
		return nil, err
	}

	res := toPackResponse(pack)
	s.publish(ctx, events.New(eventbus.PackCreated, map[string]interface{}{
		"packId":      pack.Id,
		"title":       pack.Title,
		"releaseDate": res.ReleaseDate,
		"isFeatured":  pack.IsFeatured,
	}))
	return res, nil
}

// AddQuestions appends questions to a pack. They carry no category and
// inherit the pack's premium flag.
func (s *conversationPackService) AddQuestions(ctx context.Context, packId uint, texts []string) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	pack, err := uow.ConversationPackRepository().FindOne(ctx, specification.ByID{ID: packId})
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, ErrPackNotFound
	}

	questions := make([]*entity.Question, len(texts))
	for i, text := range texts {
		questions[i] = &entity.Question{
			PackId:    &pack.Id,
			Text:      text,
			IsPremium: pack.IsPremium,
		}
	}
	if err := uow.QuestionRepository().CreateMany(ctx, questions); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(eventbus.PackQuestionsAdded, map[string]interface{}{
		"packId": pack.Id,
		"title":  pack.Title,
		"count":  len(questions),
	}))
	return toQuestionResponses(questions), nil
}

func (s *conversationPackService) publish(ctx context.Context, evt events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("PackService", "Failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
