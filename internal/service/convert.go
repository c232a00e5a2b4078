package service

import (
	"bondify-be/internal/dto"
	"bondify-be/internal/entity"
)

const dayLayout = "2006-01-02"

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		Quote:       c.Quote,
		ImageURL:    c.ImageURL,
		IsPremium:   c.IsPremium,
	}
}

func toQuestionResponses(questions []*entity.Question) []*dto.QuestionResponse {
	res := make([]*dto.QuestionResponse, len(questions))
	for i, q := range questions {
		res[i] = &dto.QuestionResponse{
			Id:         q.Id,
			CategoryId: q.CategoryId,
			PackId:     q.PackId,
			Text:       q.Text,
			IsPremium:  q.IsPremium,
		}
	}
	return res
}

func toPackResponse(p *entity.ConversationPack) *dto.ConversationPackResponse {
	return &dto.ConversationPackResponse{
		Id:           p.Id,
		Title:        p.Title,
		Description:  p.Description,
		ExpertName:   p.ExpertName,
		ExpertTitle:  p.ExpertTitle,
		ExpertAvatar: p.ExpertAvatar,
		ReleaseDate:  p.ReleaseDate.Format(dayLayout),
		Theme:        p.Theme,
		IsPremium:    p.IsPremium,
		IsActive:     p.IsActive,
		IsFeatured:   p.IsFeatured,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	favorites := u.FavoriteQuestions
	if favorites == nil {
		favorites = []int{}
	}
	return &dto.UserResponse{
		Id:                u.Id,
		Username:          u.Username,
		IsPremium:         u.IsPremium,
		FavoriteQuestions: favorites,
	}
}
