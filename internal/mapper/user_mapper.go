package mapper

import (
	"encoding/json"

	"bondify-be/internal/entity"
	"bondify-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	favorites := []int{}
	if len(u.FavoriteQuestions) > 0 {
		// A malformed column reads as no favorites.
		_ = json.Unmarshal(u.FavoriteQuestions, &favorites)
	}

	return &entity.User{
		Id:                u.Id,
		Username:          u.Username,
		PasswordHash:      u.PasswordHash,
		Role:              entity.UserRole(u.Role),
		IsPremium:         u.IsPremium,
		FavoriteQuestions: favorites,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	favorites := u.FavoriteQuestions
	if favorites == nil {
		favorites = []int{}
	}
	raw, _ := json.Marshal(favorites)

	return &model.User{
		Id:                u.Id,
		Username:          u.Username,
		PasswordHash:      u.PasswordHash,
		Role:              string(u.Role),
		IsPremium:         u.IsPremium,
		FavoriteQuestions: datatypes.JSON(raw),
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
