package dto

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
}

type UserResponse struct {
	Id                uint   `json:"id"`
	Username          string `json:"username"`
	IsPremium         bool   `json:"isPremium"`
	FavoriteQuestions []int  `json:"favoriteQuestions"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

type UpdatePremiumRequest struct {
	IsPremium *bool `json:"isPremium" validate:"required"`
}
