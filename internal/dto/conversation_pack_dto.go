package dto

type ConversationPackResponse struct {
	Id           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ExpertName   string `json:"expertName"`
	ExpertTitle  string `json:"expertTitle"`
	ExpertAvatar string `json:"expertAvatar"`
	// YYYY-MM-DD
	ReleaseDate string `json:"releaseDate"`
	Theme       string `json:"theme"`
	IsPremium   bool   `json:"isPremium"`
	IsActive    bool   `json:"isActive"`
	IsFeatured  bool   `json:"isFeatured"`
}

type CreateConversationPackRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"required"`
	ExpertName   string `json:"expertName" validate:"required,max=255"`
	ExpertTitle  string `json:"expertTitle" validate:"required,max=255"`
	ExpertAvatar string `json:"expertAvatar" validate:"required,url"`
	ReleaseDate  string `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Theme        string `json:"theme" validate:"required,max=255"`
	IsPremium    *bool  `json:"isPremium"`
	IsActive     *bool  `json:"isActive"`
	IsFeatured   *bool  `json:"isFeatured"`
}

type AddPackQuestionsRequest struct {
	Questions []string `json:"questions" validate:"required,min=1,dive,required"`
}
