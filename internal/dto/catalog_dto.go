package dto

type CategoryResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Quote       string `json:"quote"`
	ImageURL    string `json:"imageUrl"`
	IsPremium   bool   `json:"isPremium"`
}

type QuestionResponse struct {
	Id         uint    `json:"id"`
	CategoryId *string `json:"categoryId"`
	PackId     *uint   `json:"packId,omitempty"`
	Text       string  `json:"text"`
	IsPremium  bool    `json:"isPremium"`
}
