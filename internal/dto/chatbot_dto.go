package dto

type ChatRequest struct {
	Question string `query:"question" json:"question" validate:"notblank"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	ChatAvailable bool   `json:"chat_available"`
	Drugs         int64  `json:"drugs"`
	Passages      int64  `json:"passages"`
}
