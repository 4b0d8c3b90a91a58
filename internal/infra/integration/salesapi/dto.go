package salesapi

import "github.com/Ibrakam/Sales-Machine/internal/entity"

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

type LeadListResponse struct {
	Items []entity.Lead `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Pages int           `json:"pages"`
}

type CreateLeadInput struct {
	Name    string            `json:"name"`
	Email   string            `json:"email,omitempty"`
	Phone   string            `json:"phone,omitempty"`
	Company string            `json:"company,omitempty"`
	Status  entity.LeadStatus `json:"status,omitempty"`
	Source  entity.LeadSource `json:"source,omitempty"`
	Notes   string            `json:"notes,omitempty"`
	Tags    []string          `json:"tags,omitempty"`
}

// UpdateLeadInput é um patch parcial: campos nil ficam de fora do JSON
// e o backend preserva o valor atual.
type UpdateLeadInput struct {
	Name    *string            `json:"name,omitempty"`
	Email   *string            `json:"email,omitempty"`
	Phone   *string            `json:"phone,omitempty"`
	Company *string            `json:"company,omitempty"`
	Status  *entity.LeadStatus `json:"status,omitempty"`
	Source  *entity.LeadSource `json:"source,omitempty"`
	Notes   *string            `json:"notes,omitempty"`
	Tags    *[]string          `json:"tags,omitempty"`
}

type CreateInteractionInput struct {
	Message    string                   `json:"message"`
	AuthorType entity.InteractionAuthor `json:"author_type,omitempty"`
	AuthorName string                   `json:"author_name,omitempty"`
	Context    map[string]interface{}   `json:"context,omitempty"`
}

type ChatHistoryMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string               `json:"message"`
	LeadID  int                  `json:"lead_id,omitempty"`
	History []ChatHistoryMessage `json:"history,omitempty"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

type ChatResponse struct {
	Reply  string     `json:"reply"`
	LeadID int        `json:"lead_id,omitempty"`
	Model  string     `json:"model,omitempty"`
	Usage  *ChatUsage `json:"usage,omitempty"`
}

type InstagramAccountInput struct {
	Username          string                 `json:"username"`
	BusinessAccountID string                 `json:"business_account_id,omitempty"`
	ProfileURL        string                 `json:"profile_url,omitempty"`
	FollowersCount    int                    `json:"followers_count,omitempty"`
	AccessToken       string                 `json:"access_token,omitempty"`
	Metadata          map[string]interface{} `json:"integration_metadata,omitempty"`
}

// UpdateInstagramInput é o patch parcial do PUT /instagram/account
type UpdateInstagramInput struct {
	Username          *string `json:"username,omitempty"`
	BusinessAccountID *string `json:"business_account_id,omitempty"`
	AccessToken       *string `json:"access_token,omitempty"`
	Status            *string `json:"status,omitempty"`
}

type InstagramSyncResponse struct {
	Synced       int           `json:"synced"`
	CreatedLeads []entity.Lead `json:"created_leads"`
}
