package entity

import "time"

// Entidade: InstagramAccount
// O backend garante no máximo uma conta por workspace (singleton).
type InstagramAccount struct {
	ID                int                    `json:"id"`
	Username          string                 `json:"username"`
	BusinessAccountID string                 `json:"business_account_id,omitempty"`
	ProfileURL        string                 `json:"profile_url,omitempty"`
	FollowersCount    int                    `json:"followers_count,omitempty"`
	Status            string                 `json:"status"` // connected, pending...
	ConnectedAt       *time.Time             `json:"connected_at,omitempty"`
	LastSyncAt        *time.Time             `json:"last_sync_at,omitempty"`
	Metadata          map[string]interface{} `json:"integration_metadata,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         *time.Time             `json:"updated_at,omitempty"`
}

func (a *InstagramAccount) IsConnected() bool {
	return a != nil && a.Status == "connected"
}
