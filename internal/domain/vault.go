package domain

// VaultEntry is the single protected card a user holds for one rarity
type VaultEntry struct {
	UserID string `json:"user_id"`
	Rarity Rarity `json:"rarity"`
	CardID int    `json:"card_id"`
}

// VaultStoreResult describes a vault store, including any evicted card
type VaultStoreResult struct {
	Stored  Card  `json:"stored"`
	Evicted *Card `json:"evicted,omitempty"`
}
