package domain

import "time"

// User represents a registered player
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	NextDropTime    time.Time `json:"next_drop_time"`
	NextTheftTime   time.Time `json:"next_theft_time"`
	ConnectionCount int       `json:"connection_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// RarityStats counts distinct owned cards per tier
type RarityStats map[Rarity]int

// UserProfile is the read model returned for the acting user
type UserProfile struct {
	User
	FreeCards      int         `json:"free_cards"`
	CommittedCards int         `json:"committed_cards"`
	VaultedCards   int         `json:"vaulted_cards"`
	DistinctCards  RarityStats `json:"distinct_cards"`
}

// Registration is the result of creating a user
type Registration struct {
	User        User   `json:"user"`
	StarterPack []Card `json:"starter_pack"`
}
