package domain

import "time"

// TheftRecord is a persisted theft, visible to its victim
type TheftRecord struct {
	ID       int64     `json:"id"`
	ThiefID  string    `json:"thief_id"`
	VictimID string    `json:"victim_id"`
	CardID   int       `json:"card_id"`
	StolenAt time.Time `json:"stolen_at"`
}

// TheftNotification is a theft record resolved for display to the victim
type TheftNotification struct {
	ID        int64     `json:"id"`
	Card      Card      `json:"card"`
	ThiefName string    `json:"thief_name"`
	StolenAt  time.Time `json:"stolen_at"`
}

// TheftResult is returned to the thief on success
type TheftResult struct {
	Card          Card      `json:"card"`
	ThiefName     string    `json:"thief_name"`
	VictimName    string    `json:"victim_name"`
	VictimID      string    `json:"victim_id"`
	NextTheftTime time.Time `json:"next_theft_time"`
}

// DropResult is returned after a successful drop
type DropResult struct {
	Card         Card      `json:"card"`
	NextDropTime time.Time `json:"next_drop_time"`
}

// DropStatus reports when the next drop becomes available
type DropStatus struct {
	NextDropTime time.Time `json:"next_drop_time"`
	Available    bool      `json:"available"`
}

// ForgeResult is returned after a forge execution
type ForgeResult struct {
	Consumed     []OwnedCard `json:"consumed"`
	Weight       float64     `json:"weight"`
	OutputRarity Rarity      `json:"output_rarity"`
	Awarded      Card        `json:"awarded"`
}

// ForgePreview is the unmodified weight of the committed set
type ForgePreview struct {
	Committed []OwnedCard `json:"committed"`
	Weight    int         `json:"weight"`
	Rarity    Rarity      `json:"rarity"`
}
