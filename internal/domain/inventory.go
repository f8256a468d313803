package domain

// InventoryEntry is one (user, card) ledger row.
// Invariant: 0 <= Committed <= Count. A row with Count == 0 is logically absent.
type InventoryEntry struct {
	UserID    string `json:"user_id"`
	CardID    int    `json:"card_id"`
	Count     int    `json:"count"`
	Committed int    `json:"committed"`
}

// Free returns the quantity available for theft, vaulting or forge commitment
func (e InventoryEntry) Free() int {
	return e.Count - e.Committed
}
