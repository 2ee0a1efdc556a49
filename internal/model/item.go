package model

// Item is the domain model for a todo entry.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID        uint64 `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}
