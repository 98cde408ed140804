package models

// LeadType discriminates the three contact form variants.
type LeadType string

const (
	LeadQuote   LeadType = "quote"
	LeadMessage LeadType = "message"
	LeadQuick   LeadType = "quick"
)

// LeadEntry is one customer inquiry. The full list is persisted as a JSON
// array, newest first; entries are only ever appended or deleted by id.
type LeadEntry struct {
	ID        string                 `json:"id"`
	Type      LeadType               `json:"type"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	CreatedAt string                 `json:"createdAt"`
	Payload   map[string]interface{} `json:"payload"`
	Notes     string                 `json:"notes,omitempty"`
	Status    string                 `json:"status,omitempty"`
}
