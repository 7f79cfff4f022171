package entities

// Phrase is a pre-seeded, read-only text entry with an optional response.
type Phrase struct {
	ID       int64  `json:"id"`
	Number   int    `json:"phrase_number"`
	Title    string `json:"phrase_title"`
	Text     string `json:"phrase_text"`
	Response string `json:"response_text,omitempty"`
}
