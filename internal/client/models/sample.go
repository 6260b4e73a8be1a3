package models

// Sample is a free-text record kept by the backend's demo endpoint.
type Sample struct {
	ID   string `json:"id"`
	Date Time   `json:"date"`
	Info string `json:"info"`
}

// SearchResult is one hit of the free-text search.
type SearchResult struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
