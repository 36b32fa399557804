package entity

// URL is a mapping from a short identifier to the full URL it stands for.
type URL struct {
	ShortURL string `json:"short_url"`
	FullURL  string `json:"original_url"`
}
