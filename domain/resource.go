package domain

// Resource is a static, non-medical guidance document from the library.
type Resource struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}
