package models

// Post is a single blog entry. Date is the display string stamped at
// creation time, not a parsed timestamp.
type Post struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"` // rich text, stored as HTML
	ImgURL   string `json:"img_url"`
	AuthorID int    `json:"author_id"`

	// Filled by a JOIN against users so templates never chase relations.
	AuthorName string `json:"author_name,omitempty"`
}
