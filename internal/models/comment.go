package models

// Comment belongs to exactly one post and one author. Comments are
// append-only: no edit or delete path exists.
type Comment struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	AuthorID int    `json:"author_id"`
	PostID   int    `json:"post_id"`

	// Filled by a JOIN against users. AuthorEmail feeds the avatar URL.
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
}
