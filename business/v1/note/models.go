package note

import "time"

// Note is the API representation of a stored note.
type Note struct {
	Id        uint64    `json:"id" example:"1"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note text"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
}

// NewNote carries the fields accepted when creating a note.
type NewNote struct {
	Title   string `json:"title" example:"my note"`
	Content string `json:"content" example:"my note text"`
}

// NotePatch carries a partial update. Nil fields are left untouched.
type NotePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Page wraps a slice of the collection with pagination metadata.
type Page struct {
	Items  []Note `json:"items"`
	Count  int    `json:"count" example:"1"`
	Total  int    `json:"total" example:"2"`
	Limit  int    `json:"limit" example:"10"`
	Offset int    `json:"offset" example:"0"`
}
