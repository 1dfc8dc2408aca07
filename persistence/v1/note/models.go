package note

import "time"

type Note struct {
	Id        uint64
	Title     string
	Content   string
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewNote struct {
	Title   string
	Content string
}

// Patch carries optional replacement values, nil means keep the field
type Patch struct {
	Title   *string
	Content *string
}
