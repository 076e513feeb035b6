package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Note is an append-only administrative annotation. Notes have no identity of
// their own; they live in order inside the owning ticket row.
type Note struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

const maxNoteLength = 5000

func NewNote(text, createdBy string) (Note, error) {
	if len(text) == 0 {
		return Note{}, fmt.Errorf("note text cannot be empty")
	}
	if len(text) > maxNoteLength {
		return Note{}, fmt.Errorf("note text exceeds maximum length of %d characters", maxNoteLength)
	}
	if len(createdBy) == 0 {
		return Note{}, fmt.Errorf("note author is required")
	}

	return Note{
		Text:      text,
		CreatedAt: biztime.NowUTC(),
		CreatedBy: createdBy,
	}, nil
}
