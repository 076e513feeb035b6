package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

type Ticket struct {
	id          uint
	title       string
	description string
	category    vo.Category
	priority    vo.Priority
	status      vo.TicketStatus
	ownerID     uint
	attachments []Attachment
	notes       []Note
	createdAt   time.Time
}

// NewTicket creates a ticket in status new. Whatever status a caller may have
// asked for is ignored; tickets always enter the system as new.
func NewTicket(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	ownerID uint,
	attachments []Attachment,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(attachments) > MaxAttachments {
		return nil, fmt.Errorf("at most %d attachments are allowed", MaxAttachments)
	}
	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Ticket{
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusNew,
		ownerID:     ownerID,
		attachments: attachments,
		notes:       []Note{},
		createdAt:   biztime.NowUTC(),
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	ownerID uint,
	attachments []Attachment,
	notes []Note,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}
	if notes == nil {
		notes = []Note{}
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		ownerID:     ownerID,
		attachments: attachments,
		notes:       notes,
		createdAt:   createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) Attachments() []Attachment {
	attachmentsCopy := make([]Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) Notes() []Note {
	notesCopy := make([]Note, len(t.notes))
	copy(notesCopy, t.notes)
	return notesCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to a new lifecycle status. Any of the legal
// statuses may follow any other; values outside the legal set are rejected.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	return nil
}

// AppendNote adds a note to the end of the note sequence. Notes are never
// removed or reordered.
func (t *Ticket) AppendNote(note Note) error {
	if len(note.Text) == 0 {
		return fmt.Errorf("note text cannot be empty")
	}

	t.notes = append(t.notes, note)
	return nil
}

// CanBeViewedBy reports whether the given user may read this ticket.
func (t *Ticket) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return t.ownerID == userID
}
