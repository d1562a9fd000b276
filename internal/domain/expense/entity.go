package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a miscellaneous cost booked against a location, or against the
// shared admin bucket when LocationID is nil. AttachmentURL is an opaque
// reference owned by the document-store collaborator.
type Expense struct {
	ID            string
	LocationID    *string
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	PaidBy        *string
	PaidFrom      *string
	AttachmentURL *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	LocationName *string
}
