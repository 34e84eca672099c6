package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Member struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null;index"`
	MembershipDate time.Time `gorm:"not null"`
	Loans          []Loan    `gorm:"foreignKey:MemberID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (m *Member) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MembershipDate.IsZero() {
		m.MembershipDate = Today()
	}
	return
}

// BorrowedBooks is the book side of the member's loans. Loans must have been
// loaded with their Book.
func (m Member) BorrowedBooks() []Book {
	books := make([]Book, 0, len(m.Loans))
	for _, l := range m.Loans {
		books = append(books, l.Book)
	}
	return books
}

// Today returns the current UTC date at midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
