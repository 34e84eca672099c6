package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
)

type BookRequest struct {
	Title  string `json:"title" binding:"required,booktitle" example:"Moby Dick"`
	Author string `json:"author" binding:"required,authorname" example:"Herman Melville"`
	Amount int    `json:"amount" binding:"min=0" example:"3"`
}

type MemberSummary struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	MembershipDate model.Date `json:"membership_date" swaggertype:"string" example:"2025-11-24"`
}

type Book struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Amount    int             `json:"amount"`
	Borrowers []MemberSummary `json:"borrowers"`
	CreatedAt model.Date      `json:"created_at" swaggertype:"string" example:"2025-11-24"`
	UpdatedAt model.Date      `json:"updated_at" swaggertype:"string" example:"2025-11-24"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type ListBooksResponse struct {
	Data []Book `json:"data"`
}

type BookSummary struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Amount int       `json:"amount"`
}

type ListBookSummariesResponse struct {
	Data []BookSummary `json:"data"`
}

type TitlesResponse struct {
	Data []string `json:"data"`
}

type TitleCountsResponse struct {
	Data map[string]int64 `json:"data"`
}

type LoanRequest struct {
	MemberID uuid.UUID `json:"member_id" binding:"required"`
	BookID   uuid.UUID `json:"book_id" binding:"required"`
}

type Loan struct {
	MemberID   uuid.UUID `json:"member_id"`
	BookID     uuid.UUID `json:"book_id"`
	BorrowedAt time.Time `json:"borrowed_at"`
}

type LoanResponse struct {
	Data Loan `json:"data"`
}

func toMemberSummary(m model.Member) MemberSummary {
	return MemberSummary{
		ID:             m.ID,
		Name:           m.Name,
		MembershipDate: model.NewDate(m.MembershipDate),
	}
}

func toBook(b model.Book) Book {
	borrowers := make([]MemberSummary, 0, len(b.Loans))
	for _, m := range b.Borrowers() {
		borrowers = append(borrowers, toMemberSummary(m))
	}

	return Book{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Amount:    b.Amount,
		Borrowers: borrowers,
		CreatedAt: model.NewDate(b.CreatedAt),
		UpdatedAt: model.NewDate(b.UpdatedAt),
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Data: toBook(b)}
}

func toListBooksResponse(books []model.Book) ListBooksResponse {
	data := make([]Book, 0, len(books))
	for _, b := range books {
		data = append(data, toBook(b))
	}
	return ListBooksResponse{Data: data}
}

func toBookSummary(b model.Book) BookSummary {
	return BookSummary{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Amount: b.Amount,
	}
}

func toBookSummaries(books []model.Book) []BookSummary {
	data := make([]BookSummary, 0, len(books))
	for _, b := range books {
		data = append(data, toBookSummary(b))
	}
	return data
}

func toLoanResponse(l model.Loan) LoanResponse {
	return LoanResponse{
		Data: Loan{
			MemberID:   l.MemberID,
			BookID:     l.BookID,
			BorrowedAt: l.BorrowedAt,
		},
	}
}
