package handler

import (
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
)

type MemberRequest struct {
	Name string `json:"name" binding:"required" example:"Ishmael"`
}

type Member struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	MembershipDate model.Date    `json:"membership_date" swaggertype:"string" example:"2025-11-24"`
	BorrowedBooks  []BookSummary `json:"borrowed_books"`
}

type MemberResponse struct {
	Data Member `json:"data"`
}

type ListMembersResponse struct {
	Data []Member `json:"data"`
}

func toMember(m model.Member) Member {
	return Member{
		ID:             m.ID,
		Name:           m.Name,
		MembershipDate: model.NewDate(m.MembershipDate),
		BorrowedBooks:  toBookSummaries(m.BorrowedBooks()),
	}
}

func toMemberResponse(m model.Member) MemberResponse {
	return MemberResponse{Data: toMember(m)}
}

func toListMembersResponse(members []model.Member) ListMembersResponse {
	data := make([]Member, 0, len(members))
	for _, m := range members {
		data = append(data, toMember(m))
	}
	return ListMembersResponse{Data: data}
}
