package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/testutil"
)

func TestCreateMember_Success(t *testing.T) {
	_, router := setupTestRouter(t, 10)

	w := doJSON(t, router, http.MethodPost, "/members", MemberRequest{Name: "Ishmael"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[MemberResponse](t, w)
	if resp.Data.ID == uuid.Nil {
		t.Errorf("expected non-empty ID")
	}
	if resp.Data.Name != "Ishmael" {
		t.Errorf("expected name Ishmael, got %q", resp.Data.Name)
	}
	if resp.Data.MembershipDate.String() != model.Today().Format("2006-01-02") {
		t.Errorf("expected membership date today, got %s", resp.Data.MembershipDate)
	}
	if resp.Data.BorrowedBooks == nil || len(resp.Data.BorrowedBooks) != 0 {
		t.Errorf("expected empty borrowed books, got %v", resp.Data.BorrowedBooks)
	}
}

func TestCreateMember_ValidationError(t *testing.T) {
	_, router := setupTestRouter(t, 10)

	expectError(t, doJSON(t, router, http.MethodPost, "/members", `{}`),
		http.StatusBadRequest, "VALIDATION_FAILED")

	expectError(t, doJSON(t, router, http.MethodPost, "/members", `{"name":"   "}`),
		http.StatusBadRequest, "INVALID_MEMBER")
}

func TestCreateMember_InternalError_NotRetried(t *testing.T) {
	calls := 0
	lending := &fakeLending{
		CreateMemberFn: func(ctx context.Context, name string) (*model.Member, error) {
			calls++
			return nil, errors.New("db down")
		},
	}
	router := setupRouterWithServices(t, &fakeCatalog{}, lending)

	w := doJSON(t, router, http.MethodPost, "/members", MemberRequest{Name: "Ishmael"})

	expectError(t, w, http.StatusInternalServerError, "MEMBER_CREATE_FAILED")
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestListMembers_WithBorrowedBooks(t *testing.T) {
	db, router := setupTestRouter(t, 10)

	book := testutil.SeedBook(t, db, "Moby Dick", "Herman Melville", 2)
	holder := testutil.SeedMember(t, db, "Ishmael")
	testutil.SeedMember(t, db, "Queequeg")
	testutil.SeedLoan(t, db, holder, book)

	w := doJSON(t, router, http.MethodGet, "/members", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[ListMembersResponse](t, w)
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 members, got %d", len(resp.Data))
	}

	first := resp.Data[0]
	if first.ID != holder.ID {
		t.Fatalf("expected members in enrollment order, first is %s", first.Name)
	}
	if len(first.BorrowedBooks) != 1 || first.BorrowedBooks[0].ID != book.ID {
		t.Errorf("expected borrowed book %s, got %+v", book.ID, first.BorrowedBooks)
	}
	if len(resp.Data[1].BorrowedBooks) != 0 {
		t.Errorf("expected no borrowed books for second member")
	}
}

func TestGetMemberByID(t *testing.T) {
	db, router := setupTestRouter(t, 10)

	member := testutil.SeedMember(t, db, "Ishmael")

	w := doJSON(t, router, http.MethodGet, "/members/"+member.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := decode[MemberResponse](t, w).Data.ID; got != member.ID {
		t.Errorf("expected ID %s, got %s", member.ID, got)
	}

	expectError(t, doJSON(t, router, http.MethodGet, "/members/xyz", nil),
		http.StatusBadRequest, "INVALID_MEMBER_ID")

	expectError(t, doJSON(t, router, http.MethodGet, "/members/"+uuid.New().String(), nil),
		http.StatusNotFound, "MEMBER_NOT_FOUND")
}

func TestUpdateMember(t *testing.T) {
	db, router := setupTestRouter(t, 10)

	member := testutil.SeedMember(t, db, "Ishmael")

	w := doJSON(t, router, http.MethodPut, "/members/"+member.ID.String(), MemberRequest{Name: "Queequeg"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[MemberResponse](t, w)
	if resp.Data.Name != "Queequeg" {
		t.Errorf("expected name Queequeg, got %q", resp.Data.Name)
	}
	if resp.Data.MembershipDate.String() != model.NewDate(member.MembershipDate).String() {
		t.Errorf("membership date changed: %s -> %s", model.NewDate(member.MembershipDate), resp.Data.MembershipDate)
	}

	expectError(t, doJSON(t, router, http.MethodPut, "/members/"+uuid.New().String(), MemberRequest{Name: "Ahab"}),
		http.StatusNotFound, "MEMBER_NOT_FOUND")
}

func TestDeleteMember(t *testing.T) {
	db, router := setupTestRouter(t, 10)

	book := testutil.SeedBook(t, db, "Moby Dick", "Herman Melville", 2)
	holder := testutil.SeedMember(t, db, "Ishmael")
	free := testutil.SeedMember(t, db, "Queequeg")
	testutil.SeedLoan(t, db, holder, book)

	expectError(t, doJSON(t, router, http.MethodDelete, "/members/"+holder.ID.String(), nil),
		http.StatusConflict, "MEMBER_HAS_BORROWED_BOOKS")

	w := doJSON(t, router, http.MethodDelete, "/members/"+free.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}

	expectError(t, doJSON(t, router, http.MethodDelete, "/members/"+free.ID.String(), nil),
		http.StatusNotFound, "MEMBER_NOT_FOUND")
}
