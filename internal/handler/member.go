package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/retry"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/validation"
)

type MemberHandler struct {
	lending LendingService
	retry   retryPolicy
}

func NewMemberHandler(lending LendingService, opts ...retry.Option) *MemberHandler {
	return &MemberHandler{lending: lending, retry: opts}
}

func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/members")
	{
		members.GET("", h.ListMembers)
		members.POST("", h.CreateMember)
		members.GET("/:id", h.GetMemberByID)
		members.PUT("/:id", h.UpdateMember)
		members.DELETE("/:id", h.DeleteMember)
	}
}

// CreateMember godoc
// @Summary      Create a member
// @Description  Enroll a member; the membership date is today
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        payload  body      MemberRequest              true  "Member to create"
// @Success      201      {object}  MemberResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req MemberRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	// Not retried: creating a member is not idempotent.
	member, err := h.lending.CreateMember(c.Request.Context(), req.Name)
	if err != nil {
		writeServiceError(c, err, "MEMBER_CREATE_FAILED", "failed to create member")
		return
	}

	c.JSON(http.StatusCreated, toMemberResponse(*member))
}

// ListMembers godoc
// @Summary      List members
// @Description  Get all members with the books they are borrowing
// @Tags         members
// @Produce      json
// @Success      200  {object}  ListMembersResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var members []model.Member
	err := h.retry.read(c.Request.Context(), func(ctx context.Context) error {
		var err error
		members, err = h.lending.ListMembers(ctx)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "MEMBER_LIST_FAILED", "failed to fetch members")
		return
	}

	c.JSON(http.StatusOK, toListMembersResponse(members))
}

// GetMemberByID godoc
// @Summary      Get a member by ID
// @Description  Get a single member and the books they are borrowing
// @Tags         members
// @Produce      json
// @Param        id   path      string  true  "Member ID (UUID)"
// @Success      200  {object}  MemberResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Member not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /members/{id} [get]
func (h *MemberHandler) GetMemberByID(c *gin.Context) {
	memberID, ok := parseIDParam(c, "INVALID_MEMBER_ID", "invalid member id")
	if !ok {
		return
	}

	var member *model.Member
	err := h.retry.read(c.Request.Context(), func(ctx context.Context) error {
		var err error
		member, err = h.lending.GetMember(ctx, memberID)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "MEMBER_FETCH_FAILED", "failed to fetch member")
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(*member))
}

// UpdateMember godoc
// @Summary      Rename a member
// @Description  Change a member's name. Membership date and borrowed books are kept.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Member ID (UUID)"
// @Param        payload  body      MemberRequest   true  "New name"
// @Success      200      {object}  MemberResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Member not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "INVALID_MEMBER_ID", "invalid member id")
	if !ok {
		return
	}

	var req MemberRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	var member *model.Member
	err := h.retry.write(c.Request.Context(), func(ctx context.Context) error {
		var err error
		member, err = h.lending.UpdateMember(ctx, memberID, req.Name)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "MEMBER_UPDATE_FAILED", "failed to update member")
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(*member))
}

// DeleteMember godoc
// @Summary      Delete a member
// @Description  Delete a member who has returned every book
// @Tags         members
// @Produce      json
// @Param        id   path      string  true  "Member ID (UUID)"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Member not found"
// @Failure      409  {object}  validation.ErrorResponse   "Member still has borrowed books"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "INVALID_MEMBER_ID", "invalid member id")
	if !ok {
		return
	}

	err := h.retry.write(c.Request.Context(), func(ctx context.Context) error {
		return h.lending.DeleteMember(ctx, memberID)
	})
	if err != nil {
		writeServiceError(c, err, "MEMBER_DELETE_FAILED", "failed to delete member")
		return
	}

	c.Status(http.StatusNoContent)
}
