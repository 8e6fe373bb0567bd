package api

import (
	"errors"
	"net/http"

	"clubhub/internal/domain/lending"
	reqdto "clubhub/internal/handler/dto/request"
	resdto "clubhub/internal/handler/dto/response"
	"clubhub/internal/handler/middleware"
	"clubhub/internal/usecase/commands"
	"clubhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LendingHandler struct {
	lending commands.LendingCommands
	queries queries.LendingQueries
}

func NewLendingHandler(lendingCommands commands.LendingCommands, lendingQueries queries.LendingQueries) *LendingHandler {
	return &LendingHandler{
		lending: lendingCommands,
		queries: lendingQueries,
	}
}

// @Summary Borrow item
// @Description Borrow an item, honoring the queue reservation
// @Tags lending
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.BorrowRequest false "Borrow request"
// @Success 201 {object} resdto.LoanResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /items/{id}/borrow [post]
func (h *LendingHandler) Borrow(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BorrowRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	borrowerID := memberID
	if req.BorrowerID != nil {
		role, _ := middleware.GetMemberRole(c)
		if !roleIsStaff(role) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only staff may borrow on behalf of others",
			})
			return
		}
		borrowerID = *req.BorrowerID
	}

	session, err := h.lending.Borrow(c.Request.Context(), itemID, borrowerID, req.IsGuest)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errors.Is(err, commands.ErrItemUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Item is not lendable",
			})
		case errors.Is(err, commands.ErrItemAlreadyBorrowed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item already has an active loan",
			})
		case errors.Is(err, commands.ErrItemReserved):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item is reserved for the queue head",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewLoanResponse(session))
}

// @Summary Return item
// @Description Return the item's active loan
// @Tags lending
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.LoanResponse
// @Failure 404 {object} map[string]string
// @Router /items/{id}/return [post]
func (h *LendingHandler) Return(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	method := lending.ReturnByUser
	if role, ok := middleware.GetMemberRole(c); ok && roleIsStaff(role) {
		method = lending.ReturnByAdmin
	}

	session, err := h.lending.Return(c.Request.Context(), itemID, method)
	if err != nil {
		if errors.Is(err, commands.ErrNoActiveLoan) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active loan for item",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewLoanResponse(session))
}

// @Summary Join item queue
// @Description Join the waiting queue for a borrowed item
// @Tags lending
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 201 {object} resdto.QueueEntryResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /items/{id}/queue [post]
func (h *LendingHandler) Enqueue(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	entry, err := h.lending.Enqueue(c.Request.Context(), itemID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errors.Is(err, commands.ErrItemAvailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Item is available, borrow it instead",
			})
		case errors.Is(err, commands.ErrAlreadyQueued):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already queued for this item",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewQueueEntryResponse(entry))
}

// @Summary Leave item queue
// @Description Withdraw from the waiting queue; a no-op when not queued
// @Tags lending
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Router /items/{id}/queue [delete]
func (h *LendingHandler) Dequeue(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.lending.Dequeue(c.Request.Context(), itemID, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Item status
// @Description Get an item with its active loan and ordered queue
// @Tags lending
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} queries.ItemView
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *LendingHandler) ItemStatus(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	view, err := h.queries.ItemStatus(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, queries.ErrItemViewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Member loans
// @Description List a member's loans, newest first
// @Tags lending
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {array} queries.LoanView
// @Router /members/{id}/loans [get]
func (h *LendingHandler) MemberLoans(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID",
		})
		return
	}

	loans, err := h.queries.MemberLoans(c.Request.Context(), memberID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, loans)
}
