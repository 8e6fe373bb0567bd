package api

import (
	"errors"
	"net/http"

	"clubhub/internal/domain/member"
	"clubhub/internal/domain/visit"
	reqdto "clubhub/internal/handler/dto/request"
	resdto "clubhub/internal/handler/dto/response"
	"clubhub/internal/handler/middleware"
	"clubhub/internal/usecase/commands"
	"clubhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VisitHandler struct {
	visits  commands.VisitCommands
	queries queries.VisitQueries
}

func NewVisitHandler(visits commands.VisitCommands, visitQueries queries.VisitQueries) *VisitHandler {
	return &VisitHandler{
		visits:  visits,
		queries: visitQueries,
	}
}

// @Summary Manual check-in
// @Description Check a member in at a club (front desk)
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 201 {object} resdto.VisitResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /visits [post]
func (h *VisitHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.visits.CheckIn(c.Request.Context(), req.MemberID, req.ClubID, visit.MethodManual)
	if err != nil {
		if errors.Is(err, commands.ErrAlreadyCheckedIn) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Member is already checked in",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.NewVisitResponse(session))
}

// @Summary Check out
// @Description Close a visit session
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visit session ID"
// @Success 200 {object} resdto.VisitResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /visits/{id}/checkout [post]
func (h *VisitHandler) CheckOut(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}

	closedBy := visit.ClosedByMember
	if role, ok := middleware.GetMemberRole(c); ok && roleIsStaff(role) {
		closedBy = visit.ClosedByStaff
	}

	session, err := h.visits.CheckOut(c.Request.Context(), sessionID, closedBy)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Visit session not found",
			})
		case errors.Is(err, commands.ErrSessionAlreadyClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Visit session already closed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewVisitResponse(session))
}

// @Summary Active visit
// @Description Get the member's open visit session, if any
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} queries.VisitView
// @Failure 404 {object} map[string]string
// @Router /members/{id}/visit [get]
func (h *VisitHandler) ActiveVisit(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID",
		})
		return
	}

	view, err := h.queries.ActiveVisit(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, queries.ErrActiveVisitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active visit for member",
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

// @Summary Visit history
// @Description List the member's past visits, newest first
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {array} queries.VisitView
// @Router /members/{id}/visits [get]
func (h *VisitHandler) History(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID",
		})
		return
	}

	views, err := h.queries.History(c.Request.Context(), memberID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

func roleIsStaff(role member.Role) bool {
	return role == member.RoleStaff || role == member.RoleAdmin
}
