package api

import (
	"errors"
	"net/http"

	reqdto "clubhub/internal/handler/dto/request"
	resdto "clubhub/internal/handler/dto/response"
	"clubhub/internal/handler/middleware"
	"clubhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type KioskHandler struct {
	kiosk commands.KioskCommands
}

func NewKioskHandler(kiosk commands.KioskCommands) *KioskHandler {
	return &KioskHandler{kiosk: kiosk}
}

// @Summary Issue kiosk token
// @Description Mint a fresh single-use check-in token, invalidating the previous one
// @Tags kiosk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueTokenRequest true "Issue request"
// @Success 201 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Router /kiosk/tokens [post]
func (h *KioskHandler) IssueToken(c *gin.Context) {
	var req reqdto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.kiosk.IssueToken(c.Request.Context(), req.ClubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.NewTokenResponse(token))
}

// @Summary Redeem kiosk token
// @Description Consume a scanned token and check the member in
// @Tags kiosk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemTokenRequest true "Redeem request"
// @Success 201 {object} resdto.VisitResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /kiosk/redeem [post]
func (h *KioskHandler) RedeemToken(c *gin.Context) {
	var req reqdto.RedeemTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
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

	session, err := h.kiosk.RedeemToken(c.Request.Context(), req.Token, memberID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Token not found",
			})
		case errors.Is(err, commands.ErrTokenExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Token expired, scan the current code",
			})
		case errors.Is(err, commands.ErrTokenAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Token already used",
			})
		case errors.Is(err, commands.ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Member is already checked in",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewVisitResponse(session))
}
