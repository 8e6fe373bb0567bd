//go:build e2e

package visit_test

import (
	"net/http"
	"testing"

	"clubhub/internal/domain/member"
	resdto "clubhub/internal/handler/dto/response"
	"clubhub/tests/common/dbtest"
	"clubhub/tests/common/httptest"
	"clubhub/tests/e2e"
	jwtHelper "clubhub/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	visitsURL      = "/api/visits"
	issueTokenURL  = "/api/kiosk/tokens"
	redeemTokenURL = "/api/kiosk/redeem"
)

type visitSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper

	clubID   uuid.UUID
	memberID uuid.UUID

	staffToken  string
	memberToken string
	kioskToken  string
}

func TestVisitSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(visitSuite))
}

func (s *visitSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *visitSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	clubID, err := dbtest.DefaultClubID(s.DB)
	require.NoError(s.T(), err)
	s.clubID = clubID

	s.memberID = s.jwtHelper.CreateTestMember(s.T(), "alice@example.com", string(member.RoleMember))
	s.jwtHelper.CreateTestMember(s.T(), "staff@example.com", string(member.RoleStaff))
	s.jwtHelper.CreateTestMember(s.T(), "kiosk@example.com", string(member.RoleKiosk))

	s.memberToken = s.jwtHelper.LoginMember(s.T(), s.Router, "alice@example.com", "password123")
	s.staffToken = s.jwtHelper.LoginMember(s.T(), s.Router, "staff@example.com", "password123")
	s.kioskToken = s.jwtHelper.LoginMember(s.T(), s.Router, "kiosk@example.com", "password123")
}

func (s *visitSuite) issueKioskToken() string {
	body := map[string]any{"club_id": s.clubID}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issueTokenURL, body, s.kioskToken)

	var resp resdto.TokenResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	return resp.Token
}

func (s *visitSuite) TestKioskCheckInFlow() {
	s.Run("redeeming a fresh token opens a visit", func() {
		token := s.issueKioskToken()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": token}, s.memberToken)

		var visit resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &visit)
		s.Equal(s.memberID, visit.MemberID)
		s.Equal(s.clubID, visit.ClubID)
		s.Equal("kiosk", visit.Method)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/members/"+s.memberID.String()+"/visit", nil, s.memberToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("a token cannot be redeemed twice", func() {
		token := s.issueKioskToken()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": token}, s.memberToken)
		s.Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": token}, s.staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Token already used")
	})

	s.Run("issuing a new token invalidates the previous one", func() {
		stale := s.issueKioskToken()
		fresh := s.issueKioskToken()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": stale}, s.memberToken)
		s.Equal(http.StatusNotFound, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": fresh}, s.memberToken)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("scanning again while checked in burns the token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": s.issueKioskToken()}, s.memberToken)
		s.Equal(http.StatusCreated, rec.Code)

		token := s.issueKioskToken()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": token}, s.memberToken)
		s.Equal(http.StatusConflict, rec.Code)

		// The rejected scan still consumed the token.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemTokenURL,
			map[string]any{"token": token}, s.staffToken)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("a regular member cannot mint tokens", func() {
		body := map[string]any{"club_id": s.clubID}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issueTokenURL, body, s.memberToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *visitSuite) TestManualCheckInFlow() {
	s.Run("staff checks a member in and out", func() {
		body := map[string]any{"member_id": s.memberID, "club_id": s.clubID}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, visitsURL, body, s.staffToken)

		var visit resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &visit)
		s.Equal("manual", visit.Method)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			visitsURL+"/"+visit.ID.String()+"/checkout", nil, s.staffToken)

		var closed resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &closed)
		s.Require().NotNil(closed.ClosedBy)
		s.Equal("staff", *closed.ClosedBy)
		s.NotNil(closed.CheckOutAt)
	})

	s.Run("double check-in is rejected", func() {
		body := map[string]any{"member_id": s.memberID, "club_id": s.clubID}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, visitsURL, body, s.staffToken)
		s.Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, visitsURL, body, s.staffToken)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("double checkout is rejected", func() {
		body := map[string]any{"member_id": s.memberID, "club_id": s.clubID}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, visitsURL, body, s.staffToken)

		var visit resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &visit)

		checkoutURL := visitsURL + "/" + visit.ID.String() + "/checkout"
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, nil, s.staffToken)
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, nil, s.staffToken)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("manual check-in requires staff", func() {
		body := map[string]any{"member_id": s.memberID, "club_id": s.clubID}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, visitsURL, body, s.memberToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("history lists closed visits newest first", func() {
		body := map[string]any{"member_id": s.memberID, "club_id": s.clubID}
		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, visitsURL, body, s.staffToken)

			var visit resdto.VisitResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &visit)

			rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
				visitsURL+"/"+visit.ID.String()+"/checkout", nil, s.staffToken)
			s.Equal(http.StatusOK, rec.Code)
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/members/"+s.memberID.String()+"/visits", nil, s.memberToken)

		var history []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &history)
		s.Len(history, 2)
	})
}
