package api

import (
	"net/http"
	"strings"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	application_service "github.com/CreditPe/CreditPe-Backend/services/application"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Dashboard struct {
	server *Server
}

func (d Dashboard) router(server *Server) {
	d.server = server

	server.router.GET("/api/v1/session", d.getSession)
	server.router.POST("/api/v1/session/signout", AuthenticatedMiddleware(), d.signOut)

	serverGroupV1 := server.router.Group("/api/v1/dashboard", AuthenticatedMiddleware())
	serverGroupV1.GET("", d.getDashboard)
}

// getSession reports whether the caller has a live authenticated session and
// which stage it is at. It never fails on a bad token, it just reports no
// session, so clients call it on app launch to decide where to resume.
func (d *Dashboard) getSession(ctx *gin.Context) {
	inactive := models.SessionResponse{Active: false, Stage: string(flow.StageHome)}

	header := ctx.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("no active session", inactive))
		return
	}

	identity, err := TokenController.VerifyToken(parts[1])
	if err != nil {
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("no active session", inactive))
		return
	}

	stage, err := d.server.flow.Current(ctx, identity.IdentityID)
	if err != nil {
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("active session", models.SessionResponse{
		Active: true,
		Stage:  string(stage),
	}))
}

func (d *Dashboard) getDashboard(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := d.server.flow.Require(ctx, identity.IdentityID, flow.StageDashboard); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	identityID, err := uuid.Parse(identity.IdentityID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	view, err := d.server.apps.Dashboard(ctx, identityID)
	if err != nil {
		if err == application_service.ErrProfileNotFound || err == application_service.ErrApplicationNotFound {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.IdentityNotFound))
			return
		}
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	resp := models.DashboardResponse{
		Profile:     models.ToProfileResponse(&view.Profile),
		Application: models.ToApplicationResponse(&view.Application),
	}
	if view.Payment != nil {
		resp.Payment = models.ToPaymentResponse(view.Payment)
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("dashboard", resp))
}

// signOut returns the session to the start and discards its markers.
func (d *Dashboard) signOut(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := d.server.sessions.Clear(ctx, identity.IdentityID); err != nil {
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("signed out successfully", nil))
}
