package api

import (
	"net/http"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/providers/eligibility"
	application_service "github.com/CreditPe/CreditPe-Backend/services/application"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Eligibility struct {
	server *Server
}

func (e Eligibility) router(server *Server) {
	e.server = server

	serverGroupV1 := server.router.Group("/api/v1/eligibility", AuthenticatedMiddleware())
	serverGroupV1.POST("check", e.checkEligibility)
}

type eligibilityResult struct {
	Decision    eligibility.Decision        `json:"decision"`
	Application *models.ApplicationResponse `json:"application"`
}

func (e *Eligibility) checkEligibility(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := e.server.flow.Require(ctx, identity.IdentityID, flow.StageEligibility); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	appID, err := e.server.currentApplicationID(ctx, identity.IdentityID)
	if err != nil {
		if err == application_service.ErrNoCurrentApplication {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		e.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	p, exists := e.server.provider.GetProvider(providers.Eligibility)
	if !exists {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	checker, ok := p.(eligibility.Provider)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	decision, err := checker.Check(ctx, appID)
	if err != nil {
		e.server.logger.Error(err.Error())
		ctx.JSON(http.StatusBadGateway, basemodels.NewError("eligibility check failed, please try again"))
		return
	}

	app, err := e.server.apps.RecordEligibility(ctx, appID, decision.CreditLimit)
	if err != nil {
		if err == application_service.ErrApplicationNotFound {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		e.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := e.server.flow.Advance(ctx, identity.IdentityID, flow.StageOffer); err != nil {
		e.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("congratulations, you are eligible", eligibilityResult{
		Decision:    decision,
		Application: models.ToApplicationResponse(app),
	}))
}
