package api

import (
	"net/http"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	application_service "github.com/CreditPe/CreditPe-Backend/services/application"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Offer struct {
	server *Server
}

func (o Offer) router(server *Server) {
	o.server = server

	serverGroupV1 := server.router.Group("/api/v1/offer", AuthenticatedMiddleware())
	serverGroupV1.GET("", o.getOffer)
	serverGroupV1.POST("accept", o.acceptOffer)
	serverGroupV1.POST("decline", o.declineOffer)
}

var offerBenefits = []models.OfferBenefit{
	{Title: "5% cashback", Description: "5% cashback on all UPI spends, credited monthly"},
	{Title: "Airport lounge access", Description: "4 complimentary domestic lounge visits per year"},
	{Title: "Fuel surcharge waiver", Description: "1% fuel surcharge waived at all pumps"},
	{Title: "Zero forex markup", Description: "No foreign exchange markup on international spends"},
}

func (o *Offer) getOffer(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := o.server.flow.Require(ctx, identity.IdentityID, flow.StageOffer); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	appID, err := o.server.currentApplicationID(ctx, identity.IdentityID)
	if err != nil {
		if err == application_service.ErrNoCurrentApplication {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		o.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	app, err := o.server.apps.Application(ctx, appID)
	if err != nil {
		if err == application_service.ErrApplicationNotFound {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		o.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	offer := models.OfferResponse{
		CreditLimit:  app.CreditLimit.Int64,
		JoiningFee:   o.server.config.JoiningFee,
		AnnualFee:    0,
		WelcomeBonus: "2,000 reward points on first spend",
		ValidDays:    7,
		Benefits:     offerBenefits,
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("your card offer", offer))
}

func (o *Offer) acceptOffer(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := o.server.flow.Advance(ctx, identity.IdentityID, flow.StageESignConsent); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("offer accepted, please complete e-sign", nil))
}

// declineOffer abandons the journey back at the start. The application row
// stays for audit; only the session moves.
func (o *Offer) declineOffer(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := o.server.flow.Advance(ctx, identity.IdentityID, flow.StageHome); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("offer declined", nil))
}
