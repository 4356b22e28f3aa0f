package api

import (
	"net/http"
	"time"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	application_service "github.com/CreditPe/CreditPe-Backend/services/application"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type KYC struct {
	server *Server
}

func (k KYC) router(server *Server) {
	k.server = server

	serverGroupV1 := server.router.Group("/api/v1/kyc", AuthenticatedMiddleware())
	serverGroupV1.POST("", k.submitKYC)
}

func (k *KYC) submitKYC(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := k.server.flow.Require(ctx, identity.IdentityID, flow.StageKYC); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	request := new(models.KYCParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		k.server.logger.Error(err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidKYCInput))
		return
	}

	dob, err := time.Parse("2006-01-02", request.DateOfBirth)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBirthDate))
		return
	}

	identityID, err := uuid.Parse(identity.IdentityID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	app, err := k.server.apps.SubmitKYC(ctx, identityID, application_service.KYCSubmission{
		FullName:       request.FullName,
		Email:          request.Email,
		DateOfBirth:    dob,
		Gender:         request.Gender,
		EmploymentType: request.EmploymentType,
		MonthlyIncome:  request.MonthlyIncome,
		AadhaarNumber:  request.AadhaarNumber,
		PanNumber:      request.PanNumber,
		AddressLine1:   request.AddressLine1,
		AddressLine2:   request.AddressLine2,
		City:           request.City,
		State:          request.State,
		Pincode:        request.Pincode,
	})
	if err != nil {
		if err == application_service.ErrProfileNotFound {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.IdentityNotFound))
			return
		}
		k.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := k.server.sessions.SetApplicationID(ctx, identity.IdentityID, app.ID.String()); err != nil {
		k.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := k.server.flow.Advance(ctx, identity.IdentityID, flow.StageDocuments); err != nil {
		k.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("KYC details submitted successfully", models.ToApplicationResponse(app)))
}
