package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/providers/esign"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
)

type ESign struct {
	server *Server
}

func (e ESign) router(server *Server) {
	e.server = server

	serverGroupV1 := server.router.Group("/api/v1/esign", AuthenticatedMiddleware())
	serverGroupV1.POST("consent", e.recordConsent)
	serverGroupV1.POST("request-otp", e.requestOTP)
	serverGroupV1.POST("verify-otp", e.verifyOTP)
}

func (e *ESign) provider() (esign.Provider, bool) {
	p, exists := e.server.provider.GetProvider(providers.ESign)
	if !exists {
		return nil, false
	}

	sp, ok := p.(esign.Provider)
	return sp, ok
}

func (e *ESign) recordConsent(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := e.server.flow.Require(ctx, identity.IdentityID, flow.StageESignConsent); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	request := new(models.ConsentParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ConsentRequired))
		return
	}

	// All three consents are mandatory, there is no partial accept
	if !request.All() {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ConsentRequired))
		return
	}

	if err := e.server.flow.Advance(ctx, identity.IdentityID, flow.StageESignAadhaar); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("consent recorded", nil))
}

func (e *ESign) requestOTP(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	request := new(models.ESignRequestOTPParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAadhaar))
		return
	}

	if len(request.AadhaarNumber) != 12 {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAadhaar))
		return
	}
	if _, err := strconv.ParseUint(request.AadhaarNumber, 10, 64); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAadhaar))
		return
	}

	current, err := e.server.flow.Current(ctx, identity.IdentityID)
	if err != nil {
		e.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}
	if current != flow.StageESignAadhaar && current != flow.StageESignOTP {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	signer, ok := e.provider()
	if !ok {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := signer.RequestCode(ctx, identity.IdentityID, request.AadhaarNumber); err != nil {
		e.server.logger.Error(fmt.Sprintf("e-sign OTP dispatch failed: %v", err))
		ctx.JSON(http.StatusBadGateway, basemodels.NewError("could not send OTP, please try again"))
		return
	}

	// Re-requesting from the OTP screen is a resend
	if current == flow.StageESignAadhaar {
		if err := e.server.flow.Advance(ctx, identity.IdentityID, flow.StageESignOTP); err != nil {
			e.server.logger.Error(err.Error())
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("OTP sent to your Aadhaar-registered number", nil))
}

func (e *ESign) verifyOTP(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	request := new(models.ESignVerifyOTPParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidOTP))
		return
	}

	if len(request.Code) != 6 {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidOTP))
		return
	}

	if err := e.server.flow.Require(ctx, identity.IdentityID, flow.StageESignOTP); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	signer, ok := e.provider()
	if !ok {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	result, err := signer.VerifyCode(ctx, identity.IdentityID, request.Code)
	if err != nil {
		e.server.logger.Error(fmt.Sprintf("e-sign verification failed: %v", err))
		ctx.JSON(http.StatusBadGateway, basemodels.NewError("could not verify OTP, please try again"))
		return
	}

	if err := e.server.flow.Advance(ctx, identity.IdentityID, flow.StagePayment); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("documents signed successfully", models.ESignResponse{
		Reference: result.Reference,
		SignedAt:  result.SignedAt,
	}))
}
