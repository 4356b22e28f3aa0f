package api

import (
	"fmt"
	"net/http"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Auth struct {
	server *Server
}

func (a Auth) router(server *Server) {
	a.server = server

	serverGroupV1 := server.router.Group("/api/v1/auth")
	serverGroupV1.GET("test", a.testAuth)
	serverGroupV1.POST("request-otp", a.requestOTP)
	serverGroupV1.POST("verify-otp", a.verifyOTP)
	serverGroupV1.POST("change-number", a.changeNumber)
}

func (a Auth) testAuth(ctx *gin.Context) {
	dr := basemodels.SuccessResponse{
		Status:  "success",
		Message: "Authentication API is active",
		Version: utils.REVISION,
	}

	ctx.JSON(http.StatusOK, dr)
}

// phoneSessionKey keys the pre-auth stage markers; there is no identity
// yet while the applicant is still proving the number is theirs.
func phoneSessionKey(phone string) string {
	return fmt.Sprintf("phone:%s", phone)
}

func (a *Auth) requestOTP(ctx *gin.Context) {
	request := new(models.RequestOTPParams)

	if err := ctx.ShouldBindJSON(request); err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPhone))
		return
	}

	phone, err := utils.NormalizePhone(request.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPhone))
		return
	}

	validate := validator.New()
	if err := validate.Var(phone, "e164"); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPhone))
		return
	}

	key := phoneSessionKey(phone)
	current, err := a.server.flow.Current(ctx, key)
	if err != nil {
		a.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if current == flow.StageHome {
		if err := a.server.flow.Advance(ctx, key, flow.StageAuthPhone); err != nil {
			a.server.logger.Error(err.Error())
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
	}

	provider, ok := a.server.otpProvider()
	if !ok {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := provider.RequestCode(ctx, phone); err != nil {
		a.server.logger.Error(fmt.Sprintf("OTP dispatch failed for %v: %v", phone, err))
		ctx.JSON(http.StatusBadGateway, basemodels.NewError("could not send OTP, please try again"))
		return
	}

	// A repeated request while already on OTP entry is a resend; the stage
	// does not move.
	if current != flow.StageAuthOTP {
		if err := a.server.flow.Advance(ctx, key, flow.StageAuthOTP); err != nil {
			a.server.logger.Error(err.Error())
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("OTP sent successfully, please check your SMS", gin.H{"phone": phone}))
}

func (a *Auth) verifyOTP(ctx *gin.Context) {
	request := new(models.VerifyOTPParams)

	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidOTP))
		return
	}

	phone, err := utils.NormalizePhone(request.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPhone))
		return
	}

	// Reject malformed codes before any provider call
	if len(request.Code) != 6 {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidOTP))
		return
	}

	key := phoneSessionKey(phone)
	if err := a.server.flow.Require(ctx, key, flow.StageAuthOTP); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	provider, ok := a.server.otpProvider()
	if !ok {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	approved, err := provider.VerifyCode(ctx, phone, request.Code)
	if err != nil {
		a.server.logger.Error(fmt.Sprintf("OTP verification failed for %v: %v", phone, err))
		ctx.JSON(http.StatusBadGateway, basemodels.NewError("could not verify OTP, please try again"))
		return
	}
	if !approved {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.IncorrectOTP))
		return
	}

	identity, err := a.server.apps.RegisterIdentity(ctx, phone)
	if err != nil {
		a.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	token, err := TokenController.CreateToken(utils.TokenObject{
		IdentityID: identity.ID.String(),
		Phone:      identity.Phone,
	})
	if err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := a.server.sessions.SetToken(ctx, identity.ID.String(), token); err != nil {
		a.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	// The phone-keyed pre-auth session becomes an identity-keyed one
	if err := a.server.flow.Migrate(ctx, key, identity.ID.String(), flow.StageKYC); err != nil {
		a.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	identityWT := models.IdentityWithToken{
		Identity: models.ToIdentityResponse(identity),
		Token:    token,
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("phone number verified successfully", identityWT))
}

func (a *Auth) changeNumber(ctx *gin.Context) {
	request := new(models.ChangeNumberParams)

	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPhone))
		return
	}

	phone, err := utils.NormalizePhone(request.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPhone))
		return
	}

	// Back edge: OTP entry -> phone entry. Any pending code simply expires.
	if err := a.server.flow.Advance(ctx, phoneSessionKey(phone), flow.StageAuthPhone); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("you can now enter a different number", nil))
}
