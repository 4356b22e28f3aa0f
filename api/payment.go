package api

import (
	"fmt"
	"net/http"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/providers/payment"
	application_service "github.com/CreditPe/CreditPe-Backend/services/application"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// gstRate is the tax applied on the joining fee.
var gstRate = decimal.NewFromFloat(0.18)

var paymentMethods = []string{"card", "upi", "netbanking", "qr"}

type Payment struct {
	server *Server
}

func (p Payment) router(server *Server) {
	p.server = server

	serverGroupV1 := server.router.Group("/api/v1/payment", AuthenticatedMiddleware())
	serverGroupV1.GET("quote", p.getQuote)
	serverGroupV1.POST("confirm", p.confirmPayment)
}

// feeQuote breaks the joining fee into fee, GST and total, all in rupees.
func feeQuote(joiningFee int64) (fee int64, gst int64, total int64) {
	feeDec := decimal.NewFromInt(joiningFee)
	gstDec := feeDec.Mul(gstRate).Round(0)

	return joiningFee, gstDec.IntPart(), feeDec.Add(gstDec).IntPart()
}

func (p *Payment) getQuote(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := p.server.flow.Require(ctx, identity.IdentityID, flow.StagePayment); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	fee, gst, total := feeQuote(p.server.config.JoiningFee)

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("joining fee quote", models.PaymentQuoteResponse{
		JoiningFee: fee,
		GST:        gst,
		Total:      total,
		Currency:   "INR",
		Methods:    paymentMethods,
	}))
}

func (p *Payment) confirmPayment(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	request := new(models.ConfirmPaymentParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.SelectPaymentMethod))
		return
	}

	known := false
	for _, method := range paymentMethods {
		if request.Method == method {
			known = true
			break
		}
	}
	if !known {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.SelectPaymentMethod))
		return
	}

	if err := p.server.flow.Require(ctx, identity.IdentityID, flow.StagePayment); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	appID, err := p.server.currentApplicationID(ctx, identity.IdentityID)
	if err != nil {
		if err == application_service.ErrNoCurrentApplication {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		p.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	gw, exists := p.server.provider.GetProvider(providers.PaymentGateway)
	if !exists {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	gateway, ok := gw.(payment.Gateway)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	_, _, total := feeQuote(p.server.config.JoiningFee)
	amountMinor := total * 100

	result, err := gateway.Charge(ctx, payment.ChargeRequest{
		ApplicationID: appID,
		AmountMinor:   amountMinor,
		Method:        request.Method,
	})
	if err != nil {
		p.server.logger.Error(fmt.Sprintf("charge failed for application %v: %v", appID, err))
		ctx.JSON(http.StatusBadGateway, basemodels.NewError("payment failed, you have not been charged"))
		return
	}

	pay, err := p.server.apps.RecordPayment(ctx, appID, amountMinor, request.Method, result.TransactionID, result.Status, result.Payload)
	if err != nil {
		if err == application_service.ErrPaymentAlreadyRecorded {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.PaymentExists))
			return
		}
		p.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := p.server.flow.Advance(ctx, identity.IdentityID, flow.StageDashboard); err != nil {
		p.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("payment successful", models.ToPaymentResponse(pay)))
}
