package otp

import (
	"context"
	"errors"

	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/services/monitoring/logging"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

// TwilioProvider sends verification codes through Twilio Verify v2.
type TwilioProvider struct {
	providers.BaseProvider
	config *utils.Config
	logger *logging.Logger
}

func NewTwilioProvider(config *utils.Config, logger *logging.Logger) *TwilioProvider {
	return &TwilioProvider{
		BaseProvider: providers.BaseProvider{Name: providers.Twilio},
		config:       config,
		logger:       logger,
	}
}

func (t *TwilioProvider) client() *twilio.RestClient {
	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   t.config.TwilioKeySid,
		Password:   t.config.TwilioKeySecret,
		AccountSid: t.config.TwilioAccountSid,
	})
}

func (t *TwilioProvider) RequestCode(_ context.Context, phone string) error {
	if t.config.TwilioVerifyServiceSid == "" {
		t.logger.Error("Twilio Verify Service SID is not set")
		return errors.New("twilio Verify Service SID is not configured")
	}

	params := &verify.CreateVerificationParams{}
	params.SetTo(phone)
	params.SetChannel("sms")

	_, err := t.client().VerifyV2.CreateVerification(t.config.TwilioVerifyServiceSid, params)
	if err != nil {
		t.logger.Error("Twilio verification error: ", err.Error())
		return err
	}

	return nil
}

func (t *TwilioProvider) VerifyCode(_ context.Context, phone string, code string) (bool, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(phone)
	params.SetCode(code)

	resp, err := t.client().VerifyV2.CreateVerificationCheck(t.config.TwilioVerifyServiceSid, params)
	if err != nil {
		return false, err
	}

	return *resp.Status == "approved", nil
}
