package main

import (
	"context"
	"time"

	"xpresspay-sdk/internal/app/config"
	"xpresspay-sdk/internal/app/drivers/logger"
	"xpresspay-sdk/internal/app/services/xpresspay"
	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/dto/requests"
	"xpresspay-sdk/internal/pkg/dto/responses"
	"xpresspay-sdk/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Sandbox card payment walkthrough: initiate, authenticate with PIN,
// validate the OTP, then query the final status. Card details below are the
// gateway's published sandbox fixtures, never real data.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	client, err := xpresspay.NewClient(internalConfig, log)
	if err != nil {
		logrus.Fatalf("Failed to build Xpresspay client: %v", err)
	}
	logrus.Printf("Client ready (sandbox=%v)", client.IsSandbox())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = utils.WithRequestID(ctx, utils.GenerateTransactionID("REQ"))

	transactionID := utils.GenerateTransactionID(internalConfig.Xpresspay.TransactionIDPrefix)

	initiation, err := client.Cards.Initiate(ctx, &requests.CardPayment{
		PublicKey:     client.PublicKey(),
		CardNumber:    "5438898014560229",
		Cvv:           "789",
		ExpiryMonth:   "09",
		ExpiryYear:    "31",
		Amount:        "5000",
		Email:         "customer@example.com",
		TransactionID: transactionID,
	})
	if err != nil {
		logrus.Fatalf("Initiate failed: %v", err)
	}

	switch initiation.SuggestedAuthentication() {
	case constvars.SuggestedAuthPin:
		logrus.Println("Gateway requests PIN authentication")
	case constvars.SuggestedAuthAvs:
		logrus.Fatalf("Sandbox returned AVS flow, complete 3DSecure at: %s", initiation.AuthUrl())
	default:
		logrus.Fatalf("Unexpected initiation state: %s", initiation.Message)
	}

	authenticated, err := client.Cards.AuthenticatePin(ctx, &requests.CardPinAuth{
		PublicKey:     client.PublicKey(),
		TransactionID: transactionID,
		Pin:           "3310",
	})
	if err != nil {
		logrus.Fatalf("PIN authentication failed: %v", err)
	}
	logrus.Printf("Next step: %s", authenticated.ValidationInstruction())

	validated, err := client.Cards.ValidateOtp(ctx, &requests.OtpValidation{
		PublicKey:     client.PublicKey(),
		TransactionID: transactionID,
		Otp:           "12345",
		PaymentType:   constvars.PaymentTypeCard,
	})
	if err != nil {
		logrus.Fatalf("OTP validation failed: %v", err)
	}
	logrus.Printf("Validation status: %s", validated.Status)

	var final *responses.Payment
	err = utils.LogOperation(log, "example.QueryFinalStatus", utils.GetRequestID(ctx), func() error {
		final, err = client.Cards.Query(ctx, &requests.PaymentQuery{
			PublicKey:     client.PublicKey(),
			TransactionID: transactionID,
			PaymentType:   constvars.PaymentTypeCard,
		})
		return err
	})
	if err != nil {
		logrus.Fatalf("Query failed: %v", err)
	}

	if final.IsSuccessful() {
		logrus.Printf("Payment settled, reference=%s amount=%s", final.TransactionReference(), final.Amount())
	} else {
		logrus.Printf("Payment not settled: %s", final.Message)
	}
}
