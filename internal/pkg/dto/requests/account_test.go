package requests

import (
	"testing"

	"xpresspay-sdk/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountPaymentToEncryptPayload(t *testing.T) {
	t.Run("Mandatory Fields In Wire Order", func(t *testing.T) {
		request := &AccountPayment{
			PublicKey:     "XPPUBK-test",
			AccountNumber: "1234567890",
			BankCode:      "057",
			Amount:        "10000",
			Email:         "customer@example.com",
			TransactionID: "ORDER-002",
		}

		encoded, err := json.Marshal(request.ToEncryptPayload())

		require.NoError(t, err)
		assert.Equal(t,
			`{"publicKey":"XPPUBK-test","accountNumber":"1234567890","bankCode":"057",`+
				`"amount":"10000","email":"customer@example.com","transactionId":"ORDER-002",`+
				`"currency":"NGN","country":"NG","paymentType":"ACCOUNT"}`,
			string(encoded),
		)
	})

	t.Run("Bank Specific Fields Included When Set", func(t *testing.T) {
		request := &AccountPayment{
			PublicKey:   "XPPUBK-test",
			DateOfBirth: "01011990",
			Bvn:         "12345678901",
			RedirectUrl: "https://merchant.example.com/return",
		}

		payload := request.ToEncryptPayload()

		dateOfBirth, _ := payload.Get("dateOfBirth")
		bvn, _ := payload.Get("bvn")
		redirectUrl, _ := payload.Get("redirectUrl")
		assert.Equal(t, "01011990", dateOfBirth)
		assert.Equal(t, "12345678901", bvn)
		assert.Equal(t, "https://merchant.example.com/return", redirectUrl)
	})
}

func TestOtpValidationBody(t *testing.T) {
	t.Run("Uses TransactionReference Key", func(t *testing.T) {
		// the validate endpoint keys on transactionReference, unlike
		// initiate and query which use transactionId
		request := &OtpValidation{
			PublicKey:     "XPPUBK-test",
			TransactionID: "ORDER-001",
			Otp:           "12345",
			PaymentType:   constvars.PaymentTypeAccount,
		}

		encoded, err := json.Marshal(request.ToBody())

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"publicKey":"XPPUBK-test","transactionReference":"ORDER-001","otp":"12345","paymentType":"ACCOUNT"}`,
			string(encoded),
		)
	})
}
