package contracts

import (
	"context"
	"xpresspay-sdk/internal/pkg/dto/requests"
	"xpresspay-sdk/internal/pkg/dto/responses"
)

// AccountService covers direct bank account debits: initiate (encrypted),
// validate the OTP sent to the account holder, then query the final status.
type AccountService interface {
	Initiate(ctx context.Context, request *requests.AccountPayment) (*responses.Payment, error)
	ValidateOtp(ctx context.Context, request *requests.OtpValidation) (*responses.Payment, error)
	Query(ctx context.Context, request *requests.PaymentQuery) (*responses.Payment, error)
}
