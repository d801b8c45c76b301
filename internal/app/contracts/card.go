package contracts

import (
	"context"
	"xpresspay-sdk/internal/pkg/dto/requests"
	"xpresspay-sdk/internal/pkg/dto/responses"
)

// CardService covers the full card payment lifecycle: initiate (encrypted),
// authenticate with PIN or AVS, validate the OTP, then query the final
// status.
type CardService interface {
	Initiate(ctx context.Context, request *requests.CardPayment) (*responses.Payment, error)
	AuthenticatePin(ctx context.Context, request *requests.CardPinAuth) (*responses.Payment, error)
	AuthenticateAvs(ctx context.Context, request *requests.CardAvsAuth) (*responses.Payment, error)
	ValidateOtp(ctx context.Context, request *requests.OtpValidation) (*responses.Payment, error)
	Query(ctx context.Context, request *requests.PaymentQuery) (*responses.Payment, error)
}
