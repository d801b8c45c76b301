package xpresspay

import (
	"context"
	"net/http"

	"xpresspay-sdk/internal/app/contracts"
	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/dto/requests"
	"xpresspay-sdk/internal/pkg/dto/responses"
	"xpresspay-sdk/internal/pkg/encryption"
	"xpresspay-sdk/internal/pkg/exceptions"
	"xpresspay-sdk/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type accountService struct {
	gatewayClient
	SecretKey string
}

func NewAccountService(baseUrl, publicKey, secretKey string, httpClient *http.Client, limiter *rate.Limiter, logger *zap.Logger) contracts.AccountService {
	return &accountService{
		gatewayClient: gatewayClient{
			BaseUrl:    baseUrl,
			PublicKey:  publicKey,
			HTTPClient: httpClient,
			Limiter:    limiter,
			Log:        logger,
		},
		SecretKey: secretKey,
	}
}

// Initiate encrypts the account details and starts a direct debit. After a
// successful initiation the account holder receives an OTP on their
// registered mobile number; pass it to ValidateOtp.
func (s *accountService) Initiate(ctx context.Context, request *requests.AccountPayment) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("accountService.Initiate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.String("masked_account_number", utils.MaskAccountNumber(request.AccountNumber)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	encrypted, err := encryption.EncryptPayload(request.ToEncryptPayload(), s.SecretKey)
	if err != nil {
		s.Log.Error("accountService.Initiate error encrypting payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
			zap.Error(err),
		)
		return nil, err
	}

	envelope := &requests.PaymentEnvelope{
		PublicKey:   s.PublicKey,
		Request:     encrypted,
		Alg:         constvars.EncryptionAlg,
		PaymentType: string(constvars.PaymentTypeAccount),
	}

	raw, err := s.postJSON(ctx, "accountService.Initiate", constvars.EndpointPayments, envelope)
	if err != nil {
		return nil, err
	}

	response := buildPaymentResponse(raw)
	s.Log.Info("accountService.Initiate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.Bool("requires_validation", response.RequiresValidation()),
	)
	return response, nil
}

// ValidateOtp submits the OTP sent to the account holder to authorise the
// debit.
func (s *accountService) ValidateOtp(ctx context.Context, request *requests.OtpValidation) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("accountService.ValidateOtp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := s.postJSON(ctx, "accountService.ValidateOtp", constvars.EndpointPaymentsValidate, request.ToBody())
	if err != nil {
		return nil, err
	}

	s.Log.Info("accountService.ValidateOtp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)
	return buildPaymentResponse(raw), nil
}

// Query checks the final status of an account payment. Always verify
// IsSuccessful and that the amount matches the order total before fulfilling
// the transaction.
func (s *accountService) Query(ctx context.Context, request *requests.PaymentQuery) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("accountService.Query called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := s.postJSON(ctx, "accountService.Query", constvars.EndpointPaymentsQuery, request)
	if err != nil {
		return nil, err
	}

	response := buildPaymentResponse(raw)
	s.Log.Info("accountService.Query succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.Bool(constvars.LoggingSuccessKey, response.IsSuccessful()),
	)
	return response, nil
}
