package contracts

import (
	"context"
	"xpresspay-sdk/internal/pkg/dto/responses"
)

type BankService interface {
	List(ctx context.Context) ([]responses.Bank, error)
}
