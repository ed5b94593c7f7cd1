package usecase

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"go.uber.org/zap"
)

type TransactionUsecase struct {
	catalog Catalog
	lister  *Lister
	logger  *logger.Logger
}

func NewTransactionUsecase(cat Catalog, lister *Lister, log *logger.Logger) *TransactionUsecase {
	return &TransactionUsecase{
		catalog: cat,
		lister:  lister,
		logger:  log.Named("TransactionUsecase"),
	}
}

func (uc *TransactionUsecase) List(ctx context.Context, c filter.Criteria) (*ListResult[domain.Transaction, TransactionStats], error) {
	uc.logger.Debug("Listing transactions", zap.String("q", c.Text), zap.Int("filters", len(c.Categorical)))
	res, err := list(ctx, uc.lister, "transactions", transactionSchema, uc.catalog.Transactions(), c, computeTransactionStats)
	if err != nil {
		uc.logger.Warn("Failed to list transactions", zap.Error(err))
		return nil, err
	}
	return res, nil
}
