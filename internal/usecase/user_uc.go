package usecase

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/stats"
	"go.uber.org/zap"
)

const subjectUser = "user"

// UserDetail is a user with the properties they own and their transactions.
type UserDetail struct {
	User           *domain.User         `json:"user"`
	Properties     []domain.Property    `json:"properties"`
	Transactions   []domain.Transaction `json:"transactions"`
	TotalSpent     float64              `json:"totalSpent"`
	TotalRecharged float64              `json:"totalRecharged"`
	TotalViews     int                  `json:"totalViews"`
	TotalUnlocks   int                  `json:"totalUnlocks"`
}

// UserUsecase serves the user list, the user detail page and the user
// moderation actions.
type UserUsecase struct {
	catalog Catalog
	lister  *Lister
	actions *ActionRunner
	logger  *logger.Logger
}

func NewUserUsecase(cat Catalog, lister *Lister, actions *ActionRunner, log *logger.Logger) *UserUsecase {
	return &UserUsecase{
		catalog: cat,
		lister:  lister,
		actions: actions,
		logger:  log.Named("UserUsecase"),
	}
}

func (uc *UserUsecase) List(ctx context.Context, c filter.Criteria) (*ListResult[domain.User, UserStats], error) {
	uc.logger.Debug("Listing users", zap.String("q", c.Text), zap.Int("filters", len(c.Categorical)))
	res, err := list(ctx, uc.lister, "users", userSchema, uc.catalog.Users(), c, computeUserStats)
	if err != nil {
		uc.logger.Warn("Failed to list users", zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (uc *UserUsecase) Detail(ctx context.Context, id string) (*UserDetail, error) {
	_, span := tracer.Start(ctx, "user.detail")
	defer span.End()

	user, err := uc.catalog.User(id)
	if err != nil {
		uc.logger.Warn("User not found", zap.String("user_id", id))
		return nil, err
	}

	owned, err := propertySchema.Filter(uc.catalog.Properties(), filter.Criteria{}.Where(FieldLandlordID, id))
	if err != nil {
		return nil, err
	}
	txs, err := transactionSchema.Filter(uc.catalog.Transactions(), filter.Criteria{}.Where(FieldUserID, id))
	if err != nil {
		return nil, err
	}

	money := stats.Aggregate(txs,
		stats.Sum("spent", settled(domain.TransactionDebit), txAmount),
		stats.Sum("recharged", settled(domain.TransactionCredit), txAmount),
	)
	reach := stats.Aggregate(owned,
		stats.Sum[domain.Property]("views", nil, func(p *domain.Property) float64 { return float64(p.Popularity.Views) }),
		stats.Sum[domain.Property]("unlocks", nil, func(p *domain.Property) float64 { return float64(p.Popularity.Unlocks) }),
	)

	return &UserDetail{
		User:           user,
		Properties:     owned,
		Transactions:   txs,
		TotalSpent:     money["spent"],
		TotalRecharged: money["recharged"],
		TotalViews:     reach.Int("views"),
		TotalUnlocks:   reach.Int("unlocks"),
	}, nil
}

// Suspend simulates suspending an account. Suspending an already suspended
// account is rejected.
func (uc *UserUsecase) Suspend(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.actions.Run(ctx, "suspend", subjectUser, id, func(context.Context) (*domain.Notification, error) {
		user, err := uc.catalog.User(id)
		if err != nil {
			return nil, err
		}
		if user.Status == domain.UserStatusSuspended {
			return nil, fmt.Errorf("%w: user %s is already suspended", domain.ErrInvalidInput, id)
		}
		return &domain.Notification{
			Title:       "Utilisateur suspendu",
			Description: fmt.Sprintf("%s a été suspendu avec succès.", user.Name),
			Variant:     domain.VariantDestructive,
		}, nil
	})
}

// Activate simulates reactivating an account. An account without a status is
// treated as activatable.
func (uc *UserUsecase) Activate(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.actions.Run(ctx, "activate", subjectUser, id, func(context.Context) (*domain.Notification, error) {
		user, err := uc.catalog.User(id)
		if err != nil {
			return nil, err
		}
		if user.Status == domain.UserStatusActive {
			return nil, fmt.Errorf("%w: user %s is already active", domain.ErrInvalidInput, id)
		}
		return &domain.Notification{
			Title:       "Utilisateur activé",
			Description: fmt.Sprintf("%s a été réactivé avec succès.", user.Name),
			Variant:     domain.VariantDefault,
		}, nil
	})
}

func (uc *UserUsecase) Delete(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.actions.Run(ctx, "delete", subjectUser, id, func(context.Context) (*domain.Notification, error) {
		user, err := uc.catalog.User(id)
		if err != nil {
			return nil, err
		}
		return &domain.Notification{
			Title:       "Utilisateur supprimé",
			Description: fmt.Sprintf("%s a été supprimé définitivement.", user.Name),
			Variant:     domain.VariantDestructive,
		}, nil
	})
}
