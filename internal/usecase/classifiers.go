package usecase

import (
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/stats"
)

type UserStats struct {
	Total     int `json:"total"`
	Renters   int `json:"renters"`
	Landlords int `json:"landlords"`
	Suspended int `json:"suspended"`
}

type PropertyStats struct {
	Total           int `json:"total"`
	Available       int `json:"available"`
	Rented          int `json:"rented"`
	PendingApproval int `json:"pendingApproval"`
	HighDemand      int `json:"highDemand"`
}

type TransactionStats struct {
	Total        int     `json:"total"`
	TotalCredits float64 `json:"totalCredits"`
	TotalDebits  float64 `json:"totalDebits"`
	Successful   int     `json:"successful"`
	Failed       int     `json:"failed"`
}

type ChatStats struct {
	Total       int `json:"total"`
	TotalUnread int `json:"totalUnread"`
}

func hasRole(role domain.Role) func(*domain.User) bool {
	return func(u *domain.User) bool { return u.HasRole(role) }
}

func userStatus(s domain.UserStatus) func(*domain.User) bool {
	return func(u *domain.User) bool { return u.Status == s }
}

func propertyStatus(s domain.PropertyStatus) func(*domain.Property) bool {
	return func(p *domain.Property) bool { return p.Status == s }
}

func settled(kind domain.TransactionType) func(*domain.Transaction) bool {
	return func(t *domain.Transaction) bool { return t.Type == kind && t.Settled() }
}

func txAmount(t *domain.Transaction) float64 { return t.Amount }

func txStatus(s domain.TransactionStatus) func(*domain.Transaction) bool {
	return func(t *domain.Transaction) bool { return t.Status == s }
}

func computeUserStats(users []domain.User) UserStats {
	r := stats.Aggregate(users,
		stats.Count[domain.User]("total", nil),
		stats.Count("renters", hasRole(domain.RoleRenter)),
		stats.Count("landlords", hasRole(domain.RoleLandlord)),
		stats.Count("suspended", userStatus(domain.UserStatusSuspended)),
	)
	return UserStats{
		Total:     r.Int("total"),
		Renters:   r.Int("renters"),
		Landlords: r.Int("landlords"),
		Suspended: r.Int("suspended"),
	}
}

func computePropertyStats(props []domain.Property) PropertyStats {
	r := stats.Aggregate(props,
		stats.Count[domain.Property]("total", nil),
		stats.Count("available", propertyStatus(domain.PropertyStatusAvailable)),
		stats.Count("rented", propertyStatus(domain.PropertyStatusRented)),
		stats.Count("pending", (*domain.Property).PendingApproval),
		stats.Count("high_demand", propertyStatus(domain.PropertyStatusHighDemand)),
	)
	return PropertyStats{
		Total:           r.Int("total"),
		Available:       r.Int("available"),
		Rented:          r.Int("rented"),
		PendingApproval: r.Int("pending"),
		HighDemand:      r.Int("high_demand"),
	}
}

func computeTransactionStats(txs []domain.Transaction) TransactionStats {
	r := stats.Aggregate(txs,
		stats.Count[domain.Transaction]("total", nil),
		stats.Sum("credits", settled(domain.TransactionCredit), txAmount),
		stats.Sum("debits", settled(domain.TransactionDebit), txAmount),
		stats.Count("successful", (*domain.Transaction).Settled),
		stats.Count("failed", txStatus(domain.TransactionFailed)),
	)
	return TransactionStats{
		Total:        r.Int("total"),
		TotalCredits: r["credits"],
		TotalDebits:  r["debits"],
		Successful:   r.Int("successful"),
		Failed:       r.Int("failed"),
	}
}

func computeChatStats(chats []domain.Chat) ChatStats {
	r := stats.Aggregate(chats,
		stats.Count[domain.Chat]("total", nil),
		stats.Sum[domain.Chat]("unread", nil, func(c *domain.Chat) float64 { return float64(c.UnreadCount) }),
	)
	return ChatStats{Total: r.Int("total"), TotalUnread: r.Int("unread")}
}
