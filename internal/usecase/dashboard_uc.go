package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/stats"
)

const (
	recentActivityLimit = 5
	monthLayout         = "2006-01"
	day                 = 24 * time.Hour
)

type Dashboard struct {
	Stats            domain.DashboardStats `json:"stats"`
	PendingApprovals []domain.Property     `json:"pendingApprovals"`
	RecentActivity   []domain.Activity     `json:"recentActivity"`
}

type DashboardUsecase struct {
	catalog Catalog
	clock   Clock
	logger  *logger.Logger
}

func NewDashboardUsecase(cat Catalog, clock Clock, log *logger.Logger) *DashboardUsecase {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardUsecase{
		catalog: cat,
		clock:   clock,
		logger:  log.Named("DashboardUsecase"),
	}
}

func (uc *DashboardUsecase) Dashboard(ctx context.Context) *Dashboard {
	_, span := tracer.Start(ctx, "dashboard")
	defer span.End()

	return &Dashboard{
		Stats:            uc.Stats(),
		PendingApprovals: filter.Apply(uc.catalog.Properties(), (*domain.Property).PendingApproval),
		RecentActivity:   uc.RecentActivity(recentActivityLimit),
	}
}

// Stats computes the dashboard headline numbers over the full catalog.
func (uc *DashboardUsecase) Stats() domain.DashboardStats {
	now := uc.clock()
	since := func(d time.Duration) func(*domain.User) bool {
		cutoff := now.Add(-d)
		return func(u *domain.User) bool { return !u.CreatedAt.Before(cutoff) }
	}

	users := stats.Aggregate(uc.catalog.Users(),
		stats.Count[domain.User]("total", nil),
		stats.Count("renters", hasRole(domain.RoleRenter)),
		stats.Count("landlords", hasRole(domain.RoleLandlord)),
		stats.Count("new7", since(7*day)),
		stats.Count("new30", since(30*day)),
	)
	props := computePropertyStats(uc.catalog.Properties())
	unlocks := stats.Aggregate(uc.catalog.Properties(), unlockSum())
	txs := computeTransactionStats(uc.catalog.Transactions())
	chats := stats.Aggregate(uc.catalog.Chats(),
		stats.Count("active", func(c *domain.Chat) bool { return len(c.Messages) > 0 }),
	)

	return domain.DashboardStats{
		TotalUsers:             users.Int("total"),
		TotalRenters:           users.Int("renters"),
		TotalLandlords:         users.Int("landlords"),
		NewUsersLast7Days:      users.Int("new7"),
		NewUsersLast30Days:     users.Int("new30"),
		TotalProperties:        props.Total,
		AvailableProperties:    props.Available,
		RentedProperties:       props.Rented,
		PendingApproval:        props.PendingApproval,
		TotalTransactions:      txs.Total,
		TotalRevenue:           txs.TotalCredits,
		SuccessfulTransactions: txs.Successful,
		FailedTransactions:     txs.Failed,
		TotalUnlocks:           unlocks.Int("unlocks"),
		ActiveChats:            chats.Int("active"),
	}
}

func unlockSum() stats.Classifier[domain.Property] {
	return stats.Sum[domain.Property]("unlocks", nil, func(p *domain.Property) float64 { return float64(p.Popularity.Unlocks) })
}

// RecentActivity merges sign-ups, listings and settled transactions, newest
// first.
func (uc *DashboardUsecase) RecentActivity(limit int) []domain.Activity {
	var feed []domain.Activity
	for _, u := range uc.catalog.Users() {
		feed = append(feed, domain.Activity{
			Type:        "user",
			Title:       "Nouvel utilisateur inscrit",
			Description: u.Name + " a créé un compte",
			Avatar:      u.Avatar,
			At:          u.CreatedAt,
		})
	}
	for _, p := range uc.catalog.Properties() {
		desc := p.Title + " a été publiée"
		if p.PendingApproval() {
			desc = p.Title + " en attente d'approbation"
		}
		feed = append(feed, domain.Activity{
			Type:        "property",
			Title:       "Nouvelle propriété listée",
			Description: desc,
			At:          p.CreatedAt,
		})
	}
	for i := range uc.catalog.Transactions() {
		t := &uc.catalog.Transactions()[i]
		if !t.Settled() {
			continue
		}
		verb := "a rechargé"
		if t.Type == domain.TransactionDebit {
			verb = "a payé"
		}
		a := domain.Activity{
			Type:        "transaction",
			Title:       "Transaction réussie",
			Description: fmt.Sprintf("%s %s %s GNF", displayName(t.User), verb, FormatAmount(t.Amount)),
			At:          t.Timestamp,
		}
		if t.User != nil {
			a.Avatar = t.User.Avatar
		}
		feed = append(feed, a)
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].At.After(feed[j].At) })
	if limit >= 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	if feed == nil {
		feed = []domain.Activity{}
	}
	return feed
}

func displayName(u *domain.User) string {
	if u == nil {
		return "Utilisateur inconnu"
	}
	return u.Name
}

// FormatAmount renders a whole amount with comma thousands separators, as in
// "50,000".
func FormatAmount(v float64) string {
	s := strconv.FormatInt(int64(v), 10)
	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Analytics builds the chart series: monthly revenue from settled credits,
// monthly sign-ups per role and the property type distribution.
func (uc *DashboardUsecase) Analytics(ctx context.Context) *domain.Analytics {
	_, span := tracer.Start(ctx, "analytics")
	defer span.End()

	byMonth := func(t time.Time) string { return t.UTC().Format(monthLayout) }

	credits := filter.Apply(uc.catalog.Transactions(), settled(domain.TransactionCredit))
	months, revenue := stats.GroupBy(credits, func(t *domain.Transaction) string { return byMonth(t.Timestamp) }, txAmount)
	sort.Strings(months)
	revenueSeries := make([]domain.Point, 0, len(months))
	var total float64
	for _, m := range months {
		revenueSeries = append(revenueSeries, domain.Point{Label: m, Value: revenue[m]})
		total += revenue[m]
	}

	users := uc.catalog.Users()
	signup := func(u *domain.User) string { return byMonth(u.CreatedAt) }
	allMonths, _ := stats.GroupBy(users, signup, nil)
	_, renters := stats.GroupBy(filter.Apply(users, hasRole(domain.RoleRenter)), signup, nil)
	_, landlords := stats.GroupBy(filter.Apply(users, hasRole(domain.RoleLandlord)), signup, nil)
	sort.Strings(allMonths)
	growth := make([]domain.GrowthPoint, 0, len(allMonths))
	for _, m := range allMonths {
		growth = append(growth, domain.GrowthPoint{Month: m, Renters: renters.Int(m), Landlords: landlords.Int(m)})
	}

	classifiers := make([]stats.Classifier[domain.Property], 0, len(domain.PropertyTypes)+1)
	for _, pt := range domain.PropertyTypes {
		pt := pt
		classifiers = append(classifiers, stats.Count(string(pt), func(p *domain.Property) bool { return p.PropertyType == pt }))
	}
	classifiers = append(classifiers, unlockSum())
	props := stats.Aggregate(uc.catalog.Properties(), classifiers...)
	types := make([]domain.Point, 0, len(domain.PropertyTypes))
	for _, pt := range domain.PropertyTypes {
		types = append(types, domain.Point{Label: string(pt), Value: props[string(pt)]})
	}

	return &domain.Analytics{
		TotalRevenue:   total,
		TotalUsers:     len(users),
		TotalUnlocks:   props.Int("unlocks"),
		RevenueByMonth: revenueSeries,
		UserGrowth:     growth,
		PropertyTypes:  types,
	}
}
