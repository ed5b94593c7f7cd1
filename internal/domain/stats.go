package domain

// DashboardStats is the headline block of the admin dashboard.
type DashboardStats struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalRenters           int     `json:"totalRenters"`
	TotalLandlords         int     `json:"totalLandlords"`
	NewUsersLast7Days      int     `json:"newUsersLast7Days"`
	NewUsersLast30Days     int     `json:"newUsersLast30Days"`
	TotalProperties        int     `json:"totalProperties"`
	AvailableProperties    int     `json:"availableProperties"`
	RentedProperties       int     `json:"rentedProperties"`
	PendingApproval        int     `json:"pendingApproval"`
	TotalTransactions      int     `json:"totalTransactions"`
	TotalRevenue           float64 `json:"totalRevenue"`
	SuccessfulTransactions int     `json:"successfulTransactions"`
	FailedTransactions     int     `json:"failedTransactions"`
	TotalUnlocks           int     `json:"totalUnlocks"`
	ActiveChats            int     `json:"activeChats"`
}

// Point is one bucket of a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// GrowthPoint is the number of sign-ups in one month, split by role. A user
// holding both roles counts in both columns.
type GrowthPoint struct {
	Month     string `json:"month"`
	Renters   int    `json:"renters"`
	Landlords int    `json:"landlords"`
}

type Analytics struct {
	TotalRevenue   float64       `json:"totalRevenue"`
	TotalUsers     int           `json:"totalUsers"`
	TotalUnlocks   int           `json:"totalUnlocks"`
	RevenueByMonth []Point       `json:"revenueByMonth"`
	UserGrowth     []GrowthPoint `json:"userGrowth"`
	PropertyTypes  []Point       `json:"propertyTypes"`
}
