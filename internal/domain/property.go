package domain

import "time"

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeOffice     PropertyType = "office"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyTypes lists every property type in display order.
var PropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeApartment,
	PropertyTypeOffice,
	PropertyTypeCommercial,
}

type PropertyStatus string

const (
	PropertyStatusAvailable  PropertyStatus = "available"
	PropertyStatusRented     PropertyStatus = "rented"
	PropertyStatusPaused     PropertyStatus = "paused"
	PropertyStatusHighDemand PropertyStatus = "high_demand"
	PropertyStatusTaken      PropertyStatus = "taken"
	PropertyStatusExpired    PropertyStatus = "expired"
	PropertyStatusBooked     PropertyStatus = "booked"
	PropertyStatusOccupied   PropertyStatus = "occupied"
	PropertyStatusCancelled  PropertyStatus = "cancelled"
)

type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Popularity struct {
	Views      int `json:"views"`
	Unlocks    int `json:"unlocks"`
	Watchlists int `json:"watchlists"`
}

type DemandTracking struct {
	UnlocksInLast7Days  int        `json:"unlocksInLast7Days"`
	UnlocksInLast30Days int        `json:"unlocksInLast30Days"`
	LastUnlockDate      *time.Time `json:"lastUnlockDate,omitempty"`
}

type RentalConfirmation struct {
	ConfirmedAt time.Time `json:"confirmedAt"`
	ConfirmedBy string    `json:"confirmedBy"`
	SMSVerified bool      `json:"smsVerified"`
}

// Property is a listed house. IsAccept=false means it still waits for moderation.
type Property struct {
	ID                 string              `json:"id"`
	LandlordID         string              `json:"landlordId"`
	Landlord           *User               `json:"landlord,omitempty"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Price              float64             `json:"price"`
	Currency           string              `json:"currency"`
	PropertyType       PropertyType        `json:"propertyType"`
	Location           Location            `json:"location"`
	Images             []string            `json:"images"`
	Status             PropertyStatus      `json:"status"`
	IsAccept           bool                `json:"isAccept"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	ExpiresAt          *time.Time          `json:"expiresAt,omitempty"`
	Popularity         Popularity          `json:"popularity"`
	DemandTracking     DemandTracking      `json:"demandTracking"`
	RentalConfirmation *RentalConfirmation `json:"rentalConfirmation,omitempty"`
}

func (p *Property) PendingApproval() bool {
	return !p.IsAccept
}
