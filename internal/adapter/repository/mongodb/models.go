package mongodb

import (
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents mirror the marketplace backend's collections. _id may be an
// ObjectID or a plain string depending on how the record was created.

type userDocument struct {
	ID        interface{} `bson:"_id"`
	Name      string      `bson:"name"`
	Email     string      `bson:"email,omitempty"`
	Phone     string      `bson:"phone"`
	Roles     []string    `bson:"roles"`
	Avatar    string      `bson:"avatar,omitempty"`
	Status    string      `bson:"status,omitempty"`
	CreatedAt time.Time   `bson:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt"`
}

type locationDocument struct {
	Address   string  `bson:"address"`
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type popularityDocument struct {
	Views      int `bson:"views"`
	Unlocks    int `bson:"unlocks"`
	Watchlists int `bson:"watchlists"`
}

type demandDocument struct {
	UnlocksInLast7Days  int        `bson:"unlocksInLast7Days"`
	UnlocksInLast30Days int        `bson:"unlocksInLast30Days"`
	LastUnlockDate      *time.Time `bson:"lastUnlockDate,omitempty"`
}

type rentalConfirmationDocument struct {
	ConfirmedAt time.Time `bson:"confirmedAt"`
	ConfirmedBy string    `bson:"confirmedBy"`
	SMSVerified bool      `bson:"smsVerified"`
}

type houseDocument struct {
	ID                 interface{}                 `bson:"_id"`
	LandlordID         string                      `bson:"landlordId"`
	Title              string                      `bson:"title"`
	Description        string                      `bson:"description"`
	Price              float64                     `bson:"price"`
	Currency           string                      `bson:"currency"`
	PropertyType       string                      `bson:"propertyType"`
	Location           locationDocument            `bson:"location"`
	Images             []string                    `bson:"images"`
	Status             string                      `bson:"status"`
	IsAccept           bool                        `bson:"isAccept"`
	CreatedAt          time.Time                   `bson:"createdAt"`
	UpdatedAt          time.Time                   `bson:"updatedAt"`
	ExpiresAt          *time.Time                  `bson:"expiresAt,omitempty"`
	Popularity         popularityDocument          `bson:"popularity"`
	DemandTracking     demandDocument              `bson:"demandTracking"`
	RentalConfirmation *rentalConfirmationDocument `bson:"rentalConfirmation,omitempty"`
}

type transactionDocument struct {
	ID            interface{} `bson:"_id"`
	UserID        string      `bson:"userId"`
	Type          string      `bson:"type"`
	Amount        float64     `bson:"amount"`
	Description   string      `bson:"description"`
	Timestamp     time.Time   `bson:"timestamp"`
	Status        string      `bson:"status"`
	Reference     string      `bson:"reference,omitempty"`
	PaymentMethod string      `bson:"paymentMethod"`
	OrderID       string      `bson:"orderId"`
	PayToken      string      `bson:"payToken,omitempty"`
}

type messageDocument struct {
	ID         interface{} `bson:"_id"`
	SenderID   string      `bson:"senderId"`
	ReceiverID string      `bson:"receiverId"`
	HouseID    string      `bson:"houseId"`
	Content    string      `bson:"content"`
	Timestamp  time.Time   `bson:"timestamp"`
	Type       string      `bson:"type"`
}

type chatDocument struct {
	ID                interface{}       `bson:"_id"`
	RenterID          string            `bson:"renterId"`
	LandlordID        string            `bson:"landlordId"`
	HouseID           string            `bson:"houseId"`
	Messages          []messageDocument `bson:"messages"`
	CreatedAt         time.Time         `bson:"createdAt"`
	UnreadCount       int               `bson:"unreadCount,omitempty"`
	LastReadTimestamp *time.Time        `bson:"lastReadTimestamp,omitempty"`
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func (d *userDocument) toDomain() domain.User {
	roles := make([]domain.Role, 0, len(d.Roles))
	for _, r := range d.Roles {
		roles = append(roles, domain.Role(r))
	}
	return domain.User{
		ID:        idString(d.ID),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Roles:     roles,
		Avatar:    d.Avatar,
		Status:    domain.UserStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d *houseDocument) toDomain() domain.Property {
	p := domain.Property{
		ID:           idString(d.ID),
		LandlordID:   d.LandlordID,
		Title:        d.Title,
		Description:  d.Description,
		Price:        d.Price,
		Currency:     d.Currency,
		PropertyType: domain.PropertyType(d.PropertyType),
		Location: domain.Location{
			Address:   d.Location.Address,
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
		},
		Images:    d.Images,
		Status:    domain.PropertyStatus(d.Status),
		IsAccept:  d.IsAccept,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		ExpiresAt: d.ExpiresAt,
		Popularity: domain.Popularity{
			Views:      d.Popularity.Views,
			Unlocks:    d.Popularity.Unlocks,
			Watchlists: d.Popularity.Watchlists,
		},
		DemandTracking: domain.DemandTracking{
			UnlocksInLast7Days:  d.DemandTracking.UnlocksInLast7Days,
			UnlocksInLast30Days: d.DemandTracking.UnlocksInLast30Days,
			LastUnlockDate:      d.DemandTracking.LastUnlockDate,
		},
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if rc := d.RentalConfirmation; rc != nil {
		p.RentalConfirmation = &domain.RentalConfirmation{
			ConfirmedAt: rc.ConfirmedAt,
			ConfirmedBy: rc.ConfirmedBy,
			SMSVerified: rc.SMSVerified,
		}
	}
	return p
}

func (d *transactionDocument) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:            idString(d.ID),
		UserID:        d.UserID,
		Type:          domain.TransactionType(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Timestamp:     d.Timestamp,
		Status:        domain.TransactionStatus(d.Status),
		Reference:     d.Reference,
		PaymentMethod: domain.PaymentMethod(d.PaymentMethod),
		OrderID:       d.OrderID,
		PayToken:      d.PayToken,
	}
}

func (d *chatDocument) toDomain() domain.Chat {
	msgs := make([]domain.ChatMessage, 0, len(d.Messages))
	for _, m := range d.Messages {
		msgs = append(msgs, domain.ChatMessage{
			ID:         idString(m.ID),
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			HouseID:    m.HouseID,
			Content:    m.Content,
			Timestamp:  m.Timestamp,
			Type:       domain.MessageType(m.Type),
		})
	}
	return domain.Chat{
		ID:                idString(d.ID),
		RenterID:          d.RenterID,
		LandlordID:        d.LandlordID,
		HouseID:           d.HouseID,
		Messages:          msgs,
		CreatedAt:         d.CreatedAt,
		UnreadCount:       d.UnreadCount,
		LastReadTimestamp: d.LastReadTimestamp,
	}
}
