package usecase

import (
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
)

// Categorical filter names, as accepted on the list endpoints.
const (
	FieldRole       = "role"
	FieldStatus     = "status"
	FieldType       = "type"
	FieldApproval   = "approval"
	FieldMethod     = "method"
	FieldLandlordID = "landlordId"
	FieldUserID     = "userId"
)

const (
	ApprovalApproved = "approved"
	ApprovalPending  = "pending"
)

func userName(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.Name
}

var userSchema = filter.NewSchema[domain.User]().
	Text(
		filter.Required(func(u *domain.User) string { return u.Name }),
		filter.Optional(func(u *domain.User) string { return u.Email }),
		filter.Required(func(u *domain.User) string { return u.Phone }),
	).
	Field(FieldRole, filter.Contains(func(u *domain.User) []domain.Role { return u.Roles })).
	Field(FieldStatus, filter.Equals(func(u *domain.User) domain.UserStatus { return u.Status }))

var propertySchema = filter.NewSchema[domain.Property]().
	Text(
		filter.Required(func(p *domain.Property) string { return p.Title }),
		filter.Required(func(p *domain.Property) string { return p.Location.Address }),
	).
	Field(FieldType, filter.Equals(func(p *domain.Property) domain.PropertyType { return p.PropertyType })).
	Field(FieldStatus, filter.Equals(func(p *domain.Property) domain.PropertyStatus { return p.Status })).
	Field(FieldApproval, filter.OneOf(map[string]func(*domain.Property) bool{
		ApprovalApproved: func(p *domain.Property) bool { return p.IsAccept },
		ApprovalPending:  (*domain.Property).PendingApproval,
	})).
	Field(FieldLandlordID, filter.Equals(func(p *domain.Property) string { return p.LandlordID }))

var transactionSchema = filter.NewSchema[domain.Transaction]().
	Text(
		filter.Required(func(t *domain.Transaction) string { return t.ID }),
		filter.Required(func(t *domain.Transaction) string { return t.OrderID }),
		filter.Optional(func(t *domain.Transaction) string { return userName(t.User) }),
	).
	Field(FieldType, filter.Equals(func(t *domain.Transaction) domain.TransactionType { return t.Type })).
	Field(FieldStatus, filter.Equals(func(t *domain.Transaction) domain.TransactionStatus { return t.Status })).
	Field(FieldMethod, filter.Equals(func(t *domain.Transaction) domain.PaymentMethod { return t.PaymentMethod })).
	Field(FieldUserID, filter.Equals(func(t *domain.Transaction) string { return t.UserID }))

var chatSchema = filter.NewSchema[domain.Chat]().
	Text(
		filter.Optional(func(c *domain.Chat) string { return userName(c.Renter) }),
		filter.Optional(func(c *domain.Chat) string { return userName(c.Landlord) }),
		filter.Optional(func(c *domain.Chat) string {
			if c.House == nil {
				return ""
			}
			return c.House.Title
		}),
	)
