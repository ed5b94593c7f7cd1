package mongodb

import (
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, oid.Hex(), idString(oid))
	assert.Equal(t, "usr_01", idString("usr_01"))
	assert.Equal(t, "", idString(nil))
	assert.Equal(t, "42", idString(int32(42)))
}

func TestHouseDocument_RoundTripFromBSON(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2026, 2, 25, 15, 30, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{
		"_id":          oid,
		"landlordId":   "usr_03",
		"title":        "Studio Meublé Dixinn",
		"price":        1800000.0,
		"currency":     "GNF",
		"propertyType": "apartment",
		"location":     bson.M{"address": "Dixinn Centre, Conakry", "latitude": 9.5466, "longitude": -13.6738},
		"status":       "available",
		"isAccept":     false,
		"createdAt":    created,
		"popularity":   bson.M{"views": 86, "unlocks": 0, "watchlists": 4},
		"rentalConfirmation": bson.M{
			"confirmedAt": created,
			"confirmedBy": "usr_07",
			"smsVerified": true,
		},
	})
	require.NoError(t, err)

	var doc houseDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	p := doc.toDomain()

	assert.Equal(t, oid.Hex(), p.ID)
	assert.Equal(t, domain.PropertyTypeApartment, p.PropertyType)
	assert.Equal(t, "Dixinn Centre, Conakry", p.Location.Address)
	assert.Equal(t, 86, p.Popularity.Views)
	assert.True(t, p.PendingApproval())
	assert.NotNil(t, p.Images)
	assert.Empty(t, p.Images)
	require.NotNil(t, p.RentalConfirmation)
	assert.True(t, p.RentalConfirmation.SMSVerified)
	assert.True(t, created.Equal(p.CreatedAt))
}

func TestChatDocument_ToDomain(t *testing.T) {
	doc := chatDocument{
		ID:       "cht_01",
		RenterID: "usr_01",
		Messages: []messageDocument{
			{ID: "m1", SenderID: "usr_01", Content: "Bonjour", Type: "text"},
			{ID: primitive.NilObjectID, SenderID: "usr_02", Content: "houses/hse_01/salon.jpg", Type: "image"},
		},
		UnreadCount: 2,
	}

	c := doc.toDomain()

	assert.Equal(t, "cht_01", c.ID)
	require.Len(t, c.Messages, 2)
	assert.Equal(t, domain.MessageImage, c.LastMessage().Type)
	assert.Equal(t, 2, c.UnreadCount)
}

func TestUserDocument_ToDomain(t *testing.T) {
	doc := userDocument{ID: "usr_03", Name: "Fatou Barry", Roles: []string{"renter", "landlord"}}

	u := doc.toDomain()

	assert.True(t, u.HasRole(domain.RoleLandlord))
	assert.True(t, u.HasRole(domain.RoleRenter))
}
