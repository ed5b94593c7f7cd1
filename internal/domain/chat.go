package domain

import "time"

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
)

type ChatMessage struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"senderId"`
	ReceiverID string      `json:"receiverId"`
	HouseID    string      `json:"houseId"`
	Content    string      `json:"content"`
	Timestamp  time.Time   `json:"timestamp"`
	Type       MessageType `json:"type"`
	Sender     *User       `json:"sender,omitempty"`
	Receiver   *User       `json:"receiver,omitempty"`
}

// Chat is a conversation between a renter and a landlord about one property.
type Chat struct {
	ID                string        `json:"id"`
	RenterID          string        `json:"renterId"`
	LandlordID        string        `json:"landlordId"`
	HouseID           string        `json:"houseId"`
	Renter            *User         `json:"renter,omitempty"`
	Landlord          *User         `json:"landlord,omitempty"`
	House             *Property     `json:"house,omitempty"`
	Messages          []ChatMessage `json:"messages"`
	CreatedAt         time.Time     `json:"createdAt"`
	UnreadCount       int           `json:"unreadCount,omitempty"`
	LastReadTimestamp *time.Time    `json:"lastReadTimestamp,omitempty"`
}

// LastMessage returns the final message of the conversation, or nil when empty.
func (c *Chat) LastMessage() *ChatMessage {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
