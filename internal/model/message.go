package model

import "time"

// Message is a contact-form submission, optionally answered by an admin reply.
type Message struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	Reply     *string    `json:"reply"`
	RepliedAt *time.Time `json:"repliedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MessageListOptions carries filter parameters for listing messages.
type MessageListOptions struct {
	// Status filters by read state: "", "all", "unread", "read".
	// Empty string and "all" return all messages.
	Status string
}
