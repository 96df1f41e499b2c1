package models

import "time"

// VisitorSource describes how a visitor was acquired
type VisitorSource string

const (
	SourceWebsite  VisitorSource = "website"
	SourceMenu     VisitorSource = "menu"
	SourceReferral VisitorSource = "referral"
	SourceWalkIn   VisitorSource = "walk-in"
	SourceOther    VisitorSource = "other"
)

// Visitor is a CRM record keyed by normalized phone number.
type Visitor struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"not null"`
	Phone     string        `json:"phone" gorm:"uniqueIndex;not null"`
	OptedIn   bool          `json:"opted_in" gorm:"default:true"`
	Source    VisitorSource `json:"source,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// MessageChannel is the medium a contact attempt went through
type MessageChannel string

const (
	ChannelWhatsApp MessageChannel = "whatsapp"
	ChannelSMS      MessageChannel = "sms"
	ChannelManual   MessageChannel = "manual"
)

// MessageLog records one outreach attempt to a visitor, the audit
// trail for the CRM side of the house.
type MessageLog struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	VisitorID uint           `json:"visitor_id" gorm:"not null;index"`
	Channel   MessageChannel `json:"channel" gorm:"not null"`
	Action    string         `json:"action" gorm:"not null"`
	Body      string         `json:"body" gorm:"not null"`
	Admin     string         `json:"admin,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
