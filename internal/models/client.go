package models

import (
	"time"

	"gorm.io/gorm"
)

// Client é um cliente em prospecção, sempre vinculado ao funcionário que o cadastrou
type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Name            string `gorm:"size:50" json:"name"`
	HouseAddress    string `gorm:"size:200" json:"house_address"`
	RegisterAddress string `gorm:"size:200" json:"register_address"`

	FirstContact time.Time `json:"first_contact"`
	NextFollow   time.Time `json:"next_follow"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "customers"
}

// BeforeSave grava os horários em UTC, com precisão de segundos
func (c *Client) BeforeSave(tx *gorm.DB) error {
	c.FirstContact = c.FirstContact.UTC().Truncate(time.Second)
	c.NextFollow = c.NextFollow.UTC().Truncate(time.Second)
	return nil
}
