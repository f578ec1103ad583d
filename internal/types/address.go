package types

import (
	"time"
)

type Address struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id,omitempty" xml:"id,omitempty"`
	PersonID   int64     `gorm:"column:person_id;index;not null" json:"-" xml:"-"`
	Street     string    `gorm:"column:street" json:"street,omitempty" xml:"street,omitempty"`
	City       string    `gorm:"column:city" json:"city,omitempty" xml:"city,omitempty"`
	State      string    `gorm:"column:state" json:"state,omitempty" xml:"state,omitempty"`
	PostalCode string    `gorm:"column:postal_code" json:"postalCode,omitempty" xml:"postalCode,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"-" xml:"-"`
	UpdatedAt  time.Time `gorm:"not null" json:"-" xml:"-"`
}

func (Address) TableName() string { return "address" }
