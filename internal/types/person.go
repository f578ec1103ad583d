package types

import (
	"time"
)

// Person is the aggregate root. Addresses are owned exclusively by the
// Person: they are written and deleted with it and are never reachable
// through any other route.
type Person struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id,omitempty" xml:"id,omitempty"`
	FirstName   string     `gorm:"column:first_name;not null" json:"firstName" xml:"firstName"`
	LastName    string     `gorm:"column:last_name;not null" json:"lastName" xml:"lastName"`
	MiddleName  string     `gorm:"column:middle_name" json:"middleName,omitempty" xml:"middleName,omitempty"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date" json:"dateOfBirth,omitempty" xml:"dateOfBirth,omitempty"`
	Addresses   []Address  `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"addresses,omitempty" xml:"addresses>address,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"-" xml:"-"`
	UpdatedAt   time.Time  `gorm:"not null" json:"-" xml:"-"`
}

func (Person) TableName() string { return "person" }

// TruncateDateOfBirth drops any time-of-day component. The column has
// date precision, so a value that survives a store round-trip is always
// midnight UTC.
func (p *Person) TruncateDateOfBirth() {
	if p.DateOfBirth == nil {
		return
	}
	d := p.DateOfBirth.UTC()
	trimmed := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	p.DateOfBirth = &trimmed
}
