package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// StringArray is a custom type for string collections stored as JSON text
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Link is one external profile link (GitHub, blog, ...)
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LinkList is a link collection stored as a serialized JSON text column
type LinkList []Link

// Value implements the driver.Valuer interface
func (l LinkList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *LinkList) Scan(value interface{}) error {
	if value == nil {
		*l = LinkList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Dev is one developer profile record
type Dev struct {
	ID           string      `gorm:"type:varchar(26);primarykey" json:"id"`
	Username     string      `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Firstname    string      `gorm:"size:100;not null" json:"firstname"`
	Middlename   string      `gorm:"size:100" json:"middlename"`
	Lastname     string      `gorm:"size:100" json:"lastname"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Bio          string      `gorm:"type:text" json:"bio"`
	Stacks       StringArray `gorm:"type:text" json:"stacks"`
	Links        LinkList    `gorm:"type:text" json:"links"`
	AvatarURL    string      `gorm:"size:255" json:"avatar_url"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// BeforeCreate assigns a ULID exactly once; ids sort by creation time.
func (d *Dev) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = ulid.Make().String()
	}
	return nil
}
