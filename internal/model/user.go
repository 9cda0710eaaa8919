package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// UserSettings stores per-user preferences as a JSON column.
type UserSettings struct {
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
	Theme              string `json:"theme"`
}

// DefaultUserSettings are applied on registration and for rows that predate
// the column.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		EmailNotifications: true,
		PushNotifications:  true,
		Theme:              "light",
	}
}

func (s UserSettings) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *UserSettings) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = DefaultUserSettings()
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("unsupported type for UserSettings")
}

// swagger:model User
type User struct {
	BaseModel
	Name      string       `gorm:"size:100;not null" json:"name"`
	Email     string       `gorm:"size:100;unique;not null" json:"email"`
	Password  string       `gorm:"size:100;not null" json:"-"`
	Role      UserRole     `gorm:"type:enum('student','instructor','admin');default:'student'" json:"role"`
	Avatar    string       `gorm:"size:255" json:"avatar"`
	Bio       string       `gorm:"type:text" json:"bio"`
	Plan      string       `gorm:"size:50;default:'Free Plan'" json:"plan"`
	Verified  bool         `gorm:"default:false" json:"verified"`
	Disabled  bool         `gorm:"default:false" json:"disabled"`
	Settings  UserSettings `gorm:"type:json" json:"settings"`
	LastLogin time.Time    `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
