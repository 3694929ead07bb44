package models

// Sex of a user, used to pick the accent of the user column.
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// User owns categories.
type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Sex  Sex    `gorm:"type:varchar(1);not null" json:"sex"`
}

func (u *User) TableName() string {
	return "users"
}

// Accent returns the colour accent the user column is rendered with.
func (u User) Accent() string {
	if u.Sex == SexMale {
		return "link"
	}
	return "danger"
}
