package models

// User is a registered account identity. UserName is looked up by the
// service layer but carries no unique constraint.
type User struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName string `gorm:"size:255;index" json:"userName"`
	FullName string `gorm:"size:255" json:"fullName"`
}

func (User) TableName() string {
	return "users"
}
