package model

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:64;unique;not null"`
	Password string `json:"-"` // bcrypt hash
	Role     string `json:"role" gorm:"size:32"` // driver / depo-master
}
