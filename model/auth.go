package model

import "time"

type Akun struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id_user"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(15)" json:"phone"`
	Email     string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	RoleID    int       `gorm:"type:int;not null" json:"id_role"`
	Password  string    `gorm:"type:varchar(255);not null" json:"password"`
	CreatedAt time.Time `gorm:"type:timestamp;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:current_timestamp" json:"updated_at"`
}

type Role struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Rolename string  `gorm:"type:varchar(255);not null" json:"name_role"`
	Desc     *string `gorm:"type:text" json:"deskripsi"`
	Status   bool    `gorm:"default:true" json:"status"`
}

func (Role) TableName() string {
	return "role"
}
