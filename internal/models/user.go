// internal/models/user.go
package models

type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"`
	Role     Role   `json:"role" gorm:"type:varchar(10);not null;default:'buyer';check:role IN ('buyer','seller')"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}

func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
