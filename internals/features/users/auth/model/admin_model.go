package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID           uuid.UUID `gorm:"column:admin_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"admin_id"`
	AdminEmail        string    `gorm:"column:admin_email;type:varchar(255);uniqueIndex;not null" json:"admin_email"`
	AdminPasswordHash *string   `gorm:"column:admin_password_hash;type:varchar(100)" json:"-"`
	AdminName         string    `gorm:"column:admin_name;type:varchar(255);not null" json:"admin_name"`
	AdminIsActive     bool      `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`
	AdminLastLoginAt  *time.Time `gorm:"column:admin_last_login_at" json:"admin_last_login_at,omitempty"`

	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt *time.Time     `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at,omitempty"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;index" json:"admin_deleted_at,omitempty"`
}

func (AdminModel) TableName() string {
	return "admins"
}
