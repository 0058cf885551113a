package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// TeacherModel maps the `teachers` table. Rows are only ever created by
// registration; the REST surface never updates or deletes them.
type TeacherModel struct {
	TeacherID       uuid.UUID `json:"id"       gorm:"column:teacher_id;type:uuid;primaryKey"`
	TeacherName     string    `json:"name"     gorm:"column:teacher_name;type:text;not null"`
	TeacherEmail    string    `json:"email"    gorm:"column:teacher_email;type:text;not null;uniqueIndex:uq_teachers_email"`
	TeacherPassword string    `json:"-"        gorm:"column:teacher_password;type:text;not null"`
	TeacherAddress  string    `json:"address"  gorm:"column:teacher_address;type:text;not null;default:''"`
	TeacherStatus   Status    `json:"status"   gorm:"column:teacher_status;type:varchar(16);not null;default:'ACTIVE'"`

	TeacherCreatedAt time.Time `json:"createdAt" gorm:"column:teacher_created_at;type:timestamptz;not null"`
	TeacherUpdatedAt time.Time `json:"updatedAt" gorm:"column:teacher_updated_at;type:timestamptz;not null"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
