package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel maps the `classes` table. ClassTeacherID is a weak reference:
// nothing checks that the teacher exists, now or later.
type ClassModel struct {
	ClassID        uuid.UUID  `json:"id"        gorm:"column:class_id;type:uuid;primaryKey"`
	ClassStandard  string     `json:"standard"  gorm:"column:class_standard;type:text;not null"`
	ClassSection   string     `json:"section"   gorm:"column:class_section;type:text;not null"`
	ClassStatus    Status     `json:"status"    gorm:"column:class_status;type:varchar(16);not null;default:'ACTIVE'"`
	ClassTeacherID *uuid.UUID `json:"teacherId" gorm:"column:class_teacher_id;type:uuid"`

	ClassCreatedAt time.Time `json:"createdAt" gorm:"column:class_created_at;type:timestamptz;not null"`
	ClassUpdatedAt time.Time `json:"updatedAt" gorm:"column:class_updated_at;type:timestamptz;not null"`
}

func (ClassModel) TableName() string {
	return "classes"
}

// ClassPatch carries the fields of a partial update; nil means "leave as is".
type ClassPatch struct {
	Standard  *string
	Section   *string
	Status    *Status
	TeacherID OptionalRef
}

func (p ClassPatch) Apply(m *ClassModel, now time.Time) {
	if p.Standard != nil {
		m.ClassStandard = *p.Standard
	}
	if p.Section != nil {
		m.ClassSection = *p.Section
	}
	if p.Status != nil {
		m.ClassStatus = *p.Status
	}
	if p.TeacherID.Set {
		m.ClassTeacherID = p.TeacherID.Value
	}
	m.ClassUpdatedAt = now
}

// Columns returns the column → value map for a single UPDATE statement.
func (p ClassPatch) Columns(now time.Time) map[string]any {
	cols := map[string]any{"class_updated_at": now}
	if p.Standard != nil {
		cols["class_standard"] = *p.Standard
	}
	if p.Section != nil {
		cols["class_section"] = *p.Section
	}
	if p.Status != nil {
		cols["class_status"] = string(*p.Status)
	}
	if p.TeacherID.Set {
		cols["class_teacher_id"] = p.TeacherID.Column()
	}
	return cols
}
