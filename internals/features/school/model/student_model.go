package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel maps the `students` table. StudentClassID is a weak reference.
type StudentModel struct {
	StudentID         uuid.UUID  `json:"id"         gorm:"column:student_id;type:uuid;primaryKey"`
	StudentFirstName  string     `json:"firstName"  gorm:"column:student_first_name;type:text;not null"`
	StudentLastName   string     `json:"lastName"   gorm:"column:student_last_name;type:text;not null"`
	StudentClassID    *uuid.UUID `json:"classId"    gorm:"column:student_class_id;type:uuid"`
	StudentParentName string     `json:"parentName" gorm:"column:student_parent_name;type:text;not null"`
	StudentAddress    string     `json:"address"    gorm:"column:student_address;type:text;not null"`
	StudentCity       string     `json:"city"       gorm:"column:student_city;type:text;not null"`

	StudentCreatedAt time.Time `json:"createdAt" gorm:"column:student_created_at;type:timestamptz;not null"`
	StudentUpdatedAt time.Time `json:"updatedAt" gorm:"column:student_updated_at;type:timestamptz;not null"`
}

func (StudentModel) TableName() string {
	return "students"
}

type StudentPatch struct {
	FirstName  *string
	LastName   *string
	ParentName *string
	Address    *string
	City       *string
	ClassID    OptionalRef
}

func (p StudentPatch) Apply(m *StudentModel, now time.Time) {
	if p.FirstName != nil {
		m.StudentFirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.StudentLastName = *p.LastName
	}
	if p.ParentName != nil {
		m.StudentParentName = *p.ParentName
	}
	if p.Address != nil {
		m.StudentAddress = *p.Address
	}
	if p.City != nil {
		m.StudentCity = *p.City
	}
	if p.ClassID.Set {
		m.StudentClassID = p.ClassID.Value
	}
	m.StudentUpdatedAt = now
}

func (p StudentPatch) Columns(now time.Time) map[string]any {
	cols := map[string]any{"student_updated_at": now}
	if p.FirstName != nil {
		cols["student_first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["student_last_name"] = *p.LastName
	}
	if p.ParentName != nil {
		cols["student_parent_name"] = *p.ParentName
	}
	if p.Address != nil {
		cols["student_address"] = *p.Address
	}
	if p.City != nil {
		cols["student_city"] = *p.City
	}
	if p.ClassID.Set {
		cols["student_class_id"] = p.ClassID.Column()
	}
	return cols
}
