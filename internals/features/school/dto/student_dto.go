// file: internals/features/school/dto/student_dto.go
package dto

import (
	"strings"

	"schooladmin_backend/internals/features/school/model"
	"schooladmin_backend/internals/features/school/repository"
)

/* ===================== Requests ===================== */

type StudentCreateRequest struct {
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	ClassID    model.OptionalRef `json:"classId"`
	ParentName string            `json:"parentName"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
}

func (r StudentCreateRequest) ToInput() repository.NewStudent {
	return repository.NewStudent{
		FirstName:  strings.TrimSpace(r.FirstName),
		LastName:   strings.TrimSpace(r.LastName),
		ClassID:    r.ClassID.Value,
		ParentName: strings.TrimSpace(r.ParentName),
		Address:    strings.TrimSpace(r.Address),
		City:       strings.TrimSpace(r.City),
	}
}

type StudentPatchRequest struct {
	FirstName  *string           `json:"firstName"`
	LastName   *string           `json:"lastName"`
	ClassID    model.OptionalRef `json:"classId"`
	ParentName *string           `json:"parentName"`
	Address    *string           `json:"address"`
	City       *string           `json:"city"`
}

func (r StudentPatchRequest) ToPatch() model.StudentPatch {
	return model.StudentPatch{
		FirstName:  trimPtr(r.FirstName),
		LastName:   trimPtr(r.LastName),
		ParentName: trimPtr(r.ParentName),
		Address:    trimPtr(r.Address),
		City:       trimPtr(r.City),
		ClassID:    r.ClassID,
	}
}

/* ===================== Responses ===================== */

type StudentResponse struct {
	model.StudentModel
	Class *ClassResponse `json:"class"`
}

func FromStudentView(v repository.StudentView) StudentResponse {
	out := StudentResponse{StudentModel: v.StudentModel}
	if v.Class != nil {
		cr := FromClassView(*v.Class)
		out.Class = &cr
	}
	return out
}

func FromStudentViews(vs []repository.StudentView) []StudentResponse {
	out := make([]StudentResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromStudentView(v))
	}
	return out
}
