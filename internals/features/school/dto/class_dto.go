// file: internals/features/school/dto/class_dto.go
package dto

import (
	"strings"

	"schooladmin_backend/internals/features/school/model"
	"schooladmin_backend/internals/features/school/repository"
)

/* ===================== Requests ===================== */

// ClassCreateRequest is not validated; any subset of fields is accepted.
type ClassCreateRequest struct {
	Standard  string            `json:"standard"`
	Section   string            `json:"section"`
	Status    *string           `json:"status"`
	TeacherID model.OptionalRef `json:"teacherId"`
}

func (r ClassCreateRequest) ToInput() repository.NewClass {
	in := repository.NewClass{
		Standard:  strings.TrimSpace(r.Standard),
		Section:   strings.TrimSpace(r.Section),
		TeacherID: r.TeacherID.Value,
	}
	if r.Status != nil {
		in.Status = normalizeStatus(*r.Status)
	}
	return in
}

// ClassPatchRequest: absent keys leave the column untouched; teacherId null clears it.
type ClassPatchRequest struct {
	Standard  *string           `json:"standard"`
	Section   *string           `json:"section"`
	Status    *string           `json:"status"`
	TeacherID model.OptionalRef `json:"teacherId"`
}

func (r ClassPatchRequest) ToPatch() model.ClassPatch {
	p := model.ClassPatch{
		Standard:  trimPtr(r.Standard),
		Section:   trimPtr(r.Section),
		TeacherID: r.TeacherID,
	}
	if r.Status != nil {
		st := normalizeStatus(*r.Status)
		p.Status = &st
	}
	return p
}

/* ===================== Responses ===================== */

// ClassResponse keeps the raw teacherId and adds the resolved teacher,
// which is null when unresolved.
type ClassResponse struct {
	model.ClassModel
	Teacher *model.TeacherModel `json:"teacher"`
}

func FromClassView(v repository.ClassView) ClassResponse {
	return ClassResponse{ClassModel: v.ClassModel, Teacher: v.Teacher}
}

func FromClassViews(vs []repository.ClassView) []ClassResponse {
	out := make([]ClassResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromClassView(v))
	}
	return out
}

/* ===================== helpers ===================== */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func normalizeStatus(s string) model.Status {
	return model.Status(strings.ToUpper(strings.TrimSpace(s)))
}
