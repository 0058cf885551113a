package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin_backend/internals/features/school/model"
	"schooladmin_backend/internals/features/school/repository"
)

func TestClassPatchRequest_TeacherIDTriState(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name    string
		body    string
		set     bool
		cleared bool
	}{
		{"absent", `{"section":"B"}`, false, false},
		{"null clears", `{"teacherId":null}`, true, true},
		{"empty string clears", `{"teacherId":""}`, true, true},
		{"value sets", `{"teacherId":"` + id.String() + `"}`, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ClassPatchRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			p := req.ToPatch()
			assert.Equal(t, tt.set, p.TeacherID.Set)
			if tt.set && !tt.cleared {
				require.NotNil(t, p.TeacherID.Value)
				assert.Equal(t, id, *p.TeacherID.Value)
			} else {
				assert.Nil(t, p.TeacherID.Value)
			}
		})
	}
}

func TestClassCreateRequest_ToInput(t *testing.T) {
	var req ClassCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"standard":" 5 ","section":"A","status":"inactive"}`), &req))
	in := req.ToInput()
	assert.Equal(t, "5", in.Standard)
	assert.Equal(t, model.StatusInactive, in.Status)
	assert.Nil(t, in.TeacherID)

	var bad ClassCreateRequest
	assert.Error(t, json.Unmarshal([]byte(`{"teacherId":"not-a-uuid"}`), &bad))
}

func TestStudentResponse_JSON(t *testing.T) {
	classID := uuid.New()
	teacher := &model.TeacherModel{TeacherID: uuid.New(), TeacherName: "A", TeacherEmail: "a@x.com", TeacherPassword: "hash"}

	t.Run("resolved two levels", func(t *testing.T) {
		v := repository.StudentView{
			StudentModel: model.StudentModel{StudentID: uuid.New(), StudentFirstName: "Budi", StudentClassID: &classID},
			Class: &repository.ClassView{
				ClassModel: model.ClassModel{ClassID: classID, ClassStandard: "5", ClassTeacherID: &teacher.TeacherID},
				Teacher:    teacher,
			},
		}
		raw, err := json.Marshal(FromStudentView(v))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "Budi", got["firstName"])
		assert.Equal(t, classID.String(), got["classId"])

		class := got["class"].(map[string]any)
		assert.Equal(t, "5", class["standard"])
		tch := class["teacher"].(map[string]any)
		assert.Equal(t, "a@x.com", tch["email"])
		assert.NotContains(t, tch, "password")
		assert.NotContains(t, string(raw), "hash")
	})

	t.Run("dangling class is null", func(t *testing.T) {
		v := repository.StudentView{StudentModel: model.StudentModel{StudentID: uuid.New(), StudentClassID: &classID}}
		raw, err := json.Marshal(FromStudentView(v))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Contains(t, got, "class")
		assert.Nil(t, got["class"])
		assert.Equal(t, classID.String(), got["classId"])
	})
}

func TestFromClassViews_EmptyIsNotNil(t *testing.T) {
	out := FromClassViews(nil)
	require.NotNil(t, out)
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}
