// file: internals/features/school/controller/student_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/school/dto"
	"schooladmin_backend/internals/features/school/repository"
	helper "schooladmin_backend/internals/helpers"
)

var errBadBody = helper.NewAPIError(fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")

type StudentController struct {
	Repo *repository.EntityRepository
}

func NewStudentController(repo *repository.EntityRepository) *StudentController {
	return &StudentController{Repo: repo}
}

func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}

	student, err := ctl.Repo.CreateStudent(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	log.Printf("[INFO] student created id=%s class=%v", student.StudentID, student.StudentClassID)
	return helper.JsonEntity(c, "student", student, "Student created successfully")
}

func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var req dto.StudentPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}

	student, err := ctl.Repo.UpdateStudent(c.UserContext(), c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	if student == nil {
		return helper.JsonEntity(c, "student", nil, "Student not found")
	}
	return helper.JsonEntity(c, "student", student, "Student updated successfully")
}

func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	if err := ctl.Repo.DeleteStudent(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.JsonMessage(c, "Student deleted successfully")
}

// ListStudents serves both GET /students and GET /public/students: class and
// the class's teacher are resolved.
func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	views, err := ctl.Repo.ListStudents(c.UserContext(), repository.DepthTwo)
	if err != nil {
		return err
	}
	return helper.JsonArray(c, dto.FromStudentViews(views))
}
