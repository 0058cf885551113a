// file: internals/features/school/controller/class_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/school/dto"
	"schooladmin_backend/internals/features/school/repository"
	helper "schooladmin_backend/internals/helpers"
)

type ClassController struct {
	Repo *repository.EntityRepository
}

func NewClassController(repo *repository.EntityRepository) *ClassController {
	return &ClassController{Repo: repo}
}

/* =========================================================
   CREATE
   ========================================================= */
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}

	class, err := ctl.Repo.CreateClass(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	log.Printf("[INFO] class created id=%s teacher=%v", class.ClassID, class.ClassTeacherID)
	return helper.JsonEntity(c, "class", class, "Class created successfully")
}

/* =========================================================
   UPDATE (partial; unknown id → class: null)
   ========================================================= */
func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	var req dto.ClassPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}

	class, err := ctl.Repo.UpdateClass(c.UserContext(), c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	if class == nil {
		return helper.JsonEntity(c, "class", nil, "Class not found")
	}
	return helper.JsonEntity(c, "class", class, "Class updated successfully")
}

/* =========================================================
   DELETE (idempotent; students keep their classId)
   ========================================================= */
func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	if err := ctl.Repo.DeleteClass(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.JsonMessage(c, "Class deleted successfully")
}

/* =========================================================
   LIST (teacher resolved)
   ========================================================= */
func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	views, err := ctl.Repo.ListClasses(c.UserContext(), repository.DepthOne)
	if err != nil {
		return err
	}
	return helper.JsonArray(c, dto.FromClassViews(views))
}
