// internals/features/school/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/school/controller"
	"schooladmin_backend/internals/features/school/repository"
)

// SchoolRoutes mounts the class and student endpoints. Every route except
// GET /public/students runs the auth gate first.
func SchoolRoutes(r fiber.Router, repo *repository.EntityRepository, gate fiber.Handler) {
	classes := controller.NewClassController(repo)
	r.Post("/class", gate, classes.CreateClass)
	r.Put("/class/:id", gate, classes.UpdateClass)
	r.Delete("/class/:id", gate, classes.DeleteClass)
	r.Get("/classes", gate, classes.ListClasses)

	students := controller.NewStudentController(repo)
	r.Post("/student", gate, students.CreateStudent)
	r.Put("/student/:id", gate, students.UpdateStudent)
	r.Delete("/student/:id", gate, students.DeleteStudent)
	r.Get("/students", gate, students.ListStudents)

	// 🔓 public
	r.Get("/public/students", students.ListStudents)
}
