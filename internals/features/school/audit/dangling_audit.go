package audit

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"

	"schooladmin_backend/internals/features/school/repository"
)

const runTimeout = 2 * time.Minute

var danglingGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "schooladmin_dangling_references",
	Help: "References that resolved to nothing at the last audit run.",
}, []string{"kind"})

// Auditor is satisfied by *repository.EntityRepository.
type Auditor interface {
	DanglingReferences(ctx context.Context) (repository.DanglingReport, error)
}

// RunOnce counts dangling references, logs them and exports the counts.
// It only reads; nothing is repaired.
func RunOnce(ctx context.Context, a Auditor) (repository.DanglingReport, error) {
	rep, err := a.DanglingReferences(ctx)
	if err != nil {
		return rep, err
	}
	danglingGauge.WithLabelValues("class_teacher").Set(float64(rep.ClassesNoTeacher))
	danglingGauge.WithLabelValues("student_class").Set(float64(rep.StudentsNoClass))

	log.Printf("[AUDIT] teachers=%d classes=%d without_teacher=%d students=%d without_class=%d",
		rep.Teachers, rep.Classes, rep.ClassesNoTeacher, rep.Students, rep.StudentsNoClass)
	for _, id := range rep.DanglingClassIDs {
		log.Printf("[AUDIT] class %s points at a missing teacher", id)
	}
	for _, id := range rep.DanglingStudentIDs {
		log.Printf("[AUDIT] student %s points at a missing class", id)
	}
	return rep, nil
}

// ── ENTRYPOINT: panggil dari main.go
// StartDanglingAuditCron returns (nil, nil) when schedule is empty.
func StartDanglingAuditCron(schedule string, a Auditor) (*cron.Cron, error) {
	if schedule == "" {
		log.Println("[AUDIT] disabled (AUDIT_CRON empty)")
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := RunOnce(ctx, a); err != nil {
			log.Printf("[AUDIT] error: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[AUDIT] started schedule=%q", schedule)
	c.Start()
	return c, nil
}
