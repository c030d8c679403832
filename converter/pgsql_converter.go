package converter

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Spyro1/semester-planner/model"
)

// PGSQLConverter exports the catalog into PostgreSQL, wiping the
// previous export first. The DSN comes from the out argument, falling
// back to the PLANNER_PGSQL_DSN environment variable.
type PGSQLConverter struct{}

const DropSlots = "DELETE FROM slots;"
const DropCourses = "DELETE FROM courses;"
const DropSubjects = "DELETE FROM subjects;"
const ResetSubjects = "ALTER SEQUENCE subjects_id_seq RESTART;"
const ResetCourses = "ALTER SEQUENCE courses_id_seq RESTART;"
const InsertSubjectQuery = "INSERT INTO subjects (code, name, credits) VALUES ($1, $2, $3) RETURNING id"
const InsertCourseQuery = "INSERT INTO courses (subject_id, code) VALUES ($1, $2) RETURNING id"
const InsertSlotQuery = "INSERT INTO slots (course_id, day, start_min, end_min) VALUES ($1, $2, $3, $4)"

func (p PGSQLConverter) Write(semester model.Semester, out string) error {
	if out == "" {
		out = os.Getenv("PLANNER_PGSQL_DSN")
	}
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}

	conn, err := sqlx.Connect("postgres", out)
	if err != nil {
		return err
	}
	defer conn.Close()

	conn.MustExec(DropSlots)
	conn.MustExec(DropCourses)
	conn.MustExec(DropSubjects)
	conn.MustExec(ResetSubjects)
	conn.MustExec(ResetCourses)

	insertSubject, err := conn.Preparex(InsertSubjectQuery)
	if err != nil {
		return err
	}

	insertCourse, err := conn.Preparex(InsertCourseQuery)
	if err != nil {
		return err
	}

	insertSlot, err := conn.Preparex(InsertSlotQuery)
	if err != nil {
		return err
	}

	for _, subject := range semester {
		var subjectId uint
		scan := insertSubject.QueryRowx(subject.Code, subject.Name, subject.Credits)
		if err = scan.Scan(&subjectId); err != nil {
			continue
		}

		for _, course := range subject.Courses {
			var courseId uint
			scan := insertCourse.QueryRowx(subjectId, course.Code)
			if err = scan.Scan(&courseId); err != nil {
				continue
			}

			for _, slot := range course.Slots {
				insertSlot.MustExec(courseId, slot.Day, slot.StartMin, slot.EndMin)
			}
		}
	}

	return nil
}
