package records

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/recordkit/reclist/dt/cmp"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
)

// MaxGPA is the top of the grade point scale.
const MaxGPA = 4.0

// Student is an academic record.
type Student struct {
	ID      uuid.UUID
	Name    [32]byte
	Program [16]byte
	GPA     float32
	Credits int32
}

// StudentCodec persists students as 72-byte records.
var StudentCodec = recfile.MustBinaryCodec[Student]()

// StudentOrders are the named sort orders for students.
var StudentOrders = map[string]cmp.Comparator[Student]{
	"name":    studentByName,
	"gpa":     cmp.Then(cmp.Key(func(s Student) float32 { return s.GPA }), cmp.Fixed(studentByName, false)),
	"credits": cmp.Then(cmp.Key(func(s Student) int32 { return s.Credits }), cmp.Fixed(studentByName, false)),
}

var studentByName = cmp.Key(Student.FullName)

// NewStudent builds a student with a fresh identifier.
func NewStudent(name, program string, gpa float32, credits int32) (Student, error) {
	out := Student{ID: uuid.New(), GPA: gpa, Credits: credits}
	if err := setText("name", out.Name[:], name); err != nil {
		return Student{}, err
	}
	if err := setText("program", out.Program[:], program); err != nil {
		return Student{}, err
	}
	if gpa < 0 || gpa > MaxGPA {
		return Student{}, fmt.Errorf("gpa %.2f outside [0, %.1f]: %w", gpa, MaxGPA, ers.ErrInvalidInput)
	}
	if credits < 0 {
		return Student{}, fmt.Errorf("credits %d: %w", credits, ers.ErrInvalidInput)
	}
	return out, nil
}

func (s Student) RecordID() uuid.UUID { return s.ID }
func (s Student) FullName() string    { return text(s.Name[:]) }
func (s Student) ProgramName() string { return text(s.Program[:]) }

func (s Student) String() string {
	return fmt.Sprintf("%s %s (%s) gpa=%.2f credits=%d", s.ID, s.FullName(), s.ProgramName(), s.GPA, s.Credits)
}
