package records

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/recordkit/reclist/dt/cmp"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
)

// Course is a catalog entry.
type Course struct {
	ID       uuid.UUID
	Code     [8]byte
	Title    [32]byte
	Credits  int32
	Capacity int32
}

// CourseCodec persists courses as 64-byte records.
var CourseCodec = recfile.MustBinaryCodec[Course]()

// CourseOrders are the named sort orders for courses.
var CourseOrders = map[string]cmp.Comparator[Course]{
	"code":     courseByCode,
	"title":    cmp.Then(cmp.Key(Course.TitleText), cmp.Fixed(courseByCode, false)),
	"credits":  cmp.Then(cmp.Key(func(c Course) int32 { return c.Credits }), cmp.Fixed(courseByCode, false)),
	"capacity": cmp.Then(cmp.Key(func(c Course) int32 { return c.Capacity }), cmp.Fixed(courseByCode, false)),
}

var courseByCode = cmp.Key(Course.CodeText)

// NewCourse builds a course with a fresh identifier. Codes are stored
// upper case.
func NewCourse(code, title string, credits, capacity int32) (Course, error) {
	out := Course{ID: uuid.New(), Credits: credits, Capacity: capacity}
	if err := setText("code", out.Code[:], strings.ToUpper(code)); err != nil {
		return Course{}, err
	}
	if err := setText("title", out.Title[:], title); err != nil {
		return Course{}, err
	}
	if credits < 0 || capacity < 0 {
		return Course{}, fmt.Errorf("credits %d and capacity %d must not be negative: %w", credits, capacity, ers.ErrInvalidInput)
	}
	return out, nil
}

func (c Course) RecordID() uuid.UUID { return c.ID }
func (c Course) CodeText() string    { return text(c.Code[:]) }
func (c Course) TitleText() string   { return text(c.Title[:]) }

func (c Course) String() string {
	return fmt.Sprintf("%s %s %q credits=%d capacity=%d", c.ID, c.CodeText(), c.TitleText(), c.Credits, c.Capacity)
}
