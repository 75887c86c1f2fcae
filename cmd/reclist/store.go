package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/recordkit/reclist/catalog"
	"github.com/recordkit/reclist/dt"
	"github.com/recordkit/reclist/dt/cmp"
	"github.com/recordkit/reclist/erc"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
	"github.com/recordkit/reclist/records"
)

// kind describes how the command line reads and shows one record type.
type kind[T records.Record] struct {
	name    string
	codec   recfile.Codec[T]
	orders  map[string]cmp.Comparator[T]
	columns []string
	row     func(T) []string
	parse   func(fields) (T, error)
}

// store is the record-type independent view of an open record file.
type store interface {
	Len() int
	Topology() dt.Topology
	Columns() []string
	Rows(reverse bool) [][]string
	Get(index int) (string, bool)
	Add(f fields) (uuid.UUID, error)
	Remove(id uuid.UUID) bool
	Sort(order string, descending bool) error
	Orders() []string
	Check() error
	Save() (int, error)
	Export(path string, format recfile.Format) (int, error)
}

type recordStore[T records.Record] struct {
	kind    kind[T]
	catalog *catalog.Catalog[T]
	list    *dt.List[T]
	path    string
}

func openStore(a *app) (store, error) {
	switch a.kind {
	case "employee", "employees":
		return open(a, employeeKind)
	case "student", "students":
		return open(a, studentKind)
	case "course", "courses":
		return open(a, courseKind)
	default:
		return nil, fmt.Errorf("record kind %q: %w", a.kind, ers.ErrInvalidInput)
	}
}

func open[T records.Record](a *app, k kind[T]) (store, error) {
	cat := catalog.New(a.conf.Topology, k.codec,
		catalog.WithLogger(a.logger),
		catalog.WithFormat(a.conf.SaveFormat),
		catalog.WithCapacity(a.conf.MaxRecords),
	)

	path := a.path()
	list, err := cat.Open(k.name, path)
	if err != nil {
		return nil, err
	}

	return &recordStore[T]{kind: k, catalog: cat, list: list, path: path}, nil
}

func (s *recordStore[T]) Len() int              { return s.list.Len() }
func (s *recordStore[T]) Topology() dt.Topology { return s.list.Topology() }
func (s *recordStore[T]) Columns() []string     { return s.kind.columns }
func (s *recordStore[T]) Check() error          { return s.list.Check() }
func (s *recordStore[T]) Save() (int, error)    { return s.catalog.Save(s.kind.name, s.path) }

func (s *recordStore[T]) Orders() []string {
	out := make([]string, 0, len(s.kind.orders))
	for name := range s.kind.orders {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func (s *recordStore[T]) Rows(reverse bool) [][]string {
	seq := s.list.Seq()
	if reverse {
		seq = s.list.Reverse()
	}

	var out [][]string
	for item := range seq {
		out = append(out, s.kind.row(item))
	}
	return out
}

func (s *recordStore[T]) Get(index int) (string, bool) {
	item, ok := s.list.Get(index)
	if !ok {
		return "", false
	}
	return fmt.Sprint(item), true
}

func (s *recordStore[T]) Add(f fields) (uuid.UUID, error) {
	item, err := s.kind.parse(f)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := s.list.Add(item); err != nil {
		return uuid.Nil, err
	}
	return item.RecordID(), nil
}

func (s *recordStore[T]) Remove(id uuid.UUID) bool {
	return s.list.RemoveFunc(records.HasID[T](id))
}

func (s *recordStore[T]) Sort(order string, descending bool) error {
	fn, ok := s.kind.orders[order]
	if !ok {
		return fmt.Errorf("sort order %q for %s (one of %s): %w", order, s.kind.name, strings.Join(s.Orders(), ", "), ers.ErrInvalidInput)
	}
	s.list.Sort(fn, descending)
	return nil
}

func (s *recordStore[T]) Export(path string, format recfile.Format) (int, error) {
	return recfile.Save(path, s.list, s.kind.codec, format)
}

// fields are the key=value arguments of the add command.
type fields struct {
	values map[string]string
	errs   *erc.Collector
}

func parseFields(args []string) (fields, error) {
	out := fields{values: map[string]string{}, errs: &erc.Collector{}}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return out, fmt.Errorf("argument %q is not key=value: %w", arg, ers.ErrInvalidInput)
		}
		out.values[strings.ToLower(key)] = value
	}
	return out, nil
}

func (f fields) text(key string) string {
	v, ok := f.values[key]
	f.errs.When(!ok, fmt.Errorf("missing %s", key))
	return v
}

func (f fields) number(key string, bits int) float64 {
	raw, ok := f.values[key]
	if !ok {
		f.errs.Add(fmt.Errorf("missing %s", key))
		return 0
	}

	v, err := strconv.ParseFloat(raw, bits)
	f.errs.When(err != nil, fmt.Errorf("%s: %w", key, err))
	return v
}

func (f fields) integer(key string) int32 {
	raw, ok := f.values[key]
	if !ok {
		f.errs.Add(fmt.Errorf("missing %s", key))
		return 0
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	f.errs.When(err != nil, fmt.Errorf("%s: %w", key, err))
	return int32(v)
}

func (f fields) err() error {
	if err := f.errs.Resolve(); err != nil {
		return fmt.Errorf("%w: %w", ers.ErrInvalidInput, err)
	}
	return nil
}

var employeeKind = kind[records.Employee]{
	name:    "employee",
	codec:   records.EmployeeCodec,
	orders:  records.EmployeeOrders,
	columns: []string{"ID", "NAME", "DEPARTMENT", "SALARY", "HOURS"},
	row: func(e records.Employee) []string {
		return []string{e.ID.String(), e.FullName(), e.DepartmentName(), strconv.FormatFloat(e.Salary, 'f', 2, 64), strconv.FormatFloat(float64(e.HoursWorked), 'f', 1, 32)}
	},
	parse: func(f fields) (records.Employee, error) {
		name, dept := f.text("name"), f.text("department")
		salary, hours := f.number("salary", 64), f.number("hours", 32)
		if err := f.err(); err != nil {
			return records.Employee{}, err
		}
		return records.NewEmployee(name, dept, salary, float32(hours))
	},
}

var studentKind = kind[records.Student]{
	name:    "student",
	codec:   records.StudentCodec,
	orders:  records.StudentOrders,
	columns: []string{"ID", "NAME", "PROGRAM", "GPA", "CREDITS"},
	row: func(s records.Student) []string {
		return []string{s.ID.String(), s.FullName(), s.ProgramName(), strconv.FormatFloat(float64(s.GPA), 'f', 2, 32), strconv.Itoa(int(s.Credits))}
	},
	parse: func(f fields) (records.Student, error) {
		name, program := f.text("name"), f.text("program")
		gpa, credits := f.number("gpa", 32), f.integer("credits")
		if err := f.err(); err != nil {
			return records.Student{}, err
		}
		return records.NewStudent(name, program, float32(gpa), credits)
	},
}

var courseKind = kind[records.Course]{
	name:    "course",
	codec:   records.CourseCodec,
	orders:  records.CourseOrders,
	columns: []string{"ID", "CODE", "TITLE", "CREDITS", "CAPACITY"},
	row: func(c records.Course) []string {
		return []string{c.ID.String(), c.CodeText(), c.TitleText(), strconv.Itoa(int(c.Credits)), strconv.Itoa(int(c.Capacity))}
	},
	parse: func(f fields) (records.Course, error) {
		code, title := f.text("code"), f.text("title")
		credits, capacity := f.integer("credits"), f.integer("capacity")
		if err := f.err(); err != nil {
			return records.Course{}, err
		}
		return records.NewCourse(code, title, credits, capacity)
	},
}
