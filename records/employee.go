package records

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/recordkit/reclist/dt/cmp"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
)

// Employee is a payroll record.
type Employee struct {
	ID          uuid.UUID
	Name        [32]byte
	Department  [16]byte
	Salary      float64
	HoursWorked float32
}

// EmployeeCodec persists employees as 76-byte records.
var EmployeeCodec = recfile.MustBinaryCodec[Employee]()

// EmployeeOrders are the named sort orders for employees. Ties are
// broken by name, always ascending.
var EmployeeOrders = map[string]cmp.Comparator[Employee]{
	"name":   employeeByName,
	"salary": cmp.Then(cmp.Key(func(e Employee) float64 { return e.Salary }), cmp.Fixed(employeeByName, false)),
	"hours":  cmp.Then(cmp.Key(func(e Employee) float32 { return e.HoursWorked }), cmp.Fixed(employeeByName, false)),
}

var employeeByName = cmp.Key(Employee.FullName)

// NewEmployee builds an employee with a fresh identifier.
func NewEmployee(name, department string, salary float64, hours float32) (Employee, error) {
	out := Employee{ID: uuid.New(), Salary: salary, HoursWorked: hours}
	if err := setText("name", out.Name[:], name); err != nil {
		return Employee{}, err
	}
	if err := setText("department", out.Department[:], department); err != nil {
		return Employee{}, err
	}
	if salary < 0 || hours < 0 {
		return Employee{}, fmt.Errorf("salary %.2f and hours %.2f must not be negative: %w", salary, hours, ers.ErrInvalidInput)
	}
	return out, nil
}

func (e Employee) RecordID() uuid.UUID    { return e.ID }
func (e Employee) FullName() string       { return text(e.Name[:]) }
func (e Employee) DepartmentName() string { return text(e.Department[:]) }

func (e Employee) String() string {
	return fmt.Sprintf("%s %s (%s) %.2f/%.1fh", e.ID, e.FullName(), e.DepartmentName(), e.Salary, e.HoursWorked)
}
