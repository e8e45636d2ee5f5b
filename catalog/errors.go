package catalog

import "fmt"

type (
	UserNotFound struct {
		Email string
	}

	CourseNotFound struct {
		ID int64
	}

	ReadOnlyCatalog struct{}
)

func (u UserNotFound) Error() string {
	return fmt.Sprintf("user %v not found", u.Email)
}

func (c CourseNotFound) Error() string {
	return fmt.Sprintf("course %v not found", c.ID)
}

func (ReadOnlyCatalog) Error() string {
	return "catalog is open for reading only"
}
