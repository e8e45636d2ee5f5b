package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type (
	// Course is an owned resource. OwnerID is set at creation time and
	// is never reassigned through updates.
	Course struct {
		ID              int64  `json:"id"`
		OwnerID         int64  `json:"userId"`
		Title           string `json:"title"`
		Description     string `json:"description"`
		EstimatedTime   string `json:"estimatedTime,omitempty"`
		MaterialsNeeded string `json:"materialsNeeded,omitempty"`
	}

	// CourseDetail is a course joined with its owning user.
	CourseDetail struct {
		Course
		Owner User `json:"user"`
	}

	// CoursePatch carries a partial update. Empty fields are treated
	// as absent and keep whatever value the course already has.
	CoursePatch struct {
		Title           string
		Description     string
		EstimatedTime   string
		MaterialsNeeded string
	}
)

const courseWithOwnerQuery = `select c.course_id, c.user_id, c.title, c.description, c.estimated_time, c.materials_needed,
	u.user_id, u.first_name, u.last_name, u.email
	from courses c
	inner join users u on u.user_id = c.user_id`

func scanCourseDetail(row interface{ Scan(...interface{}) error }) (CourseDetail, error) {
	var d CourseDetail
	var estimated, materials sql.NullString
	err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &d.Description, &estimated, &materials,
		&d.Owner.ID, &d.Owner.FirstName, &d.Owner.LastName, &d.Owner.Email)
	if err != nil {
		return CourseDetail{}, err
	}
	d.EstimatedTime = estimated.String
	d.MaterialsNeeded = materials.String
	return d, nil
}

func (c *Control) ListCourses(ctx context.Context) ([]CourseDetail, error) {
	rows, err := c.db.QueryContext(ctx, courseWithOwnerQuery+` order by c.course_id asc`)
	if err != nil {
		return nil, fmt.Errorf("unable to list courses, cause %w", err)
	}
	defer rows.Close()
	var out []CourseDetail
	for rows.Next() {
		d, err := scanCourseDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("unable to scan course, cause %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (c *Control) FindCourse(ctx context.Context, id int64) (CourseDetail, error) {
	row := c.db.QueryRowContext(ctx, courseWithOwnerQuery+` where c.course_id = ?`, id)
	d, err := scanCourseDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CourseDetail{}, CourseNotFound{ID: id}
	} else if err != nil {
		return CourseDetail{}, fmt.Errorf("unable to load course %v from catalog, cause %w", id, err)
	}
	return d, nil
}

// CreateCourse stores a new course owned by ownerID and returns it with
// its assigned id. The optional fields are stored as null when empty.
func (c *Control) CreateCourse(ctx context.Context, ownerID int64, course Course) (Course, error) {
	if !c.writeable {
		return Course{}, ReadOnlyCatalog{}
	}
	course.OwnerID = ownerID
	err := c.db.QueryRowContext(ctx,
		`insert into courses (user_id, title, description, estimated_time, materials_needed) values (?, ?, ?, ?, ?) returning course_id`,
		ownerID, course.Title, course.Description,
		nullable(course.EstimatedTime), nullable(course.MaterialsNeeded)).Scan(&course.ID)
	if err != nil {
		return Course{}, fmt.Errorf("unable to store course in catalog, cause %w", err)
	}
	return course, nil
}

// UpdateCourse applies the non-empty fields of patch over the stored
// course. Fields absent from the patch keep their prior value. The
// owner cannot be changed here.
func (c *Control) UpdateCourse(ctx context.Context, id int64, patch CoursePatch) error {
	if !c.writeable {
		return ReadOnlyCatalog{}
	}
	current, err := c.FindCourse(ctx, id)
	if err != nil {
		return err
	}
	merged := current.Course
	if patch.Title != "" {
		merged.Title = patch.Title
	}
	if patch.Description != "" {
		merged.Description = patch.Description
	}
	if patch.EstimatedTime != "" {
		merged.EstimatedTime = patch.EstimatedTime
	}
	if patch.MaterialsNeeded != "" {
		merged.MaterialsNeeded = patch.MaterialsNeeded
	}
	_, err = c.db.ExecContext(ctx,
		`update courses set title = ?, description = ?, estimated_time = ?, materials_needed = ? where course_id = ?`,
		merged.Title, merged.Description,
		nullable(merged.EstimatedTime), nullable(merged.MaterialsNeeded), id)
	if err != nil {
		return fmt.Errorf("unable to update course %v, cause %w", id, err)
	}
	return nil
}

func (c *Control) DeleteCourse(ctx context.Context, id int64) error {
	if !c.writeable {
		return ReadOnlyCatalog{}
	}
	res, err := c.db.ExecContext(ctx, `delete from courses where course_id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete course %v, cause %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to delete course %v, cause %w", id, err)
	}
	if affected == 0 {
		return CourseNotFound{ID: id}
	}
	return nil
}

func nullable(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
