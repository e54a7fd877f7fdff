// Package catalog holds the static reference data of the platform: users,
// courses with their modules, categories and recommendations. The store is
// built once at startup and is read-only afterwards.
package catalog

import "agroskills/backend/models"

type Store struct {
	Users           []models.User
	Courses         []models.Course
	Categories      []models.Category
	Recommendations []models.Recommendation
}

// CourseByID returns the course with the given id, or nil if the catalog has
// no such course. Dangling references are the caller's problem to filter.
func (s *Store) CourseByID(id string) *models.Course {
	for i := range s.Courses {
		if s.Courses[i].ID == id {
			return &s.Courses[i]
		}
	}
	return nil
}

func (s *Store) UserByID(id string) *models.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *Store) UserByEmail(email string) *models.User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}
