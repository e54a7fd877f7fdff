// Package state implements the mutable session state of the app: the active
// user and the per-user-per-course progress records. Catalog data is read
// through the catalog.Store and is never modified here.
package state

import (
	"math"
	"sort"
	"sync"
	"time"

	"agroskills/backend/catalog"
	"agroskills/backend/models"
)

// Manager is the single owner of mutable state. Fiber handles requests on
// multiple goroutines, so every operation takes the one mutex.
type Manager struct {
	mu          sync.RWMutex
	catalog     *catalog.Store
	currentUser *models.User
	progress    []models.UserProgress

	now func() time.Time
}

func NewManager(cat *catalog.Store, progress []models.UserProgress) *Manager {
	return &Manager{
		catalog:  cat,
		progress: progress,
		now:      time.Now,
	}
}

func (m *Manager) timestamp() string {
	return m.now().UTC().Format(time.RFC3339)
}

// Catalog exposes the read-only reference data.
func (m *Manager) Catalog() *catalog.Store {
	return m.catalog
}

// SetCurrentUser replaces the active user wholesale. Passing nil clears the
// session; progress records are kept either way, keyed by user id.
func (m *Manager) SetCurrentUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentUser = user
}

func (m *Manager) Logout() {
	m.SetCurrentUser(nil)
}

func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentUser
}

// StartCourse creates the progress record for the active user's first
// engagement with a course. It is idempotent: an existing record is returned
// untouched. Returns false when no user is active or the course is unknown.
func (m *Manager) StartCourse(courseID string) (models.UserProgress, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil || m.catalog.CourseByID(courseID) == nil {
		return models.UserProgress{}, false
	}

	if p := m.findLocked(m.currentUser.ID, courseID); p != nil {
		return *p, true
	}

	ts := m.timestamp()
	record := models.UserProgress{
		UserID:           m.currentUser.ID,
		CourseID:         courseID,
		Progress:         0,
		CompletedModules: []string{},
		StartedAt:        ts,
		LastAccessedAt:   ts,
	}
	m.progress = append(m.progress, record)
	return record, true
}

// UpdateUserProgress overwrites the progress percentage on the record for
// (current user, courseID) and bumps its last-accessed time. It never touches
// the completed-module set or the completion time. Returns false without
// changing anything when no matching record exists.
func (m *Manager) UpdateUserProgress(courseID string, progress int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return false
	}
	p := m.findLocked(m.currentUser.ID, courseID)
	if p == nil {
		return false
	}
	p.Progress = progress
	p.LastAccessedAt = m.timestamp()
	return true
}

// MarkModuleComplete adds the module to the record's completed set (a second
// call with the same module is a no-op) and recomputes the percentage from
// the catalog's module count. CompletedAt is set when the recomputed progress
// reaches 100 and is never cleared afterwards. Returns false when the user
// has no record for the course.
func (m *Manager) MarkModuleComplete(courseID, moduleID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return false
	}
	p := m.findLocked(m.currentUser.ID, courseID)
	if p == nil {
		return false
	}

	present := false
	for _, id := range p.CompletedModules {
		if id == moduleID {
			present = true
			break
		}
	}
	if !present {
		p.CompletedModules = append(p.CompletedModules, moduleID)
	}

	// An unknown course leaves the percentage as-is.
	if course := m.catalog.CourseByID(courseID); course != nil && len(course.Modules) > 0 {
		p.Progress = int(math.Round(float64(len(p.CompletedModules)) / float64(len(course.Modules)) * 100))
	}

	p.LastAccessedAt = m.timestamp()
	if p.Progress == 100 {
		p.CompletedAt = m.timestamp()
	}
	return true
}

// CourseProgress returns the active user's record for the course, or false
// when there is none.
func (m *Manager) CourseProgress(courseID string) (models.UserProgress, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.currentUser == nil {
		return models.UserProgress{}, false
	}
	if p := m.findLocked(m.currentUser.ID, courseID); p != nil {
		return *p, true
	}
	return models.UserProgress{}, false
}

// OverallProgress averages the progress percentages of every record the user
// has, rounded to the nearest integer. A user with no records is at 0.
func (m *Manager) OverallProgress(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total, count := 0, 0
	for i := range m.progress {
		if m.progress[i].UserID == userID {
			total += m.progress[i].Progress
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// InProgressCourses resolves the courses the active user has strictly
// between 0 and 100 percent: untouched and finished courses are excluded.
func (m *Manager) InProgressCourses() []models.Course {
	return m.coursesWhere(func(p *models.UserProgress) bool {
		return p.Progress > 0 && p.Progress < 100
	})
}

// CompletedCourses resolves the courses the active user finished.
func (m *Manager) CompletedCourses() []models.Course {
	return m.coursesWhere(func(p *models.UserProgress) bool {
		return p.Progress == 100
	})
}

func (m *Manager) coursesWhere(keep func(*models.UserProgress) bool) []models.Course {
	m.mu.RLock()
	defer m.mu.RUnlock()

	courses := []models.Course{}
	if m.currentUser == nil {
		return courses
	}
	for i := range m.progress {
		p := &m.progress[i]
		if p.UserID != m.currentUser.ID || !keep(p) {
			continue
		}
		if course := m.catalog.CourseByID(p.CourseID); course != nil {
			courses = append(courses, *course)
		}
	}
	return courses
}

// RecommendedCourses resolves the recommendation list to courses, lowest
// priority value first. Recommendations pointing at unknown courses are
// dropped. Not scoped to any user.
func (m *Manager) RecommendedCourses() []models.Course {
	recs := make([]models.Recommendation, len(m.catalog.Recommendations))
	copy(recs, m.catalog.Recommendations)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})

	courses := []models.Course{}
	for _, rec := range recs {
		if course := m.catalog.CourseByID(rec.CourseID); course != nil {
			courses = append(courses, *course)
		}
	}
	return courses
}

// UserProgressList returns a copy of the active user's progress records.
func (m *Manager) UserProgressList() []models.UserProgress {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := []models.UserProgress{}
	if m.currentUser == nil {
		return records
	}
	for i := range m.progress {
		if m.progress[i].UserID == m.currentUser.ID {
			records = append(records, m.progress[i])
		}
	}
	return records
}

// ProgressCount reports the total number of records across all users.
func (m *Manager) ProgressCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.progress)
}

// Overview aggregates the active user's numbers for the dashboard.
func (m *Manager) Overview() models.ProgressOverview {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user := m.currentUser
	if user == nil {
		return models.ProgressOverview{}
	}

	overview := models.ProgressOverview{}
	total, count := 0, 0
	for i := range m.progress {
		p := &m.progress[i]
		if p.UserID != user.ID {
			continue
		}
		total += p.Progress
		count++
		overview.CoursesStarted++
		switch {
		case p.Progress == 100:
			overview.CoursesCompleted++
		case p.Progress > 0:
			overview.CoursesInProgress++
		}
	}
	if count > 0 {
		overview.OverallProgress = int(math.Round(float64(total) / float64(count)))
	}
	return overview
}

// Snapshot assembles the full application state as the screens consume it.
func (m *Manager) Snapshot() models.AppState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	progress := make([]models.UserProgress, len(m.progress))
	copy(progress, m.progress)

	return models.AppState{
		CurrentUser:     m.currentUser,
		Courses:         m.catalog.Courses,
		UserProgress:    progress,
		Categories:      m.catalog.Categories,
		Recommendations: m.catalog.Recommendations,
	}
}

// findLocked returns a pointer into the progress slice; callers hold the
// mutex.
func (m *Manager) findLocked(userID, courseID string) *models.UserProgress {
	for i := range m.progress {
		if m.progress[i].UserID == userID && m.progress[i].CourseID == courseID {
			return &m.progress[i]
		}
	}
	return nil
}
