package models

// UserProgress is the only mutable entity. One record per (UserID, CourseID)
// pair; mutations search-and-replace rather than append.
type UserProgress struct {
	UserID           string   `json:"userId"`
	CourseID         string   `json:"courseId"`
	Progress         int      `json:"progress"` // 0-100
	CompletedModules []string `json:"completedModules"`
	StartedAt        string   `json:"startedAt"`
	LastAccessedAt   string   `json:"lastAccessedAt"`
	CompletedAt      string   `json:"completedAt,omitempty"`
}

type Recommendation struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Reason   string `json:"reason"`
	Priority int    `json:"priority"` // lower value is shown first
}

// ProgressOverview summarizes a user's standing across the catalog.
type ProgressOverview struct {
	OverallProgress   int `json:"overallProgress"`
	CoursesStarted    int `json:"coursesStarted"`
	CoursesInProgress int `json:"coursesInProgress"`
	CoursesCompleted  int `json:"coursesCompleted"`
}

// AppState is the cohesive snapshot exposed to the screens.
type AppState struct {
	CurrentUser     *User            `json:"currentUser"`
	Courses         []Course         `json:"courses"`
	UserProgress    []UserProgress   `json:"userProgress"`
	Categories      []Category       `json:"categories"`
	Recommendations []Recommendation `json:"recommendations"`
}
