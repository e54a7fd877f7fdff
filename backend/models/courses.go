package models

// Course difficulty levels.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Level         string   `json:"level"` // Beginner, Intermediate, Advanced
	Duration      string   `json:"duration"`
	StudentsCount int      `json:"studentsCount"`
	Rating        float64  `json:"rating"` // 0-5
	ReviewsCount  int      `json:"reviewsCount"`
	Thumbnail     string   `json:"thumbnail"`
	Instructor    string   `json:"instructor"`
	Price         float64  `json:"price,omitempty"`
	Tags          []string `json:"tags"`
	Modules       []Module `json:"modules"`
}

type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	VideoURL    string `json:"videoUrl,omitempty"`
	// Completed is static seed metadata; per-user completion lives in
	// UserProgress.CompletedModules.
	Completed bool `json:"completed"`
	Order     int  `json:"order"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
