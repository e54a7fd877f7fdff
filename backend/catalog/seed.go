package catalog

import "agroskills/backend/models"

// NewStore builds the demo catalog. The data mirrors the AgroSkills showcase
// dataset: a couple of profiles, the course library with its modules, the
// category chips and the dashboard recommendations.
func NewStore() *Store {
	return &Store{
		Users:           seedUsers(),
		Courses:         seedCourses(),
		Categories:      seedCategories(),
		Recommendations: seedRecommendations(),
	}
}

// SeedProgress returns the demo progress records for the default user. They
// exercise every state a record can be in: partially watched, completed and
// freshly started.
func SeedProgress() []models.UserProgress {
	return []models.UserProgress{
		{
			UserID:           "1",
			CourseID:         "1",
			Progress:         65,
			CompletedModules: []string{"1", "2"},
			StartedAt:        "2024-05-01",
			LastAccessedAt:   "2024-06-20",
		},
		{
			UserID:           "1",
			CourseID:         "2",
			Progress:         100,
			CompletedModules: []string{"1", "2"},
			StartedAt:        "2024-04-15",
			LastAccessedAt:   "2024-05-10",
			CompletedAt:      "2024-05-10",
		},
		{
			UserID:           "1",
			CourseID:         "3",
			Progress:         30,
			CompletedModules: []string{},
			StartedAt:        "2024-06-15",
			LastAccessedAt:   "2024-06-18",
		},
	}
}

func seedCompetencies() []models.Competency {
	return []models.Competency{
		{ID: "1", Name: "Precision Irrigation", Level: 85, Category: "Technology"},
		{ID: "2", Name: "Crop Management", Level: 92, Category: "Agribusiness"},
		{ID: "3", Name: "Soil Analysis", Level: 78, Category: "Science"},
		{ID: "4", Name: "Sustainability", Level: 88, Category: "Environment"},
		{ID: "5", Name: "Agricultural Innovation", Level: 75, Category: "Technology"},
	}
}

func seedAchievements() []models.Achievement {
	return []models.Achievement{
		{
			ID:          "1",
			Title:       "Irrigation Specialist",
			Description: "Completed 5 advanced irrigation courses",
			Icon:        "💧",
			UnlockedAt:  "2024-05-15",
		},
		{
			ID:          "2",
			Title:       "Community Mentor",
			Description: "Helped more than 50 professionals",
			Icon:        "🏆",
			UnlockedAt:  "2024-04-20",
		},
		{
			ID:          "3",
			Title:       "Innovator of the Year",
			Description: "Implemented emerging technologies",
			Icon:        "🚀",
			UnlockedAt:  "2024-03-10",
		},
	}
}

func seedUsers() []models.User {
	competencies := seedCompetencies()
	achievements := seedAchievements()

	return []models.User{
		{
			ID:             "1",
			Name:           "Carlos Mendes",
			Email:          "carlos.mendes@agroskills.com",
			Avatar:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Profession:     "Agronomic Engineer",
			Specialization: "Irrigation Specialist",
			Experience:     "Professional with 5 years of experience in precision irrigation systems and water management for high-value crops.",
			JoinDate:       "2023-01-15",
			Competencies:   competencies,
			Achievements:   achievements,
		},
		{
			ID:             "2",
			Name:           "Ana Silva",
			Email:          "ana.silva@agroskills.com",
			Avatar:         "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			Profession:     "Animal Scientist",
			Specialization: "Animal Nutrition",
			Experience:     "Specialist in nutrition and handling of beef and dairy cattle.",
			JoinDate:       "2023-03-20",
			Competencies:   competencies[:3],
			Achievements:   achievements[:2],
		},
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "All", Icon: "📚", Color: "#4CAF50"},
		{ID: "2", Name: "Career", Icon: "💼", Color: "#2196F3"},
		{ID: "3", Name: "Knowledge", Icon: "🧠", Color: "#FF9800"},
		{ID: "4", Name: "Technology", Icon: "🚀", Color: "#9C27B0"},
	}
}

func techModules() []models.Module {
	return []models.Module{
		{
			ID:          "1",
			Title:       "Introduction to Emerging Technologies",
			Description: "Overview of the main technologies in agribusiness",
			Duration:    "45min",
			Completed:   true,
			Order:       1,
		},
		{
			ID:          "2",
			Title:       "IoT in Agriculture",
			Description: "Internet of Things applied to the field",
			Duration:    "1h 20min",
			Completed:   true,
			Order:       2,
		},
		{
			ID:          "3",
			Title:       "Artificial Intelligence in Agro",
			Description: "AI for crop optimization",
			Duration:    "1h 15min",
			Completed:   false,
			Order:       3,
		},
	}
}

func seedCourses() []models.Course {
	modules := techModules()

	// Course 5 repeats the module set with suffixed ids and shifted order.
	extended := techModules()
	for i := range extended {
		extended[i].ID += "_2"
		extended[i].Order += 3
	}

	return []models.Course{
		{
			ID:            "0",
			Title:         "Successful Career in Agribusiness",
			Description:   "The complete program for sales people, executives and lawyers who want to build a solid, profitable career in the agribusiness sector. Learn the strategies, networking and core competencies to stand out in this trillion-dollar market.",
			Instructor:    "Dr. Roberto Silva",
			Duration:      "8h 30min",
			Level:         models.LevelIntermediate,
			Rating:        4.9,
			StudentsCount: 2847,
			Category:      "Career",
			Tags:          []string{"career", "agribusiness", "leadership", "sales", "networking"},
			Thumbnail:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=450&fit=crop",
			Modules: []models.Module{
				{ID: "0-1", Title: "The Brazilian Agribusiness Landscape", Description: "Understand the market, the opportunities and the main players", Duration: "1h 15min", Order: 1},
				{ID: "0-2", Title: "Competencies of a Successful Professional", Description: "Essential technical and behavioral skills", Duration: "1h 30min", Order: 2},
				{ID: "0-3", Title: "Networking Strategies in Agro", Description: "How to build relationships that create opportunities", Duration: "1h 20min", Order: 3},
				{ID: "0-4", Title: "Consultative Selling in Agribusiness", Description: "Advanced techniques for sales people in the sector", Duration: "2h 10min", Order: 4},
				{ID: "0-5", Title: "Leadership and Team Management", Description: "For executives and managers in agribusiness", Duration: "1h 45min", Order: 5},
				{ID: "0-6", Title: "Legal Aspects and Compliance", Description: "Essential knowledge for lawyers in the sector", Duration: "30min", Order: 6},
			},
		},
		{
			ID:            "1",
			Title:         "Emerging Technologies in Agro",
			Description:   "Master the technologies transforming agribusiness",
			Category:      "Technology",
			Level:         models.LevelIntermediate,
			Duration:      "3h 20min",
			StudentsCount: 2800,
			Rating:        4.8,
			ReviewsCount:  342,
			Thumbnail:     "https://images.unsplash.com/photo-1574943320219-553eb213f72d?w=300&h=200&fit=crop",
			Instructor:    "Dr. Roberto Santos",
			Price:         199,
			Tags:          []string{"IoT", "AI", "Drones", "Sensors"},
			Modules:       modules,
		},
		{
			ID:            "2",
			Title:         "Project Management in Agribusiness",
			Description:   "Effective methodologies for managing rural projects",
			Category:      "Career",
			Level:         models.LevelIntermediate,
			Duration:      "2h 45min",
			StudentsCount: 1200,
			Rating:        4.6,
			ReviewsCount:  156,
			Thumbnail:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=300&h=200&fit=crop",
			Instructor:    "Maria Fernanda",
			Price:         149,
			Tags:          []string{"Management", "Projects", "Planning"},
			Modules:       modules[:2],
		},
		{
			ID:            "3",
			Title:         "Interview Simulator",
			Description:   "Get ready for interviews in agribusiness",
			Category:      "Career",
			Level:         models.LevelBeginner,
			Duration:      "1h 30min",
			StudentsCount: 850,
			Rating:        4.7,
			ReviewsCount:  98,
			Thumbnail:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
			Instructor:    "Carlos Mendes",
			Price:         99,
			Tags:          []string{"Interview", "Career", "Communication"},
			Modules:       modules[:1],
		},
		{
			ID:            "4",
			Title:         "Agricultural Innovation Community",
			Description:   "Connect with agribusiness innovators",
			Category:      "Knowledge",
			Level:         models.LevelBeginner,
			Duration:      "Ongoing",
			StudentsCount: 3500,
			Rating:        4.9,
			ReviewsCount:  420,
			Thumbnail:     "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=300&h=200&fit=crop",
			Instructor:    "AgroSkills Community",
			Tags:          []string{"Networking", "Innovation", "Community"},
			Modules:       []models.Module{},
		},
		{
			ID:            "5",
			Title:         "Agriculture Specialist",
			Description:   "Complete program for agricultural specialization",
			Category:      "Career",
			Level:         models.LevelAdvanced,
			Duration:      "12h 30min",
			StudentsCount: 650,
			Rating:        4.9,
			ReviewsCount:  89,
			Thumbnail:     "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=300&h=200&fit=crop",
			Instructor:    "Dr. Ana Costa",
			Price:         399,
			Tags:          []string{"Specialization", "Agriculture", "Certification"},
			Modules:       append(modules, extended...),
		},
	}
}

func seedRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{ID: "1", CourseID: "4", Reason: "Based on your interest in innovation", Priority: 1},
		{ID: "2", CourseID: "5", Reason: "The next step in your specialization", Priority: 2},
	}
}
