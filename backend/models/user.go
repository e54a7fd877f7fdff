package models

type User struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Avatar         string        `json:"avatar,omitempty"`
	Profession     string        `json:"profession"`
	Specialization string        `json:"specialization"`
	Experience     string        `json:"experience"`
	JoinDate       string        `json:"joinDate"`
	Competencies   []Competency  `json:"competencies"`
	Achievements   []Achievement `json:"achievements"`
}

type Competency struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"` // 0-100
	Category string `json:"category"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlockedAt"`
}
