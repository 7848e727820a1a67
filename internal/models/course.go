package models

// Course levels offered by the catalogue forms.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course is a catalogue entry. Price is kept as a display string and is
// normalized to a leading currency symbol on every write.
type Course struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	Instructor       string  `json:"instructor"`
	Category         string  `json:"category,omitempty"`
	Price            string  `json:"price"`
	Level            string  `json:"level,omitempty"`
	Duration         string  `json:"duration,omitempty"`
	Capacity         int     `json:"capacity,omitempty"`
	StartDate        string  `json:"startDate,omitempty"`
	Status           Status  `json:"status"`
	EnrolledStudents int     `json:"enrolledStudents"`
	Rating           float64 `json:"rating,omitempty"`
}
