package models

// SupportContact is the help-desk information shown to users.
type SupportContact struct {
	Hotline string `json:"hotline"`
	Email   string `json:"email"`
}

// VaccinationGuide is one section of the informational injection guide.
type VaccinationGuide struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// ScheduleEntry lists the vaccines recommended at one age.
type ScheduleEntry struct {
	Age      string   `json:"age"`
	Vaccines []string `json:"vaccines"`
}
