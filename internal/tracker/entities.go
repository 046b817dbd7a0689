package tracker

import "time"

// Priority ranks applications and tasks.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// StatusChange is one board move, kept as the application's history log.
type StatusChange struct {
	From Status    `json:"from"`
	To   Status    `json:"to"`
	At   time.Time `json:"at"`
}

// Application is one tracked job application.
type Application struct {
	ID          string         `json:"id"`
	JobID       string         `json:"jobId,omitempty"`
	JobTitle    string         `json:"jobTitle"`
	Company     string         `json:"company"`
	CompanyLogo string         `json:"companyLogo,omitempty"`
	Location    string         `json:"location,omitempty"`
	Status      Status         `json:"status"`
	AppliedDate string         `json:"appliedDate"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Salary      string         `json:"salary,omitempty"`
	JobType     string         `json:"jobType,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Priority    Priority       `json:"priority"`
	History     []StatusChange `json:"history,omitempty"`
}

// InterviewType classifies an interview round.
type InterviewType string

const (
	InterviewPhoneScreen  InterviewType = "Phone Screen"
	InterviewTechnical    InterviewType = "Technical"
	InterviewBehavioral   InterviewType = "Behavioral"
	InterviewSystemDesign InterviewType = "System Design"
	InterviewFinalRound   InterviewType = "Final Round"
	InterviewHRRound      InterviewType = "HR Round"
)

// Interview is a scheduled or completed interview round.
type Interview struct {
	ID            string        `json:"id"`
	ApplicationID string        `json:"applicationId"`
	Company       string        `json:"company"`
	Position      string        `json:"position"`
	Type          InterviewType `json:"type"`
	Date          string        `json:"date"`
	Time          string        `json:"time,omitempty"`
	DurationMins  int           `json:"durationMins,omitempty"`
	MeetingLink   string        `json:"meetingLink,omitempty"`
	Interviewer   string        `json:"interviewer,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Completed     bool          `json:"completed"`
}

// TaskStatus tracks a to-do item's progress.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// Task is a free-standing to-do, optionally linked to an application.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Priority      Priority   `json:"priority"`
	Status        TaskStatus `json:"status"`
	DueDate       string     `json:"dueDate,omitempty"`
	ApplicationID string     `json:"applicationId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// Statistics is the board roll-up served to the dashboard.
type Statistics struct {
	TotalApplications   int            `json:"totalApplications"`
	ActiveApplications  int            `json:"activeApplications"`
	InterviewsScheduled int            `json:"interviewsScheduled"`
	OffersReceived      int            `json:"offersReceived"`
	Rejections          int            `json:"rejections"`
	ResponseRate        float64        `json:"responseRate"`
	ByStatus            map[Status]int `json:"applicationsByStatus"`
}
