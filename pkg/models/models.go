package models

// Domain models for the fleet maintenance store. Calendar dates
// (install/maintenance/scheduled) are ISO "2006-01-02" strings with no time
// component; full timestamps are RFC 3339 strings assigned by the repositories.

type UserRole string

const (
	RoleAdmin     UserRole = "Admin"
	RoleInspector UserRole = "Inspector"
	RoleEngineer  UserRole = "Engineer"
)

type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

type ShipStatus string

const (
	ShipActive           ShipStatus = "Active"
	ShipUnderMaintenance ShipStatus = "Under Maintenance"
	ShipInactive         ShipStatus = "Inactive"
)

type Ship struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	IMO    string     `json:"imo"`
	Flag   string     `json:"flag"`
	Status ShipStatus `json:"status"`
}

type ShipComponent struct {
	ID                  string `json:"id"`
	ShipID              string `json:"shipId"`
	Name                string `json:"name"`
	SerialNumber        string `json:"serialNumber"`
	InstallDate         string `json:"installDate"`
	LastMaintenanceDate string `json:"lastMaintenanceDate"`
}

type JobType string

const (
	JobInspection  JobType = "Inspection"
	JobRepair      JobType = "Repair"
	JobReplacement JobType = "Replacement"
	JobOverhaul    JobType = "Overhaul"
)

type JobPriority string

const (
	PriorityHigh   JobPriority = "High"
	PriorityMedium JobPriority = "Medium"
	PriorityLow    JobPriority = "Low"
)

type JobStatus string

const (
	JobOpen       JobStatus = "Open"
	JobInProgress JobStatus = "In Progress"
	JobCompleted  JobStatus = "Completed"
	JobCancelled  JobStatus = "Cancelled"
)

type Job struct {
	ID                 string      `json:"id"`
	ComponentID        string      `json:"componentId"`
	ShipID             string      `json:"shipId"`
	Type               JobType     `json:"type"`
	Priority           JobPriority `json:"priority"`
	Status             JobStatus   `json:"status"`
	AssignedEngineerID string      `json:"assignedEngineerId"`
	ScheduledDate      string      `json:"scheduledDate"`
	Description        string      `json:"description,omitempty"`
	CreatedAt          string      `json:"createdAt"`
	UpdatedAt          string      `json:"updatedAt"`
}

type NotificationType string

const (
	NotifyJobCreated   NotificationType = "Job Created"
	NotifyJobUpdated   NotificationType = "Job Updated"
	NotifyJobCompleted NotificationType = "Job Completed"
)

// EntityRef is a tagged reference to another record, so a notification can say
// which kind of entity it points at instead of carrying a bare identifier.
type EntityRef struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Message       string           `json:"message"`
	Timestamp     string           `json:"timestamp"`
	IsRead        bool             `json:"isRead"`
	RelatedEntity *EntityRef       `json:"relatedEntity,omitempty"`
}

// DashboardStats are the aggregate counters shown on the landing page.
type DashboardStats struct {
	TotalShips                   int `json:"totalShips"`
	ComponentsNeedingMaintenance int `json:"componentsNeedingMaintenance"`
	JobsInProgress               int `json:"jobsInProgress"`
	CompletedJobs                int `json:"completedJobs"`
}

// CalendarEvent is a job projected onto its scheduled date for the month grid.
type CalendarEvent struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Date     string      `json:"date"`
	JobID    string      `json:"jobId"`
	ShipID   string      `json:"shipId"`
	Priority JobPriority `json:"priority"`
}
