package complaint

import (
	"fmt"
	"time"

	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/domain/sla"
	"jannivaran/internal/shared/authorization"
)

// Viewer is the request-scoped identity used for visibility decisions.
// Citizens see their own complaints, officials their department's, admins all.
type Viewer struct {
	UserID     uint
	Role       authorization.UserRole
	Department string
}

type Complaint struct {
	id               uint
	trackingID       string
	title            string
	description      string
	category         vo.Category
	department       string
	priority         vo.Priority
	status           vo.ComplaintStatus
	location         string
	citizenID        uint
	assigneeID       *uint
	slaAssignedHours float64
	slaDeadline      time.Time
	resolutionNote   string
	assignedAt       *time.Time
	inProgressAt     *time.Time
	resolvedAt       *time.Time
	closedAt         *time.Time
	escalatedAt      *time.Time
	slaWarnedAt      *time.Time
	lastStatusChange time.Time
	version          int
	loadedVersion    int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewComplaint(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	department string,
	location string,
	citizenID uint,
) (*Complaint, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(department) == 0 {
		return nil, fmt.Errorf("department is required")
	}
	if citizenID == 0 {
		return nil, fmt.Errorf("citizen ID is required")
	}

	now := time.Now().UTC()
	assignedHours := priority.GetSLAHours()

	return &Complaint{
		title:            title,
		description:      description,
		category:         category,
		department:       department,
		priority:         priority,
		status:           vo.StatusPending,
		location:         location,
		citizenID:        citizenID,
		slaAssignedHours: assignedHours,
		slaDeadline:      sla.DeadlineFrom(now, assignedHours),
		lastStatusChange: now,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	trackingID string,
	title string,
	description string,
	category vo.Category,
	department string,
	priority vo.Priority,
	status vo.ComplaintStatus,
	location string,
	citizenID uint,
	assigneeID *uint,
	slaAssignedHours float64,
	slaDeadline time.Time,
	resolutionNote string,
	assignedAt *time.Time,
	inProgressAt *time.Time,
	resolvedAt *time.Time,
	closedAt *time.Time,
	escalatedAt *time.Time,
	slaWarnedAt *time.Time,
	lastStatusChange time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if len(trackingID) == 0 {
		return nil, fmt.Errorf("tracking ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if citizenID == 0 {
		return nil, fmt.Errorf("citizen ID is required")
	}

	return &Complaint{
		id:               id,
		trackingID:       trackingID,
		title:            title,
		description:      description,
		category:         category,
		department:       department,
		priority:         priority,
		status:           status,
		location:         location,
		citizenID:        citizenID,
		assigneeID:       assigneeID,
		slaAssignedHours: slaAssignedHours,
		slaDeadline:      slaDeadline,
		resolutionNote:   resolutionNote,
		assignedAt:       assignedAt,
		inProgressAt:     inProgressAt,
		resolvedAt:       resolvedAt,
		closedAt:         closedAt,
		escalatedAt:      escalatedAt,
		slaWarnedAt:      slaWarnedAt,
		lastStatusChange: lastStatusChange,
		version:          version,
		loadedVersion:    version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Complaint) ID() uint                    { return c.id }
func (c *Complaint) TrackingID() string          { return c.trackingID }
func (c *Complaint) Title() string               { return c.title }
func (c *Complaint) Description() string         { return c.description }
func (c *Complaint) Category() vo.Category       { return c.category }
func (c *Complaint) Department() string          { return c.department }
func (c *Complaint) Priority() vo.Priority       { return c.priority }
func (c *Complaint) Status() vo.ComplaintStatus  { return c.status }
func (c *Complaint) Location() string            { return c.location }
func (c *Complaint) CitizenID() uint             { return c.citizenID }
func (c *Complaint) AssigneeID() *uint           { return c.assigneeID }
func (c *Complaint) SLAAssignedHours() float64   { return c.slaAssignedHours }
func (c *Complaint) SLADeadline() time.Time      { return c.slaDeadline }
func (c *Complaint) ResolutionNote() string      { return c.resolutionNote }
func (c *Complaint) AssignedAt() *time.Time      { return c.assignedAt }
func (c *Complaint) InProgressAt() *time.Time    { return c.inProgressAt }
func (c *Complaint) ResolvedAt() *time.Time      { return c.resolvedAt }
func (c *Complaint) ClosedAt() *time.Time        { return c.closedAt }
func (c *Complaint) EscalatedAt() *time.Time     { return c.escalatedAt }
func (c *Complaint) SLAWarnedAt() *time.Time     { return c.slaWarnedAt }
func (c *Complaint) LastStatusChange() time.Time { return c.lastStatusChange }
func (c *Complaint) Version() int                { return c.version }
func (c *Complaint) CreatedAt() time.Time        { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time        { return c.updatedAt }

// LoadedVersion is the version the aggregate carried when it was loaded or
// last persisted. Conditional updates bind it as the expected stored version.
func (c *Complaint) LoadedVersion() int { return c.loadedVersion }

// SyncVersion records that the current version has been persisted.
// Repositories call it after a successful save or conditional update.
func (c *Complaint) SyncVersion() { c.loadedVersion = c.version }

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Complaint) SetTrackingID(trackingID string) error {
	if len(c.trackingID) > 0 {
		return fmt.Errorf("tracking ID is already set")
	}
	if len(trackingID) == 0 {
		return fmt.Errorf("tracking ID cannot be empty")
	}
	c.trackingID = trackingID
	return nil
}

// SLAEvaluation derives the current SLA state at the given instant.
func (c *Complaint) SLAEvaluation(now time.Time) sla.Evaluation {
	return sla.Evaluate(c.slaAssignedHours, c.slaDeadline, now)
}

// IsStalled reports whether the complaint is breached or has seen no status
// movement for the stalled share of its window.
func (c *Complaint) IsStalled(now time.Time) bool {
	if !c.status.IsActive() {
		return false
	}
	return sla.IsStalled(c.slaAssignedHours, c.slaDeadline, c.lastStatusChange, now)
}

// NeedsSLAWarning reports whether a warning notification is due and has not
// been sent yet.
func (c *Complaint) NeedsSLAWarning(now time.Time) bool {
	if !c.status.IsActive() || c.slaWarnedAt != nil {
		return false
	}
	return sla.InWarningWindow(c.slaAssignedHours, c.slaDeadline, now)
}

// AssignTo assigns the complaint to an official and moves pending work into
// progress. The assignedAt stamp is set only on the first assignment.
func (c *Complaint) AssignTo(officialID uint, department string) error {
	if officialID == 0 {
		return fmt.Errorf("official ID cannot be zero")
	}
	if !c.status.IsActive() {
		return fmt.Errorf("cannot assign a %s complaint", c.status)
	}

	now := time.Now().UTC()
	c.assigneeID = &officialID
	if len(department) > 0 {
		c.department = department
	}
	if c.assignedAt == nil {
		c.assignedAt = &now
	}
	c.updatedAt = now
	c.version++

	if c.status.IsPending() {
		return c.changeStatusAt(vo.StatusInProgress, now)
	}
	return nil
}

// ChangeStatus applies a lifecycle transition. Entry timestamps are recorded
// only on the first entry into a state and are never cleared.
func (c *Complaint) ChangeStatus(newStatus vo.ComplaintStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if c.status == newStatus {
		return nil
	}
	if !c.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", c.status, newStatus)
	}
	return c.changeStatusAt(newStatus, time.Now().UTC())
}

func (c *Complaint) changeStatusAt(newStatus vo.ComplaintStatus, now time.Time) error {
	c.status = newStatus
	c.lastStatusChange = now
	c.updatedAt = now
	c.version++

	switch {
	case newStatus.IsInProgress() && c.inProgressAt == nil:
		c.inProgressAt = &now
	case newStatus.IsResolved() && c.resolvedAt == nil:
		c.resolvedAt = &now
	case newStatus.IsClosed() && c.closedAt == nil:
		c.closedAt = &now
	case newStatus.IsEscalated() && c.escalatedAt == nil:
		c.escalatedAt = &now
	}

	return nil
}

// ChangePriority reclassifies the complaint and opens a fresh SLA window for
// the new priority, anchored at the moment of reclassification.
func (c *Complaint) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if c.priority == newPriority {
		return nil
	}
	if !c.status.IsActive() {
		return fmt.Errorf("cannot reprioritize a %s complaint", c.status)
	}

	now := time.Now().UTC()
	c.priority = newPriority
	c.slaAssignedHours = newPriority.GetSLAHours()
	c.slaDeadline = sla.DeadlineFrom(now, c.slaAssignedHours)
	c.slaWarnedAt = nil
	c.updatedAt = now
	c.version++

	return nil
}

// Escalate moves the complaint to the escalated status.
func (c *Complaint) Escalate() error {
	return c.ChangeStatus(vo.StatusEscalated)
}

// RaiseTicket records a citizen intervention: priority is bumped to high
// unless already critical, and the escalatedAt stamp is set once.
func (c *Complaint) RaiseTicket() error {
	if !c.status.IsActive() {
		return fmt.Errorf("cannot raise a ticket on a %s complaint", c.status)
	}

	now := time.Now().UTC()
	if !c.priority.AtLeast(vo.PriorityHigh) {
		c.priority = vo.PriorityHigh
		c.slaAssignedHours = vo.PriorityHigh.GetSLAHours()
		c.slaDeadline = sla.DeadlineFrom(now, c.slaAssignedHours)
		c.slaWarnedAt = nil
	}
	if c.escalatedAt == nil {
		c.escalatedAt = &now
	}
	c.updatedAt = now
	c.version++

	return nil
}

// MarkSLAWarned records that the warning notification went out.
func (c *Complaint) MarkSLAWarned() error {
	if c.slaWarnedAt != nil {
		return fmt.Errorf("SLA warning already recorded")
	}
	now := time.Now().UTC()
	c.slaWarnedAt = &now
	c.updatedAt = now
	return nil
}

// SetResolutionNote attaches the official's resolution note.
func (c *Complaint) SetResolutionNote(note string) error {
	if len(note) > 5000 {
		return fmt.Errorf("resolution note exceeds maximum length of 5000 characters")
	}
	c.resolutionNote = note
	c.updatedAt = time.Now().UTC()
	return nil
}

// CanBeViewedBy applies role-based visibility: admins see everything,
// officials see their department's complaints, citizens see their own.
func (c *Complaint) CanBeViewedBy(viewer Viewer) bool {
	switch {
	case viewer.Role.IsAdmin():
		return true
	case viewer.Role == authorization.RoleOfficial:
		if c.assigneeID != nil && *c.assigneeID == viewer.UserID {
			return true
		}
		return viewer.Department != "" && c.department == viewer.Department
	default:
		return c.citizenID == viewer.UserID
	}
}

func (c *Complaint) Validate() error {
	if len(c.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(c.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !c.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !c.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !c.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if c.citizenID == 0 {
		return fmt.Errorf("citizen ID is required")
	}
	return nil
}
