// Package controller implements the role-aware navigation state machine that
// drives the tracker UI. All screen and focus state lives in one explicit
// ViewState value owned by the Controller, so the machine is testable
// without any rendering environment.
package controller

import (
	"context"

	"staffdesk/auth"
	"staffdesk/models"
	"staffdesk/repository"
	"staffdesk/roster"
)

// Screen identifies which view is active.
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenDetails   Screen = "details"
	ScreenReview    Screen = "review"
)

// ViewState is the complete navigation state of one session. The focused
// request id is a lookup key, never a copy: the request behind it must be
// re-resolved from the repository on every read, because a decision may have
// replaced it with the store's canonical record.
type ViewState struct {
	Role             models.Role `json:"role"`
	Screen           Screen      `json:"screen"`
	FocusedRequestID string      `json:"focusedRequestId,omitempty"`
}

// Session holds the authenticated subject.
type Session struct {
	Subject models.User `json:"subject"`
}

// Controller owns the session and view state for one interactive user and
// mediates every command between the presentation layer and the repository.
// It is a single-actor object: callers issue commands sequentially.
type Controller struct {
	roster  roster.Roster
	repo    repository.RequestRepository
	session *Session
	view    ViewState
}

// NewController creates a controller in the logged-out state.
func NewController(r roster.Roster, repo repository.RequestRepository) *Controller {
	return &Controller{roster: r, repo: repo}
}

// Login authenticates and opens a session. Employees and HR both start on
// the dashboard with no focused request, whatever state a previous session
// left behind.
func (c *Controller) Login(username, password string) (*models.User, error) {
	user, err := auth.Authenticate(username, password, c.roster)
	if err != nil {
		return nil, err
	}

	c.session = &Session{Subject: *user}
	c.view = ViewState{Role: user.Role, Screen: ScreenDashboard}
	result := *user
	return &result, nil
}

// Logout destroys the session and resets all transient state.
func (c *Controller) Logout() {
	c.session = nil
	c.view = ViewState{}
}

// SubmitRequest creates a new request on behalf of the session subject.
func (c *Controller) SubmitRequest(ctx context.Context, reqType, comment string) (*models.Request, error) {
	if c.session == nil {
		return nil, models.NewUnauthorizedError("no active session")
	}
	return c.repo.Create(ctx, c.session.Subject.ID, reqType, comment)
}

// SelectRequest moves an HR session from the dashboard to the details screen
// focused on the given request. Selecting a request that does not exist is
// reported and leaves the state unchanged.
func (c *Controller) SelectRequest(id string) error {
	if err := c.requireHR(); err != nil {
		return err
	}
	if c.view.Screen != ScreenDashboard {
		return models.NewValidationError("a request can only be selected from the dashboard")
	}
	if c.repo.Get(id) == nil {
		return models.NewNotFoundError("Request", id)
	}

	c.view.Screen = ScreenDetails
	c.view.FocusedRequestID = id
	return nil
}

// GoBack steps one screen back: details to dashboard (dropping the focus),
// review to details (keeping it). On the dashboard it is a no-op.
func (c *Controller) GoBack() {
	switch c.view.Screen {
	case ScreenDetails:
		c.view.Screen = ScreenDashboard
		c.view.FocusedRequestID = ""
	case ScreenReview:
		c.view.Screen = ScreenDetails
	}
}

// OpenReview moves from the details screen to the review screen for the
// focused request.
func (c *Controller) OpenReview() error {
	if err := c.requireHR(); err != nil {
		return err
	}
	if c.view.Screen != ScreenDetails {
		return models.NewValidationError("review can only be opened from the details screen")
	}
	if !c.resolveFocus() {
		return models.NewNotFoundError("Request", c.view.FocusedRequestID)
	}

	c.view.Screen = ScreenReview
	return nil
}

// Decide applies an HR decision to the focused request and returns to the
// dashboard. Only Approved and Rejected are offered as decisions. If the
// store rejects the update the controller stays on the review screen with
// the focus intact, so the decision can be retried.
func (c *Controller) Decide(ctx context.Context, status models.Status) (*models.Request, error) {
	if err := c.requireHR(); err != nil {
		return nil, err
	}
	if c.view.Screen != ScreenReview {
		return nil, models.NewValidationError("a decision can only be made from the review screen")
	}
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, models.NewValidationError("decision must be Approved or Rejected")
	}

	id := c.view.FocusedRequestID
	if !c.resolveFocus() {
		return nil, models.NewNotFoundError("Request", id)
	}

	updated, err := c.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	c.view.Screen = ScreenDashboard
	c.view.FocusedRequestID = ""
	return updated, nil
}

// CurrentSession returns the active session, or nil when logged out.
func (c *Controller) CurrentSession() *Session {
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// CurrentViewState re-resolves the focus and returns the resulting state.
func (c *Controller) CurrentViewState() ViewState {
	c.resolveFocus()
	return c.view
}

// FocusedRequest resolves the focused request, or nil when nothing is
// focused or the request has vanished.
func (c *Controller) FocusedRequest() *models.Request {
	if !c.resolveFocus() || c.view.FocusedRequestID == "" {
		return nil
	}
	return c.repo.Get(c.view.FocusedRequestID)
}

// VisibleRequests returns the requests this session may see: employees see
// their own, HR sees everything.
func (c *Controller) VisibleRequests() []models.Request {
	if c.session == nil {
		return nil
	}
	switch c.session.Subject.Role {
	case models.RoleEmployee:
		return c.repo.ListByUser(c.session.Subject.ID)
	case models.RoleHR:
		return c.repo.ListAll()
	default:
		return nil
	}
}

// SummaryCounts returns the HR dashboard counts, or nil for non-HR sessions.
func (c *Controller) SummaryCounts() *models.Summary {
	if c.session == nil || c.session.Subject.Role != models.RoleHR {
		return nil
	}
	summary := repository.Summarize(c.repo.ListAll())
	return &summary
}

func (c *Controller) requireHR() error {
	if c.session == nil {
		return models.NewUnauthorizedError("no active session")
	}
	switch c.session.Subject.Role {
	case models.RoleHR:
		return nil
	case models.RoleEmployee:
		return models.NewUnauthorizedError("HR role required")
	default:
		return models.NewUnauthorizedError("HR role required")
	}
}

// resolveFocus checks that a focused request still exists. A stale focus on
// the details or review screen falls back to the dashboard. It returns false
// when a fallback happened.
func (c *Controller) resolveFocus() bool {
	if c.view.Screen != ScreenDetails && c.view.Screen != ScreenReview {
		return true
	}
	if c.view.FocusedRequestID != "" && c.repo.Get(c.view.FocusedRequestID) != nil {
		return true
	}

	c.view.Screen = ScreenDashboard
	c.view.FocusedRequestID = ""
	return false
}
