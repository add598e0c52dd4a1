// Package handlers implements the HTTP presentation layer over the tracker
// core: login/logout, request submission, and the HR review flow.
package handlers

import (
	"sync"

	"staffdesk/controller"
	"staffdesk/models"
	"staffdesk/repository"
	"staffdesk/roster"
)

// SessionManager maps authenticated user ids to their session controllers.
// Every session shares the one repository and roster; the map itself is the
// only state touched by concurrent requests, so it carries the only lock.
type SessionManager struct {
	mu     sync.RWMutex
	byUser map[int]*controller.Controller
	roster roster.Roster
	repo   repository.RequestRepository
}

// NewSessionManager creates an empty session registry.
func NewSessionManager(r roster.Roster, repo repository.RequestRepository) *SessionManager {
	return &SessionManager{
		byUser: make(map[int]*controller.Controller),
		roster: r,
		repo:   repo,
	}
}

// Login authenticates and registers a fresh controller for the user. A
// second login for the same user replaces the previous session, so no stale
// view state survives.
func (m *SessionManager) Login(username, password string) (*models.User, error) {
	ctrl := controller.NewController(m.roster, m.repo)
	user, err := ctrl.Login(username, password)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.byUser[user.ID] = ctrl
	m.mu.Unlock()
	return user, nil
}

// Logout resets and removes the user's session, if any.
func (m *SessionManager) Logout(userID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctrl, ok := m.byUser[userID]; ok {
		ctrl.Logout()
		delete(m.byUser, userID)
	}
}

// Controller returns the session controller for a user, or nil when the
// user has no live session (e.g. the token outlived a logout).
func (m *SessionManager) Controller(userID int) *controller.Controller {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byUser[userID]
}
