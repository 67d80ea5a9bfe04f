package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/pkg/store"
)

const moduleName = "SessionStore"

// Manager owns per-user conversation state on top of a SessionRepository.
// Callers that read history and later append a turn should hold Lock for the
// user across both calls.
type Manager struct {
	repo   contract.SessionRepository
	logger logger.ILogger

	mu    sync.Mutex
	locks map[string]*userLock
}

// userLock is dropped from the map once no caller holds or awaits it.
type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewManager(repo contract.SessionRepository, log logger.ILogger) *Manager {
	return &Manager{
		repo:   repo,
		logger: log,
		locks:  make(map[string]*userLock),
	}
}

// NormalizeUserID maps a blank id to the shared default user.
func NormalizeUserID(userID string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return store.DefaultUserID
	}
	return userID
}

// Lock serializes turns for one user. The returned func releases it.
func (m *Manager) Lock(userID string) func() {
	userID = NormalizeUserID(userID)

	m.mu.Lock()
	l, ok := m.locks[userID]
	if !ok {
		l = &userLock{}
		m.locks[userID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, userID)
		}
		m.mu.Unlock()
	}
}

// LoadOrCreate returns the user's conversation, creating an empty one on first access.
func (m *Manager) LoadOrCreate(ctx context.Context, userID string) (*store.Conversation, error) {
	userID = NormalizeUserID(userID)

	conv, found, err := m.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if found {
		return conv, nil
	}

	conv = store.NewConversation(userID)
	if err := m.repo.Save(ctx, conv); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	m.logger.Debug(moduleName, "Conversation created", map[string]interface{}{"user_id": userID})
	return conv, nil
}

// History renders the user's prior turns, empty for a new user.
func (m *Manager) History(ctx context.Context, userID string) (string, error) {
	conv, err := m.LoadOrCreate(ctx, userID)
	if err != nil {
		return "", err
	}
	return conv.History(), nil
}

// AppendTurn records one answered exchange.
func (m *Manager) AppendTurn(ctx context.Context, userID, question, answer string) error {
	conv, err := m.LoadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	conv.Turns = append(conv.Turns, store.Turn{
		Question: question,
		Answer:   answer,
		At:       time.Now(),
	})
	if err := m.repo.Save(ctx, conv); err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// Reset discards the user's conversation. The next access starts empty.
func (m *Manager) Reset(ctx context.Context, userID string) error {
	userID = NormalizeUserID(userID)
	if err := m.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("reset conversation: %w", err)
	}
	m.logger.Info(moduleName, "Conversation reset", map[string]interface{}{"user_id": userID})
	return nil
}
