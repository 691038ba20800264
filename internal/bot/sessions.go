package bot

import (
	"sync"

	"strengthbot/internal/training"
)

// session хранит незавершённый ввод максимумов
type session struct {
	awaiting training.Lift // ожидаемый максимум, 0 если ввод не идёт
	draft    training.Maxima
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]session)}
}

// begin начинает ввод с жима лёжа
func (s *sessionStore) begin(userID int64) {
	s.mu.Lock()
	s.sessions[userID] = session{awaiting: training.BenchPress}
	s.mu.Unlock()
}

func (s *sessionStore) get(userID int64) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *sessionStore) set(userID int64, sess session) {
	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()
}

// clear завершает ввод и сообщает, был ли он активен
func (s *sessionStore) clear(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	delete(s.sessions, userID)
	return ok
}

// nextLift возвращает максимум, который спрашивается после lift, или 0
func nextLift(lift training.Lift) training.Lift {
	switch lift {
	case training.BenchPress:
		return training.Squat
	case training.Squat:
		return training.Deadlift
	}
	return 0
}
