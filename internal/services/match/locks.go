package match

import "sync"

// gameLocks serializes commands per game instance. The engine assumes
// exclusive access to one game's state for the duration of a command;
// distinct games stay fully independent.
type gameLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// acquire locks the mutex for gameID and returns its unlock func
func (l *gameLocks) acquire(gameID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[gameID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
