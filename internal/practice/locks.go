package practice

import "sync"

// problemLocks hands out one mutex per problem id.
type problemLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func (l *problemLocks) lock(id int) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[int]*sync.Mutex)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
