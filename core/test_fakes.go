package core

import "sync"

// FakeUserStorage is a test-only fake implementing UserStorage. It keeps
// users in insertion order and exposes error fields for behavior injection
// plus call counters for asserting gate ordering.
type FakeUserStorage struct {
	mu    sync.RWMutex
	users map[string]*User
	order []string

	createErr error
	getErr    error
	updateErr error
	deleteErr error
	countErr  error
	listErr   error

	GetCalls   int
	CountCalls int
	ListCalls  int
}

func NewFakeUserStorage() *FakeUserStorage {
	return &FakeUserStorage{
		users: make(map[string]*User),
	}
}

func (f *FakeUserStorage) CreateUser(u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return ErrUserExists
		}
	}
	if _, exists := f.users[u.ID]; exists {
		return ErrUserExists
	}
	cp := *u
	f.users[u.ID] = &cp
	f.order = append(f.order, u.ID)
	return nil
}

func (f *FakeUserStorage) GetUserByID(id string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, ErrUserNotFound
}

func (f *FakeUserStorage) GetUserByEmail(email string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeUserStorage) UpdateUser(u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, exists := f.users[u.ID]; !exists {
		return ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *FakeUserStorage) DeleteUser(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, exists := f.users[id]; !exists {
		return ErrUserNotFound
	}
	delete(f.users, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *FakeUserStorage) CountUsers() (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	f.CountCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.users), nil
}

func (f *FakeUserStorage) ListUsers(offset, limit int) ([]*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	f.ListCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if offset >= len(f.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.order) {
		end = len(f.order)
	}
	var users []*User
	for _, id := range f.order[offset:end] {
		cp := *f.users[id]
		users = append(users, &cp)
	}
	return users, nil
}

// Test helper methods
func (f *FakeUserStorage) SetGetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getErr = err
}

func (f *FakeUserStorage) SetCountError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countErr = err
}

func (f *FakeUserStorage) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.users)
}
