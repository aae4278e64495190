package repos

import (
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/kv"
	"stockroom/internal/records"
)

const (
	colUsers    = "users"
	colSessions = "sessions"
)

type UserRepo struct{ store kv.Store }

func NewUserRepo(s kv.Store) *UserRepo { return &UserRepo{store: s} }

func (r *UserRepo) List() ([]domain.User, error) {
	return records.List[domain.User](r.store, colUsers)
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, &domain.NotFoundError{Kind: "user", ID: email}
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, &domain.NotFoundError{Kind: "user", ID: id}
}

// Create appends a new user. The email must not already be taken.
func (r *UserRepo) Create(u domain.User) error {
	if strings.TrimSpace(u.Email) == "" {
		return &domain.ValidationError{Msg: "email must not be empty"}
	}
	users, err := r.List()
	if err != nil {
		return err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, u.Email) {
			return &domain.ValidationError{Msg: "an account with this email already exists"}
		}
	}
	users = append(users, u)
	return records.Write(r.store, colUsers, users)
}

// Delete removes a user and unbinds any of their sessions. No-op when absent.
func (r *UserRepo) Delete(id string) error {
	users, err := r.List()
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if err := records.Write(r.store, colUsers, kept); err != nil {
		return err
	}
	sessions, err := records.List[domain.Session](r.store, colSessions)
	if err != nil {
		return err
	}
	for i := range sessions {
		if sessions[i].UserID == id {
			sessions[i].UserID = ""
		}
	}
	return records.Write(r.store, colSessions, sessions)
}

// BindSession attaches sid to a user, creating the session if needed.
func (r *UserRepo) BindSession(sid, userID string) error {
	sessions, err := records.List[domain.Session](r.store, colSessions)
	if err != nil {
		return err
	}
	bound := false
	for i := range sessions {
		if sessions[i].ID == sid {
			sessions[i].UserID = userID
			bound = true
			break
		}
	}
	if !bound {
		sessions = append(sessions, domain.Session{ID: sid, UserID: userID})
	}
	return records.Write(r.store, colSessions, sessions)
}

// SessionUser resolves the user bound to sid.
func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	sessions, err := records.List[domain.Session](r.store, colSessions)
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if s.ID == sid && s.UserID != "" {
			return r.ByID(s.UserID)
		}
	}
	return nil, &domain.NotFoundError{Kind: "session", ID: sid}
}

func (r *UserRepo) UnbindSession(sid string) error {
	sessions, err := records.List[domain.Session](r.store, colSessions)
	if err != nil {
		return err
	}
	for i := range sessions {
		if sessions[i].ID == sid {
			sessions[i].UserID = ""
		}
	}
	return records.Write(r.store, colSessions, sessions)
}
