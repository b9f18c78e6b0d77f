package models

// StoreVersion is the current schema version of the persisted blob.
const StoreVersion = 1

// Store is the whole persisted state: every user plus the active session
// pointer. It is serialized as a single JSON blob and replaced wholesale on
// every save, never updated incrementally.
type Store struct {
	Version       int     `json:"version"`
	Users         []*User `json:"users"`
	CurrentUserID string  `json:"currentUserId"`
}

// FindUser returns the user with the given id, or nil.
func (s *Store) FindUser(id string) *User {
	if id == "" {
		return nil
	}
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// CurrentUser returns the user the session pointer refers to, or nil.
func (s *Store) CurrentUser() *User {
	return s.FindUser(s.CurrentUserID)
}
