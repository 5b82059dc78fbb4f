package system

import (
	"sync"

	"park_manager/config"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/model"

	"github.com/jinzhu/copier"
)

// UserStore holds every registered user in memory and rewrites the whole
// collection after each mutation. The mutex is required: ID allocation and
// the append-then-save cycle are read-modify-write over shared state and the
// fiber server calls in concurrently.
type UserStore struct {
	mu    sync.Mutex
	store *database.Store
	users model.Users
	seq   model.Sequences
}

func NewUserStore(store *database.Store) (*UserStore, error) {
	us := &UserStore{store: store, seq: model.Sequences{}}

	if err := store.LoadAll("users", &us.users); err != nil {
		return nil, err
	}
	if err := store.LoadAll("user_sequences", &us.seq); err != nil {
		return nil, err
	}

	// Reconstruct the customer variant: records written before customerType
	// existed default to Adult.
	for i := range us.users {
		if !us.users[i].IsAdmin && us.users[i].CustomerType == "" {
			us.users[i].CustomerType = constants.CUSTOMER_TYPE_ADULT
		}
	}

	return us, nil
}

// SeedAdmin creates the default admin account on a first run, the only user
// that is not registered through the API.
func (us *UserStore) SeedAdmin() error {
	us.mu.Lock()
	defer us.mu.Unlock()

	if len(us.users) > 0 {
		return nil
	}
	admin := model.User{
		UserID:   us.seq.Next("users", "U"),
		Username: config.ConfigDefault("ADMIN_USERNAME", "admin"),
		Password: config.ConfigDefault("ADMIN_PASSWORD", "admin123"),
		Email:    config.ConfigDefault("ADMIN_EMAIL", "admin@parks.local"),
		FullName: "Park Administrator",
		IsAdmin:  true,
	}
	us.users = append(us.users, admin)
	return us.flush()
}

func (us *UserStore) flush() error {
	if err := us.store.SaveAll("users", us.users); err != nil {
		return err
	}
	return us.store.SaveAll("user_sequences", us.seq)
}

// Authenticate scans for an exact username and password match; first match
// wins. Bad credentials return nil, never an error.
func (us *UserStore) Authenticate(username, password string) *model.User {
	us.mu.Lock()
	defer us.mu.Unlock()

	for i := range us.users {
		if us.users[i].Username == username && us.users[i].Password == password {
			u := us.users[i]
			return &u
		}
	}
	return nil
}

// Register appends a new customer unless the username is already taken
// (case-sensitive). The collection is persisted before returning.
func (us *UserStore) Register(input model.RegisterInput) (*model.User, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	for i := range us.users {
		if us.users[i].Username == input.Username {
			return nil, ErrDuplicateUsername
		}
	}

	var user model.User
	copier.Copy(&user, &input)
	user.UserID = us.seq.Next("users", "U")
	user.IsAdmin = false
	if user.CustomerType == "" {
		user.CustomerType = constants.CUSTOMER_TYPE_ADULT
	}

	us.users = append(us.users, user)
	if err := us.flush(); err != nil {
		return nil, err
	}

	u := user
	return &u, nil
}

func (us *UserStore) ByID(userID string) *model.User {
	us.mu.Lock()
	defer us.mu.Unlock()

	for i := range us.users {
		if us.users[i].UserID == userID {
			u := us.users[i]
			return &u
		}
	}
	return nil
}

func (us *UserStore) Count() int {
	us.mu.Lock()
	defer us.mu.Unlock()
	return len(us.users)
}
