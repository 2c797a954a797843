package database

import (
	"gorm.io/gorm"
	"murmur/internal/core/user"
	userPort "murmur/internal/ports/user"
)

// UserRepositoryDatabase implements the UserRepository port on gorm.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(u *user.User) (*user.User, error) {
	if err := repo.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByUsernameOrEmail(username, email string) (*user.User, error) {
	var u user.User
	if err := repo.db.Where("username = ? OR email_address = ?", username, email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(username string) (*user.User, error) {
	var u user.User
	if err := repo.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(email string) (*user.User, error) {
	var u user.User
	if err := repo.db.Where("email_address = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByID(id string) (*user.User, error) {
	var u user.User
	if err := repo.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindCredentials loads the user plus its posts and messages. The entities
// live in separate packages, so the ownership sides are loaded explicitly
// instead of through a has-many preload.
func (repo *UserRepositoryDatabase) FindCredentials(id string) (*userPort.Credentials, error) {
	var u user.User
	if err := repo.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}

	creds := &userPort.Credentials{User: u}
	if err := repo.db.Preload("Images").Where("user_id = ?", id).Find(&creds.Posts).Error; err != nil {
		return nil, err
	}
	if err := repo.db.Where("user_id = ?", id).Find(&creds.Messages).Error; err != nil {
		return nil, err
	}
	return creds, nil
}

func (repo *UserRepositoryDatabase) FindAll() ([]*user.User, error) {
	var users []*user.User
	if err := repo.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteByUsername removes the user row. Cascades on posts and messages are
// enforced by the foreign key constraints.
func (repo *UserRepositoryDatabase) DeleteByUsername(username string) error {
	return repo.db.Where("username = ?", username).Delete(&user.User{}).Error
}
