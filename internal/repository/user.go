package repository

import (
	"github.com/delvaty/construccion-easy/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetAllUsers() ([]user.User, error)
	ListUsersPaging(page, limit int) ([]user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	IsAdmin(id uint) (bool, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) GetAllUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("u_id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersPaging(page, limit int) ([]user.User, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	var users []user.User
	err := r.db.Order("u_id").Offset((page - 1) * limit).Limit(limit).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.Where("u_id = ?", id).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, "u_id = ?", id).Error
}

func (r *DBUserRepo) IsAdmin(id uint) (bool, error) {
	var u user.User
	if err := r.db.Select("role").Where("u_id = ?", id).First(&u).Error; err != nil {
		return false, err
	}
	return u.Role == string(user.UserRoleAdmin), nil
}
