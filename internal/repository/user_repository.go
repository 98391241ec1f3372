package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lshigami/cybersolutions/internal/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./user_repository.go -destination=./mocks/user_repository.mock.go -package=repomocks UserRepository

var (
	ErrUserDuplicate = errors.New("email already registered")
	ErrUserNotFound  = gorm.ErrRecordNotFound
)

const mysqlDuplicateEntry uint16 = 1062

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return ErrUserDuplicate
	}
	return err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
