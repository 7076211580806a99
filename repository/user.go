package repository

import (
	"context"
	"fmt"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return utils.TranslateDBError(err, domain.EntityUser, domain.MsgEmailAlreadyTaken)
	}
	return nil
}

func (r *userRepository) GetAllUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.SearchTerm != "" {
		pattern := likePattern(filter.SearchTerm)
		query = query.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to count users: %w", err), domain.EntityUser, "")
	}

	users := []domain.User{}
	if err := query.Scopes(paginate(filter.Pagination)).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to fetch users: %w", err), domain.EntityUser, "")
	}
	return users, total, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError(err, domain.EntityUser, "")
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, utils.TranslateDBError(err, domain.EntityUser, "")
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, utils.TranslateDBError(fmt.Errorf("error checking email: %w", err), domain.EntityUser, "")
	}
	return count > 0, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.PhoneNumber != nil {
		updates["phone_number"] = *update.PhoneNumber
	}
	if update.Role != nil {
		updates["role"] = *update.Role
	}
	if update.Password != nil {
		updates["password"] = *update.Password
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, utils.TranslateDBError(res.Error, domain.EntityUser, domain.MsgEmailAlreadyTaken)
		}
		if res.RowsAffected == 0 {
			return nil, domain.NewNotFoundError(domain.EntityUser)
		}
	}
	return r.GetUserByID(ctx, id)
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id)
	if res.Error != nil {
		return utils.TranslateDBError(res.Error, domain.EntityUser, "")
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityUser)
	}
	return nil
}
