package store

import (
	"errors"

	"gorm.io/gorm"

	"fintrack/models"
)

// Gorm is the MySQL-backed gateway. The *gorm.DB is constructed in main and
// injected; this package never holds a global handle.
type Gorm struct {
	db *gorm.DB
}

// NewGorm wraps an open connection pool.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

var _ Store = (*Gorm)(nil)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ----- incomes -----

func (s *Gorm) CreateIncome(in *models.Income) error {
	if err := s.db.Create(in).Error; err != nil {
		return err
	}
	return s.db.Preload("Category").First(in, in.ID).Error
}

func (s *Gorm) IncomeByID(id, userID uint) (*models.Income, error) {
	var in models.Income
	err := s.db.Preload("Category").
		Where("income_id = ? AND user_id = ?", id, userID).
		First(&in).Error
	if err != nil {
		return nil, translate(err)
	}
	return &in, nil
}

func (s *Gorm) ListIncomes(userID uint, f IncomeFilter) ([]models.Income, error) {
	list := make([]models.Income, 0)
	q := s.db.Where("user_id = ?", userID)
	if f.Start != nil {
		q = q.Where("date >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("date <= ?", *f.End)
	}
	err := q.Preload("Category").
		Order("date DESC, income_id DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Gorm) UpdateIncome(in *models.Income, updates map[string]interface{}) (*models.Income, error) {
	if len(updates) > 0 {
		if err := s.db.Model(in).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	var out models.Income
	if err := s.db.Preload("Category").First(&out, in.ID).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (s *Gorm) DeleteIncome(in *models.Income) error {
	return s.db.Delete(in).Error
}

func (s *Gorm) CountIncomesByCategory(categoryID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Income{}).
		Where("category_id = ?", categoryID).
		Count(&n).Error
	return n, err
}

// ----- categories -----

func (s *Gorm) VisibleCategories(userID uint) ([]models.IncomeCategory, error) {
	list := make([]models.IncomeCategory, 0)
	err := s.db.Where("user_id IS NULL OR user_id = ?", userID).
		Order("is_custom ASC, category_name ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Gorm) UserCategories(userID uint) ([]models.IncomeCategory, error) {
	list := make([]models.IncomeCategory, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("category_name ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Gorm) CategoryByID(id uint) (*models.IncomeCategory, error) {
	var cat models.IncomeCategory
	if err := s.db.First(&cat, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (s *Gorm) UserCategoryByID(id, userID uint) (*models.IncomeCategory, error) {
	var cat models.IncomeCategory
	err := s.db.Where("category_id = ? AND user_id = ?", id, userID).
		First(&cat).Error
	if err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (s *Gorm) UserCategoryByName(userID uint, name string, excludeID uint) (*models.IncomeCategory, error) {
	q := s.db.Where("user_id = ? AND LOWER(category_name) = LOWER(?)", userID, name)
	if excludeID != 0 {
		q = q.Where("category_id <> ?", excludeID)
	}
	var cat models.IncomeCategory
	if err := q.First(&cat).Error; err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (s *Gorm) CreateCategory(cat *models.IncomeCategory) error {
	return s.db.Create(cat).Error
}

func (s *Gorm) UpdateCategory(cat *models.IncomeCategory, updates map[string]interface{}) (*models.IncomeCategory, error) {
	if len(updates) > 0 {
		if err := s.db.Model(cat).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	var out models.IncomeCategory
	if err := s.db.First(&out, cat.ID).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (s *Gorm) DeleteCategory(cat *models.IncomeCategory) error {
	return s.db.Delete(cat).Error
}

// ----- users -----

func (s *Gorm) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *Gorm) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Gorm) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Gorm) UpdateUser(u *models.User, updates map[string]interface{}) (*models.User, error) {
	if len(updates) > 0 {
		if err := s.db.Model(u).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	var out models.User
	if err := s.db.First(&out, u.ID).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}
