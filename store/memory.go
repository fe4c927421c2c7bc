package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"fintrack/models"
)

// Memory is an in-memory gateway with the same observable semantics as the
// GORM one (ordering, not-found scoping, case-insensitive name matching).
// Service and handler tests run against it instead of a live database.
type Memory struct {
	mu         sync.RWMutex
	users      map[uint]models.User
	categories map[uint]models.IncomeCategory
	incomes    map[uint]models.Income

	userSeq     uint
	categorySeq uint
	incomeSeq   uint
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		users:      make(map[uint]models.User),
		categories: make(map[uint]models.IncomeCategory),
		incomes:    make(map[uint]models.Income),
	}
}

// ----- incomes -----

func (s *Memory) CreateIncome(in *models.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomeSeq++
	in.ID = s.incomeSeq
	if in.CreationDate.IsZero() {
		in.CreationDate = time.Now()
	}
	s.incomes[in.ID] = *in
	in.Category = s.categories[in.CategoryID]
	return nil
}

func (s *Memory) IncomeByID(id, userID uint) (*models.Income, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.incomes[id]
	if !ok || in.UserID != userID {
		return nil, ErrNotFound
	}
	in.Category = s.categories[in.CategoryID]
	return &in, nil
}

func (s *Memory) ListIncomes(userID uint, f IncomeFilter) ([]models.Income, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.Income, 0)
	for _, in := range s.incomes {
		if in.UserID != userID {
			continue
		}
		if f.Start != nil && in.Date.Before(*f.Start) {
			continue
		}
		if f.End != nil && in.Date.After(*f.End) {
			continue
		}
		in.Category = s.categories[in.CategoryID]
		list = append(list, in)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (s *Memory) UpdateIncome(in *models.Income, updates map[string]interface{}) (*models.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.incomes[in.ID]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range updates {
		switch k {
		case "amount":
			row.Amount = v.(float64)
		case "date":
			row.Date = v.(time.Time)
		case "source":
			row.Source = v.(string)
		case "description":
			row.Description = v.(string)
		case "category_id":
			row.CategoryID = v.(uint)
		}
	}
	s.incomes[row.ID] = row
	row.Category = s.categories[row.CategoryID]
	return &row, nil
}

func (s *Memory) DeleteIncome(in *models.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.incomes, in.ID)
	return nil
}

func (s *Memory) CountIncomesByCategory(categoryID uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, in := range s.incomes {
		if in.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// ----- categories -----

func sortCategories(list []models.IncomeCategory) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].IsCustom != list[j].IsCustom {
			return !list[i].IsCustom // system categories first
		}
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
}

func (s *Memory) VisibleCategories(userID uint) ([]models.IncomeCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.IncomeCategory, 0)
	for _, cat := range s.categories {
		if cat.UserID == nil || *cat.UserID == userID {
			list = append(list, cat)
		}
	}
	sortCategories(list)
	return list, nil
}

func (s *Memory) UserCategories(userID uint) ([]models.IncomeCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]models.IncomeCategory, 0)
	for _, cat := range s.categories {
		if cat.UserID != nil && *cat.UserID == userID {
			list = append(list, cat)
		}
	}
	sortCategories(list)
	return list, nil
}

func (s *Memory) CategoryByID(id uint) (*models.IncomeCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &cat, nil
}

func (s *Memory) UserCategoryByID(id, userID uint) (*models.IncomeCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat, ok := s.categories[id]
	if !ok || cat.UserID == nil || *cat.UserID != userID {
		return nil, ErrNotFound
	}
	return &cat, nil
}

func (s *Memory) UserCategoryByName(userID uint, name string, excludeID uint) (*models.IncomeCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cat := range s.categories {
		if cat.UserID == nil || *cat.UserID != userID {
			continue
		}
		if excludeID != 0 && cat.ID == excludeID {
			continue
		}
		if strings.EqualFold(cat.Name, name) {
			return &cat, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateCategory(cat *models.IncomeCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cat.ID == 0 {
		s.categorySeq++
		cat.ID = s.categorySeq
	} else if cat.ID > s.categorySeq {
		s.categorySeq = cat.ID
	}
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	s.categories[cat.ID] = *cat
	return nil
}

func (s *Memory) UpdateCategory(cat *models.IncomeCategory, updates map[string]interface{}) (*models.IncomeCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.categories[cat.ID]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range updates {
		switch k {
		case "category_name":
			row.Name = v.(string)
		case "icon_url":
			switch u := v.(type) {
			case *string:
				row.IconURL = u
			case string:
				row.IconURL = &u
			}
		}
	}
	row.UpdatedAt = time.Now()
	s.categories[row.ID] = row
	return &row, nil
}

func (s *Memory) DeleteCategory(cat *models.IncomeCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, cat.ID)
	return nil
}

// ----- users -----

func (s *Memory) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSeq++
	u.ID = s.userSeq
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

func (s *Memory) UserByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *Memory) UserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UpdateUser(u *models.User, updates map[string]interface{}) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.users[u.ID]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range updates {
		switch k {
		case "firstname":
			row.Firstname = v.(string)
		case "lastname":
			row.Lastname = v.(string)
		case "username":
			row.Username = v.(string)
		case "hashed_password":
			row.HashedPassword = v.(string)
		}
	}
	row.UpdatedAt = time.Now()
	s.users[row.ID] = row
	return &row, nil
}
