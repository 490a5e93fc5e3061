package service

import (
	"context"
	"fmt"
	"strings"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They mimic the store contract the services
// rely on: auto-assigned ids, gorm.ErrRecordNotFound on misses and
// gorm.ErrDuplicatedKey when the (user, work) unique index would fire.

type fakeRatingRepo struct {
	ratings map[int64]models.Rating
	nextID  int64
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[int64]models.Rating), nextID: 1}
}

func (f *fakeRatingRepo) Create(_ context.Context, rating *models.Rating) error {
	for _, r := range f.ratings {
		if r.UserID == rating.UserID && r.WorkID == rating.WorkID {
			return fmt.Errorf("create rating: %w", gorm.ErrDuplicatedKey)
		}
	}
	rating.ID = f.nextID
	f.nextID++
	f.ratings[rating.ID] = *rating
	return nil
}

func (f *fakeRatingRepo) Save(_ context.Context, rating *models.Rating) error {
	for _, r := range f.ratings {
		if r.ID != rating.ID && r.UserID == rating.UserID && r.WorkID == rating.WorkID {
			return fmt.Errorf("save rating: %w", gorm.ErrDuplicatedKey)
		}
	}
	f.ratings[rating.ID] = *rating
	return nil
}

func (f *fakeRatingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.ratings[id]; !ok {
		return fmt.Errorf("delete rating: %w", gorm.ErrRecordNotFound)
	}
	delete(f.ratings, id)
	return nil
}

func (f *fakeRatingRepo) FindByID(_ context.Context, id int64) (*models.Rating, error) {
	r, ok := f.ratings[id]
	if !ok {
		return nil, fmt.Errorf("find rating: %w", gorm.ErrRecordNotFound)
	}
	return &r, nil
}

func (f *fakeRatingRepo) GetAll(_ context.Context) ([]models.Rating, error) {
	out := make([]models.Rating, 0, len(f.ratings))
	for id := int64(1); id < f.nextID; id++ {
		if r, ok := f.ratings[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) GetByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	all, _ := f.GetAll(ctx)
	out := make([]models.Rating, 0)
	for _, r := range all {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) List(ctx context.Context, q dto.RatingListQuery) ([]models.Rating, int64, error) {
	all, _ := f.GetAll(ctx)
	filtered := make([]models.Rating, 0, len(all))
	for _, r := range all {
		if q.Status != nil && r.Status != *q.Status {
			continue
		}
		if q.WorkID != nil && r.WorkID != *q.WorkID {
			continue
		}
		if q.UserID != nil && r.UserID != *q.UserID {
			continue
		}
		filtered = append(filtered, r)
	}
	total := int64(len(filtered))
	start := (q.Page - 1) * q.PageSize
	if start >= len(filtered) {
		return []models.Rating{}, total, nil
	}
	end := start + q.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

type fakeDimensionRepo struct {
	dimensions []models.RatingDimension
}

func (f *fakeDimensionRepo) Create(_ context.Context, dim *models.RatingDimension) error {
	dim.ID = int64(len(f.dimensions) + 1)
	f.dimensions = append(f.dimensions, *dim)
	return nil
}

func (f *fakeDimensionRepo) Save(_ context.Context, dim *models.RatingDimension) error {
	for i := range f.dimensions {
		if f.dimensions[i].ID == dim.ID {
			f.dimensions[i] = *dim
			return nil
		}
	}
	return fmt.Errorf("save dimension: %w", gorm.ErrRecordNotFound)
}

func (f *fakeDimensionRepo) Delete(_ context.Context, id int64) error {
	for i := range f.dimensions {
		if f.dimensions[i].ID == id {
			f.dimensions = append(f.dimensions[:i], f.dimensions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete dimension: %w", gorm.ErrRecordNotFound)
}

func (f *fakeDimensionRepo) FindByID(_ context.Context, id int64) (*models.RatingDimension, error) {
	for _, d := range f.dimensions {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("find dimension: %w", gorm.ErrRecordNotFound)
}

func (f *fakeDimensionRepo) GetAll(_ context.Context) ([]models.RatingDimension, error) {
	return append([]models.RatingDimension(nil), f.dimensions...), nil
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)
		}
	}
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) Save(_ context.Context, user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return fmt.Errorf("save user: %w", gorm.ErrRecordNotFound)
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete user: %w", gorm.ErrRecordNotFound)
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("find user: %w", gorm.ErrRecordNotFound)
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("find user: %w", gorm.ErrRecordNotFound)
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) List(_ context.Context, q dto.UserListQuery) ([]models.User, int64, error) {
	filtered := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		if q.Username != "" && !strings.Contains(strings.ToLower(u.Username), strings.ToLower(q.Username)) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered, int64(len(filtered)), nil
}

type fakeWorkRepo struct {
	works []models.Work
}

func (f *fakeWorkRepo) Create(_ context.Context, work *models.Work) error {
	work.ID = int64(len(f.works) + 1)
	f.works = append(f.works, *work)
	return nil
}

func (f *fakeWorkRepo) Save(_ context.Context, work *models.Work) error {
	for i := range f.works {
		if f.works[i].ID == work.ID {
			f.works[i] = *work
			return nil
		}
	}
	return fmt.Errorf("save work: %w", gorm.ErrRecordNotFound)
}

func (f *fakeWorkRepo) Delete(_ context.Context, id int64) error {
	for i := range f.works {
		if f.works[i].ID == id {
			f.works = append(f.works[:i], f.works[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete work: %w", gorm.ErrRecordNotFound)
}

func (f *fakeWorkRepo) FindByID(_ context.Context, id int64) (*models.Work, error) {
	for _, w := range f.works {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, fmt.Errorf("find work: %w", gorm.ErrRecordNotFound)
}

func (f *fakeWorkRepo) GetAll(_ context.Context) ([]models.Work, error) {
	return append([]models.Work(nil), f.works...), nil
}

func (f *fakeWorkRepo) List(_ context.Context, q dto.WorkListQuery) ([]models.Work, int64, error) {
	filtered := make([]models.Work, 0, len(f.works))
	for _, w := range f.works {
		if q.Title != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(q.Title)) {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered, int64(len(filtered)), nil
}
