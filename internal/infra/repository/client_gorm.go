package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Escopo (admin vê tudo, funcionário só os seus)
// --------------------------------------------------

func scoped(db *gorm.DB, scope domain.Scope) *gorm.DB {
	if scope.OwnerID != nil {
		return db.Where("user_id = ?", *scope.OwnerID)
	}
	return db
}

// --------------------------------------------------
// Listagem
// --------------------------------------------------

func (r *ClientGormRepository) List(
	ctx context.Context,
	q domain.Query,
) ([]models.Client, error) {

	tx := scoped(r.db.WithContext(ctx).Model(&models.Client{}), q.Scope)

	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + search + "%"
		tx = tx.Where(
			"name LIKE ? OR house_address LIKE ? OR register_address LIKE ? OR notes LIKE ?",
			like, like, like, like,
		)
	}

	if !q.DueFrom.IsZero() && !q.DueTo.IsZero() {
		tx = tx.Where("next_follow >= ? AND next_follow < ?", q.DueFrom.UTC(), q.DueTo.UTC())
	}

	var clients []models.Client
	if err := tx.Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientGormRepository) CountDue(
	ctx context.Context,
	scope domain.Scope,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	if err := scoped(r.db.WithContext(ctx).Model(&models.Client{}), scope).
		Where("next_follow >= ? AND next_follow < ?", from.UTC(), to.UTC()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count due clients: %w", err)
	}
	return count, nil
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *ClientGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
