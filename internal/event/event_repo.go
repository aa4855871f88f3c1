package event

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=event_repo.go -destination=mock/event_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *EventRecord) error
	FindAllAscending(ctx context.Context) ([]EventRecord, error)
	FindByID(ctx context.Context, id string) (*EventRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, rec *EventRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindAllAscending returns the whole log in replay order: timestamp first,
// append order as the tie-break.
func (r *repository) FindAllAscending(ctx context.Context) ([]EventRecord, error) {
	var recs []EventRecord
	err := r.db.WithContext(ctx).
		Order("timestamp ASC").
		Order("seq ASC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*EventRecord, error) {
	var rec EventRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
