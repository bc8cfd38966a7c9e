package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	if err := r.db.Create(note).Error; err != nil {
		return fmt.Errorf("create note failed: %w", err)
	}
	return nil
}

func (r *NoteRepository) ListNewestFirst() ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes failed: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) GetByID(id uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query note by id failed: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Note{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count notes failed: %w", err)
	}
	return count, nil
}
