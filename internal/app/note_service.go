package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/model"
	"portfolio/internal/pkg/filename"
	"portfolio/internal/repository"
)

var (
	ErrNoFile       = errors.New("no file selected")
	ErrFileType     = errors.New("invalid file type")
	ErrNoteNotFound = errors.New("note not found")
	ErrFileMissing  = errors.New("stored file missing")
)

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// NoteService owns the upload directory: it validates, renames and writes
// uploaded files, then records their metadata.
type NoteService struct {
	noteRepo  *repository.NoteRepository
	uploadDir string
	logger    *zap.Logger
}

type UploadNoteInput struct {
	OriginalName string
	Title        string
	Content      io.Reader
}

func NewNoteService(noteRepo *repository.NoteRepository, uploadDir string, logger *zap.Logger) *NoteService {
	return &NoteService{
		noteRepo:  noteRepo,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// Upload validates the file, writes it under a collision-free name and
// creates the Note row. Validation failures leave no trace on disk or in
// the database.
func (s *NoteService) Upload(input UploadNoteInput) (*model.Note, error) {
	original := strings.TrimSpace(input.OriginalName)
	if input.Content == nil || original == "" {
		return nil, ErrNoFile
	}

	ext := filename.Ext(original)
	if !allowedExtensions[ext] {
		return nil, ErrFileType
	}

	safe := filename.Sanitize(original)
	if safe == "" {
		return nil, ErrNoFile
	}

	// Timestamp prefix keeps stored names unique across uploads; O_EXCL plus
	// a counter covers two uploads of the same name in the same second.
	prefix := time.Now().Format("20060102_150405_")
	stored := prefix + safe
	path := filepath.Join(s.uploadDir, stored)
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	for i := 1; errors.Is(err, os.ErrExist); i++ {
		stored = fmt.Sprintf("%s%d_%s", prefix, i, safe)
		path = filepath.Join(s.uploadDir, stored)
		out, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return nil, fmt.Errorf("create upload file failed: %w", err)
	}
	if _, err := io.Copy(out, input.Content); err != nil {
		out.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file failed: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close upload file failed: %w", err)
	}

	// Size comes from the written file, not from the client.
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat upload file failed: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = safe
	}

	note := &model.Note{
		Title:    title,
		Filename: stored,
		FileType: ext,
		FileSize: info.Size(),
	}
	if err := s.noteRepo.Create(note); err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	s.logger.Info("note uploaded",
		zap.String("filename", stored),
		zap.Int64("size", note.FileSize),
	)
	return note, nil
}

func (s *NoteService) ListNotes() ([]model.Note, error) {
	return s.noteRepo.ListNewestFirst()
}

// Resolve returns the note and the on-disk path of its stored file.
func (s *NoteService) Resolve(id uint) (*model.Note, string, error) {
	if id == 0 {
		return nil, "", ErrNoteNotFound
	}
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if note == nil {
		return nil, "", ErrNoteNotFound
	}

	path := filepath.Join(s.uploadDir, note.Filename)
	if _, err := os.Stat(path); err != nil {
		return nil, "", ErrFileMissing
	}
	return note, path, nil
}
