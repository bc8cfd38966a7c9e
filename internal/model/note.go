package model

import "time"

// Note is the metadata record for one uploaded file. Filename is the stored,
// timestamp-prefixed name under the upload directory; FileSize is read back
// from the written file, never trusted from the client.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Filename  string    `gorm:"size:200;not null" json:"filename"`
	FileType  string    `gorm:"size:50;not null" json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
	FileSize  int64     `gorm:"not null" json:"file_size"`
}
