package models

import "time"

// File is the metadata row for an uploaded attachment. The blob itself lives
// on disk under the configured storage directory as Filename; OriginalName is
// what the uploader called it. Only PDF uploads are accepted.
type File struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Filename     string    `json:"filename" gorm:"uniqueIndex;not null"`
	OriginalName string    `json:"originalName" gorm:"not null"`
	Size         int64     `json:"size"`
	Mimetype     string    `json:"mimetype"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (File) TableName() string {
	return "files"
}
