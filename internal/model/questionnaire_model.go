package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Questionnaire struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Answers     datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	Completed   bool           `gorm:"default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Questionnaire) TableName() string {
	return "questionnaires"
}
