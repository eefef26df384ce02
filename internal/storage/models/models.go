package models

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobRecord 岗位表，HR发布的岗位持久化到MySQL时使用
type JobRecord struct {
	ID              string         `gorm:"type:char(36);primaryKey"`
	HRID            string         `gorm:"type:varchar(64);index"`
	Position        string         `gorm:"type:varchar(255);not null"`
	Company         string         `gorm:"type:varchar(255)"`
	Location        string         `gorm:"type:varchar(255)"`
	Description     string         `gorm:"type:text"`
	Requirements    datatypes.JSON `gorm:"comment:技能要求数组"`
	ExperienceLevel string         `gorm:"type:varchar(64)"`
	Remote          bool
	DatePosted      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName 指定表名
func (JobRecord) TableName() string {
	return "job_postings"
}

// BeforeCreate 生成时间有序的UUID主键
func (j *JobRecord) BeforeCreate(_ *gorm.DB) error {
	if j.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		j.ID = id.String()
	}
	return nil
}
