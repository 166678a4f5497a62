package models

import "gorm.io/datatypes"

type RequestTypeModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"uniqueIndex;size:100;not null"`
	Schema            datatypes.JSON
	DefaultSLAMinutes *int
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (RequestTypeModel) TableName() string {
	return "request_types"
}
