package model

import "time"

const TableNameCalculationRecord = "calculation_records"

const (
	KindPumpCorrection = "pump_correction"
	KindPumpCurve      = "pump_curve"
	KindPumpEquivalent = "pump_equivalent"
	KindFriction       = "friction"
	KindPipelineSizing = "pipeline_sizing"
)

// CalculationRecord 一次计算的输入与结果
type CalculationRecord struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	Kind      string    `gorm:"column:kind;type:varchar(32);not null;index" json:"kind"`
	Label     string    `gorm:"column:label;type:varchar(128)" json:"label"`
	Input     string    `gorm:"column:input;type:json;not null" json:"input"`
	Output    string    `gorm:"column:output;type:json;not null" json:"output"`
	Warnings  string    `gorm:"column:warnings;type:text" json:"warnings,omitempty"`
}

func (*CalculationRecord) TableName() string {
	return TableNameCalculationRecord
}
