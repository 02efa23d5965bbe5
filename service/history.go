package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"hydrocalc/hydraulics"
	"hydrocalc/model"
	"hydrocalc/pkg/logger"

	"gorm.io/plugin/dbresolver"
)

const (
	batchSize           = 400
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

func newRecord(kind, label string, input, output any, warnings []hydraulics.OutOfRangeWarning) (*model.CalculationRecord, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(output)
	if err != nil {
		return nil, err
	}
	msgs := make([]string, 0, len(warnings))
	for _, w := range warnings {
		msgs = append(msgs, w.String())
	}
	return &model.CalculationRecord{
		Kind:     kind,
		Label:    label,
		Input:    string(in),
		Output:   string(out),
		Warnings: strings.Join(msgs, "; "),
	}, nil
}

// save 写入计算记录，失败只记录日志，不影响计算结果
func (s *Service) save(kind, label string, input, output any, warnings []hydraulics.OutOfRangeWarning) {
	if s.db == nil {
		return
	}
	rec, err := newRecord(kind, label, input, output, warnings)
	if err != nil {
		logger.Logger.Errorf("encode %s record failed: %v", kind, err)
		return
	}
	if err = s.db.Create(rec).Error; err != nil {
		logger.Logger.Errorf("save %s record failed: %v", kind, err)
	}
}

func (s *Service) saveBatch(records []model.CalculationRecord) (int, error) {
	if s.db == nil || len(records) == 0 {
		return 0, nil
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var saved int
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		batch := records[start:end]
		if err := tx.Create(&batch).Error; err != nil {
			tx.Rollback()
			return saved, fmt.Errorf("insert batch %d: %w", start/batchSize+1, err)
		}
		saved += len(batch)
	}

	if err := tx.Commit().Error; err != nil {
		return saved, fmt.Errorf("commit: %w", err)
	}
	return saved, nil
}

// ListHistory returns the latest records, newest first. kind may be empty.
func (s *Service) ListHistory(kind string, limit int) ([]model.CalculationRecord, error) {
	if s.db == nil {
		return []model.CalculationRecord{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	q := s.db.Clauses(dbresolver.Read).Model(&model.CalculationRecord{})
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	var records []model.CalculationRecord
	if err := q.Order("id DESC").Limit(limit).Find(&records).Error; err != nil {
		logger.Logger.Errorf("query history failed: %v", err)
		return nil, err
	}
	return records, nil
}
