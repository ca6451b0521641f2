package models

import (
	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReplacePresets persists the engine's preset catalog, replacing the stored
// one as a whole. The engine snapshot is the source of truth for presets
// after every mutation, a wholesale swap keeps the two trivially in step.
func ReplacePresets(presets []engine.Preset) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("true").Delete(&PresetRow{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("true").Delete(&Preset{}).Error
		if err != nil {
			return err
		}

		for _, preset := range presets {
			id, err := uuid.Parse(preset.ID)
			if err != nil {
				return err
			}

			model := Preset{
				DefaultModel: DefaultModel{ID: id},
				Name:         preset.Name,
				Notes:        preset.Notes,
			}

			for position, row := range preset.Rows {
				basisID, err := uuid.Parse(row.BasisAccountID)
				if err != nil {
					return err
				}

				targetID, err := uuid.Parse(row.TargetAccountID)
				if err != nil {
					return err
				}

				model.Rows = append(model.Rows, PresetRow{
					PresetID:        id,
					Position:        position,
					BasisAccountID:  basisID,
					TargetAccountID: targetID,
				})
			}

			err = tx.Create(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// ReplaceAllocations persists the engine's allocation registry, replacing
// the stored one as a whole.
func ReplaceAllocations(allocations []engine.RatioAllocation) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("true").Delete(&TargetDatapoint{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("true").Delete(&RatioAllocation{}).Error
		if err != nil {
			return err
		}

		for _, allocation := range allocations {
			id, err := uuid.Parse(allocation.ID)
			if err != nil {
				return err
			}

			sourceID, err := uuid.Parse(allocation.SourceAccountID)
			if err != nil {
				return err
			}

			model := RatioAllocation{
				DefaultModel:             DefaultModel{ID: id},
				Name:                     allocation.Name,
				SourceAccountID:          sourceID,
				SourceAccountNumber:      allocation.SourceAccountNumber,
				SourceAccountDescription: allocation.SourceAccountDescription,
				EffectiveDate:            allocation.EffectiveDate,
				Status:                   string(allocation.Status),
			}

			for position, target := range allocation.Targets {
				presetID := uuid.Nil
				if target.PresetID != "" {
					presetID, err = uuid.Parse(target.PresetID)
					if err != nil {
						return err
					}
				}

				model.Targets = append(model.Targets, TargetDatapoint{
					RatioAllocationID: id,
					Position:          position,
					DatapointID:       target.DatapointID,
					Name:              target.Name,
					Kind:              string(target.Kind),
					PresetID:          presetID,
					MetricID:          target.RatioMetric.ID,
					MetricName:        target.RatioMetric.Name,
					MetricValue:       target.RatioMetric.Value,
					IsExclusion:       target.IsExclusion,
				})
			}

			err = tx.Create(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// AppendAuditRecords inserts the audit records of one calculation run.
// Records are never updated or deleted.
func AppendAuditRecords(records []engine.AuditRecord) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			id, err := uuid.Parse(record.ID)
			if err != nil {
				return err
			}

			allocationID, err := uuid.Parse(record.AllocationID)
			if err != nil {
				return err
			}

			sourceID, err := uuid.Parse(record.SourceAccountID)
			if err != nil {
				return err
			}

			model := AuditRecord{
				DefaultModel:    DefaultModel{ID: id},
				AllocationID:    allocationID,
				AllocationName:  record.AllocationName,
				SourceAccountID: sourceID,
				PeriodID:        record.PeriodID,
				RunAt:           record.RunAt,
				SourceAmount:    record.SourceAmount,
				BasisTotal:      record.BasisTotal,
			}

			if record.Adjustment != nil {
				model.AdjustmentTarget = record.Adjustment.TargetID
				model.AdjustmentAmount = decimal.NewNullDecimal(record.Adjustment.Amount)
			}

			for position, target := range record.Targets {
				model.Targets = append(model.Targets, AuditTarget{
					AuditRecordID:  id,
					Position:       position,
					TargetID:       target.TargetID,
					BasisAccountID: target.BasisAccountID,
					BasisValue:     target.BasisValue,
					Value:          target.Value,
					Percentage:     target.Percentage,
				})
			}

			err = tx.Create(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// SelectPeriod marks one reporting period as the selected one, creating it
// if the system of record has not delivered it yet.
func SelectPeriod(period types.Period) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&ReportingPeriod{}).Where("selected", true).Update("selected", false).Error
		if err != nil {
			return err
		}

		var row ReportingPeriod
		err = tx.Where(&ReportingPeriod{Period: period}).FirstOrCreate(&row).Error
		if err != nil {
			return err
		}

		return tx.Model(&ReportingPeriod{}).Where("period", period).Update("selected", true).Error
	})
}
