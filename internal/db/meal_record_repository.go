package db

import (
	"github.com/terraincognita07/mealtally/internal/models"
	"gorm.io/gorm"
)

const sumByDateSQL = `
SELECT
  COALESCE(SUM(whole_grains), 0) AS whole_grains,
  COALESCE(SUM(vegetables), 0) AS vegetables,
  COALESCE(SUM(protein_low + protein_med + protein_high + protein_xhigh), 0) AS protein_total,
  COALESCE(SUM(junk_food), 0) AS junk_food
FROM meal_records
WHERE date = ?`

type MealRecordRepository struct {
	database *gorm.DB
}

func NewMealRecordRepository(database *gorm.DB) *MealRecordRepository {
	return &MealRecordRepository{database: database}
}

func (repo *MealRecordRepository) Create(record *models.MealRecord) error {
	return repo.database.Create(record).Error
}

func (repo *MealRecordRepository) List(query models.MealRecordQuery) ([]models.MealRecord, error) {
	statement := repo.database.Model(&models.MealRecord{})
	if query.Date != nil {
		statement = statement.Where("date = ?", *query.Date)
	} else {
		if query.From != nil {
			statement = statement.Where("date >= ?", *query.From)
		}
		if query.To != nil {
			statement = statement.Where("date <= ?", *query.To)
		}
	}

	direction := "DESC"
	if query.Ascending {
		direction = "ASC"
	}

	records := make([]models.MealRecord, 0)
	if err := statement.
		Order("created_at " + direction).
		Order("id " + direction).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *MealRecordRepository) ListBetween(from *models.CalendarDate, to *models.CalendarDate) ([]models.MealRecord, error) {
	statement := repo.database.Model(&models.MealRecord{})
	if from != nil {
		statement = statement.Where("date >= ?", *from)
	}
	if to != nil {
		statement = statement.Where("date <= ?", *to)
	}

	records := make([]models.MealRecord, 0)
	if err := statement.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// SumByDate never returns null sums; a day without rows is all zeros.
func (repo *MealRecordRepository) SumByDate(date models.CalendarDate) (models.DailySummary, error) {
	summary := models.DailySummary{}
	if err := repo.database.Raw(sumByDateSQL, date).Scan(&summary).Error; err != nil {
		return models.DailySummary{}, err
	}
	summary.Date = date
	return summary, nil
}
