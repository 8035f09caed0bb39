package db

import "gorm.io/gorm"

type Repositories struct {
	MealRecords *MealRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		MealRecords: NewMealRecordRepository(database),
	}
}
