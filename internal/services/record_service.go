package services

import "github.com/terraincognita07/mealtally/internal/models"

type MealCounts struct {
	WholeGrains  int
	Vegetables   int
	ProteinLow   int
	ProteinMed   int
	ProteinHigh  int
	ProteinXHigh int
	JunkFood     int
}

// RecordInput is a decoded write request. Counts are already coerced; Date is
// still raw.
type RecordInput struct {
	Date     string
	Meal     string
	Counts   MealCounts
	Note     *string
	ImageURL *string
}

type MealRecordRepository interface {
	Create(record *models.MealRecord) error
	List(query models.MealRecordQuery) ([]models.MealRecord, error)
	ListBetween(from *models.CalendarDate, to *models.CalendarDate) ([]models.MealRecord, error)
	SumByDate(date models.CalendarDate) (models.DailySummary, error)
}

type RecordService struct {
	records MealRecordRepository
}

func NewRecordService(records MealRecordRepository) *RecordService {
	return &RecordService{records: records}
}

func (service *RecordService) Create(input RecordInput) (models.MealRecord, error) {
	if input.Date == "" || input.Meal == "" {
		return models.MealRecord{}, ErrDateAndMealRequired
	}
	date, err := NormalizeDate(input.Date)
	if err != nil {
		return models.MealRecord{}, err
	}

	record := models.MealRecord{
		Date:         date,
		Meal:         input.Meal,
		WholeGrains:  input.Counts.WholeGrains,
		Vegetables:   input.Counts.Vegetables,
		ProteinLow:   input.Counts.ProteinLow,
		ProteinMed:   input.Counts.ProteinMed,
		ProteinHigh:  input.Counts.ProteinHigh,
		ProteinXHigh: input.Counts.ProteinXHigh,
		JunkFood:     input.Counts.JunkFood,
		Note:         input.Note,
		ImageURL:     input.ImageURL,
	}
	if err := service.records.Create(&record); err != nil {
		return models.MealRecord{}, &StoreError{Op: "insert meal record", Err: err}
	}
	return record, nil
}

func (service *RecordService) List(raw ListQuery) ([]models.MealRecord, error) {
	query, err := ParseListQuery(raw)
	if err != nil {
		return nil, err
	}
	if query.Limit == 0 {
		return []models.MealRecord{}, nil
	}

	records, err := service.records.List(query)
	if err != nil {
		return nil, &StoreError{Op: "list meal records", Err: err}
	}
	return records, nil
}

func (service *RecordService) Summary(rawDate string) (models.DailySummary, error) {
	if rawDate == "" {
		return models.DailySummary{}, ErrDateRequired
	}
	date, err := NormalizeDate(rawDate)
	if err != nil {
		return models.DailySummary{}, err
	}

	summary, err := service.records.SumByDate(date)
	if err != nil {
		return models.DailySummary{}, &StoreError{Op: "summarize meal records", Err: err}
	}
	summary.Date = date
	return summary, nil
}

func (service *RecordService) Export(rawFrom string, rawTo string) ([]models.MealRecord, error) {
	from, to, err := ParseExportRange(rawFrom, rawTo)
	if err != nil {
		return nil, err
	}

	records, err := service.records.ListBetween(from, to)
	if err != nil {
		return nil, &StoreError{Op: "export meal records", Err: err}
	}
	return records, nil
}
