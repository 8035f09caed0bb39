package api

import (
	"bytes"
	"encoding/json"

	"github.com/terraincognita07/mealtally/internal/services"
)

// count accepts any JSON value and never fails to decode; see
// services.CoerceInt for the conversion rules.
type count int

func (value *count) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		*value = 0
		return nil
	}
	*value = count(services.CoerceInt(decoded))
	return nil
}

type mealRecordPayload struct {
	Date         string  `json:"date"`
	Meal         string  `json:"meal"`
	WholeGrains  count   `json:"whole_grains"`
	Vegetables   count   `json:"vegetables"`
	ProteinLow   count   `json:"protein_low"`
	ProteinMed   count   `json:"protein_med"`
	ProteinHigh  count   `json:"protein_high"`
	ProteinXHigh count   `json:"protein_xhigh"`
	JunkFood     count   `json:"junk_food"`
	Note         *string `json:"note"`
	ImageURL     *string `json:"image_url"`
}

func (payload mealRecordPayload) recordInput() services.RecordInput {
	return services.RecordInput{
		Date: payload.Date,
		Meal: payload.Meal,
		Counts: services.MealCounts{
			WholeGrains:  int(payload.WholeGrains),
			Vegetables:   int(payload.Vegetables),
			ProteinLow:   int(payload.ProteinLow),
			ProteinMed:   int(payload.ProteinMed),
			ProteinHigh:  int(payload.ProteinHigh),
			ProteinXHigh: int(payload.ProteinXHigh),
			JunkFood:     int(payload.JunkFood),
		},
		Note:     payload.Note,
		ImageURL: payload.ImageURL,
	}
}
