package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/test"
)

func RandomReadingType() glucose.ReadingType {
	types := glucose.ReadingTypes()
	return types[test.Rand.Intn(len(types))]
}

func RandomReading() glucose.Reading {
	id := primitive.NewObjectID()
	notes := test.Faker.Lorem().Sentence(5)
	return glucose.Reading{
		Id:           &id,
		PatientId:    test.Faker.UUID().V4(),
		ReadingDate:  test.Date(2024, time.January, test.Rand.Intn(28)+1),
		ReadingTime:  time.Date(0, 1, 1, test.Rand.Intn(24), test.Rand.Intn(60), 0, 0, time.UTC).Format("15:04"),
		ReadingType:  RandomReadingType(),
		GlucoseValue: test.RandomFloat(60, 200),
		Notes:        &notes,
	}
}

// ReadingOn builds a reading of the given type and value on a calendar day.
func ReadingOn(day time.Time, readingType glucose.ReadingType, value float64) glucose.Reading {
	return glucose.Reading{
		PatientId:    "patient",
		ReadingDate:  day,
		ReadingType:  readingType,
		GlucoseValue: value,
	}
}
