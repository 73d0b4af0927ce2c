package test

import (
	"time"

	"github.com/Akkadate/gdm-app-sub001/patients"
	"github.com/Akkadate/gdm-app-sub001/pointer"
	"github.com/Akkadate/gdm-app-sub001/risk"
	"github.com/Akkadate/gdm-app-sub001/test"
)

// RandomProfile returns an unassessed profile of a patient born between 18
// and 45 years before now.
func RandomProfile(now time.Time) patients.Profile {
	dob := now.AddDate(-(test.Rand.Intn(27) + 18), -test.Rand.Intn(12), -test.Rand.Intn(28))
	return patients.Profile{
		Id:       test.Faker.UUID().V4(),
		FullName: pointer.FromAny(test.Faker.Person().Name()),
		Attributes: risk.Attributes{
			DateOfBirth:           &dob,
			PrePregnancyWeight:    pointer.FromAny(test.RandomFloat(45, 110)),
			Height:                pointer.FromAny(test.RandomFloat(145, 185)),
			FamilyHistoryDiabetes: test.Faker.Bool(),
			PreviousGDM:           test.Faker.Bool(),
			PreviousMacrosomia:    test.Faker.Bool(),
		},
	}
}
