package alerts_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akkadate/gdm-app-sub001/alerts"
	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/risk"
	"github.com/Akkadate/gdm-app-sub001/test"
)

var _ = Describe("Ranker", func() {
	var ranker *alerts.Ranker
	var glucoseEvent alerts.GlucoseEvent
	var appointmentEvent alerts.AppointmentEvent

	BeforeEach(func() {
		ranker = alerts.NewRanker(config.DefaultAnalytics())
		glucoseEvent = alerts.GlucoseEvent{
			PatientId:   "patient-1",
			PatientName: test.Faker.Person().Name(),
			RiskLevel:   risk.LevelHigh,
			Date:        test.Date(2024, time.January, 5),
			Value:       152,
			ReadingType: glucose.ReadingTypePostMeal,
		}
		appointmentEvent = alerts.AppointmentEvent{
			PatientId:   "patient-2",
			PatientName: test.Faker.Person().Name(),
			RiskLevel:   risk.LevelMedium,
			Date:        test.Date(2024, time.January, 6),
		}
	})

	It("returns the most recent events first", func() {
		feed, err := ranker.Rank([]alerts.GlucoseEvent{glucoseEvent}, []alerts.AppointmentEvent{appointmentEvent}, 10)
		Expect(err).ToNot(HaveOccurred())
		Expect(feed).To(HaveLen(2))
		Expect(feed[0].Type).To(Equal(alerts.TypeAppointment))
		Expect(feed[1].Type).To(Equal(alerts.TypeGlucose))
	})

	It("truncates the feed to the limit", func() {
		feed, err := ranker.Rank([]alerts.GlucoseEvent{glucoseEvent}, []alerts.AppointmentEvent{appointmentEvent}, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(feed).To(HaveLen(1))
		Expect(feed[0].PatientId).To(Equal("patient-2"))
		Expect(feed[0].Date).To(Equal(test.Date(2024, time.January, 6)))
	})

	It("keeps glucose events before appointments on the same date", func() {
		appointmentEvent.Date = glucoseEvent.Date
		feed, err := ranker.Rank([]alerts.GlucoseEvent{glucoseEvent}, []alerts.AppointmentEvent{appointmentEvent}, 10)
		Expect(err).ToNot(HaveOccurred())
		Expect(feed[0].Type).To(Equal(alerts.TypeGlucose))
		Expect(feed[1].Type).To(Equal(alerts.TypeAppointment))
	})

	It("describes each event", func() {
		appointmentEvent.AppointmentType = "prenatal"
		feed, err := ranker.Rank([]alerts.GlucoseEvent{glucoseEvent}, []alerts.AppointmentEvent{appointmentEvent}, 10)
		Expect(err).ToNot(HaveOccurred())
		Expect(feed[0].Message).To(Equal("Missed prenatal appointment"))
		Expect(feed[1].Message).To(Equal("Post-Meal glucose of 152 mg/dL is out of range"))
		Expect(feed[1].RiskLevel).To(Equal(risk.LevelHigh))
		Expect(feed[1].PatientName).To(Equal(glucoseEvent.PatientName))
	})

	It("uses the configured limit when none is requested", func() {
		events := make([]alerts.GlucoseEvent, 15)
		for i := range events {
			events[i] = glucoseEvent
			events[i].Date = glucoseEvent.Date.AddDate(0, 0, i)
		}
		feed, err := ranker.Rank(events, nil, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(feed).To(HaveLen(10))
		Expect(feed[0].Date).To(Equal(glucoseEvent.Date.AddDate(0, 0, 14)))
	})

	It("is empty without events", func() {
		feed, err := ranker.Rank(nil, nil, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(feed).To(BeEmpty())
	})

	DescribeTable("rejects invalid glucose events",
		func(readingType glucose.ReadingType, value float64) {
			glucoseEvent.ReadingType = readingType
			glucoseEvent.Value = value

			_, err := ranker.Rank([]alerts.GlucoseEvent{glucoseEvent}, []alerts.AppointmentEvent{appointmentEvent}, 10)
			Expect(err).To(MatchError(errors.InvalidInput))
		},
		Entry("negative value", glucose.ReadingTypeFasting, -5.0),
		Entry("NaN value", glucose.ReadingTypeFasting, math.NaN()),
		Entry("unknown reading type", glucose.ReadingType("snack"), 150.0),
	)
})
