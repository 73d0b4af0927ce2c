package glucose_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/test"
)

var _ = Describe("Classifier", func() {
	var classifier *glucose.Classifier

	BeforeEach(func() {
		classifier = glucose.NewClassifier(config.DefaultAnalytics())
	})

	Describe("Bucket", func() {
		It("maps post and after to post-meal", func() {
			Expect(glucose.BucketOf("post-meal")).To(Equal(glucose.BucketPostMeal))
			Expect(glucose.BucketOf("after_lunch")).To(Equal(glucose.BucketPostMeal))
			Expect(glucose.BucketOf("fasting")).To(Equal(glucose.BucketPreMeal))
			Expect(glucose.BucketOf("bedtime")).To(Equal(glucose.BucketPreMeal))
		})
	})

	Describe("Default thresholds", func() {
		It("flags a fasting value above 95 as high", func() {
			result, err := classifier.Classify(glucose.ReadingTypeFasting, 96, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusHigh))
			Expect(result.OutOfRange).To(BeTrue())
		})

		It("accepts a fasting value below 95", func() {
			result, err := classifier.Classify(glucose.ReadingTypeFasting, 94, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusNormal))
			Expect(result.OutOfRange).To(BeFalse())
		})

		It("treats the bounds as inclusive", func() {
			result, err := classifier.Classify(glucose.ReadingTypePostMeal, 140, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.OutOfRange).To(BeFalse())

			result, err = classifier.Classify(glucose.ReadingTypePostMeal, 70, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.OutOfRange).To(BeFalse())
		})

		It("flags low values for every type", func() {
			for _, readingType := range glucose.ReadingTypes() {
				result, err := classifier.Classify(readingType, 69, nil, time.Time{})
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(glucose.StatusLow), string(readingType))
			}
		})

		It("falls back to the flat high threshold for uncovered types", func() {
			Expect(classifier.DefaultRange(glucose.ReadingTypeBedtime)).To(Equal(config.Range{Low: 70, High: 180}))

			result, err := classifier.Classify(glucose.ReadingTypePreMeal, 181, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusHigh))

			result, err = classifier.Classify(glucose.ReadingTypeBedtime, 150, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusNormal))
		})

		It("reads every bound from the configuration", func() {
			cfg := config.DefaultAnalytics()
			cfg.GlucoseThresholds.Fasting.High = 92
			cfg.GlucoseThresholds.Fallback.Low = 60
			classifier = glucose.NewClassifier(cfg)

			result, err := classifier.Classify(glucose.ReadingTypeFasting, 93, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusHigh))

			result, err = classifier.Classify(glucose.ReadingTypeBedtime, 65, nil, time.Time{})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusNormal))
		})
	})

	Describe("Patient targets", func() {
		var targets []glucose.Target

		BeforeEach(func() {
			targets = []glucose.Target{
				{TargetType: glucose.BucketPostMeal, MinValue: 80, MaxValue: 120, EffectiveDate: test.Date(2024, time.January, 1)},
				{TargetType: glucose.BucketPostMeal, MinValue: 80, MaxValue: 130, EffectiveDate: test.Date(2024, time.February, 1)},
				{TargetType: glucose.BucketPreMeal, MinValue: 75, MaxValue: 100, EffectiveDate: test.Date(2024, time.January, 1)},
			}
		})

		It("overrides the default thresholds of the bucket", func() {
			result, err := classifier.Classify(glucose.ReadingTypePostMeal, 125, targets, test.Date(2024, time.January, 20))
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusHigh))
			Expect(result.Target).ToNot(BeNil())
			Expect(result.Range).To(Equal(config.Range{Low: 80, High: 120}))
		})

		It("uses the most recent effective target", func() {
			result, err := classifier.Classify(glucose.ReadingTypePostMeal, 125, targets, test.Date(2024, time.March, 1))
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusNormal))
			Expect(result.Range.High).To(Equal(130.0))
		})

		It("applies pre-meal targets to fasting readings", func() {
			result, err := classifier.Classify(glucose.ReadingTypeFasting, 98, targets, test.Date(2024, time.March, 1))
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(glucose.StatusNormal))
		})

		It("ignores targets that are not effective yet", func() {
			result, err := classifier.Classify(glucose.ReadingTypePostMeal, 139, targets, test.Date(2023, time.December, 1))
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Target).To(BeNil())
			Expect(result.Range.High).To(Equal(140.0))
		})

		It("rejects an empty target range", func() {
			targets = []glucose.Target{{TargetType: glucose.BucketPreMeal, MinValue: 100, MaxValue: 90}}
			_, err := classifier.Classify(glucose.ReadingTypeFasting, 95, targets, time.Time{})
			Expect(err).To(MatchError(errors.InvalidInput))
		})
	})

	Describe("Validation", func() {
		It("rejects unknown reading types", func() {
			_, err := classifier.Classify("after-dinner", 100, nil, time.Time{})
			Expect(err).To(MatchError(errors.InvalidInput))
		})

		It("rejects impossible values", func() {
			for _, value := range []float64{0, -5, math.NaN(), math.Inf(1)} {
				_, err := classifier.Classify(glucose.ReadingTypeFasting, value, nil, time.Time{})
				Expect(err).To(MatchError(errors.InvalidInput))
			}
		})
	})
})
