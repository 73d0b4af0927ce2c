package glucose_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	glucoseTest "github.com/Akkadate/gdm-app-sub001/glucose/test"
	"github.com/Akkadate/gdm-app-sub001/pointer"
	"github.com/Akkadate/gdm-app-sub001/test"
)

var _ = Describe("Readings Service", func() {
	var service glucose.Service
	var repo *glucoseTest.MockRepository
	var targets *glucoseTest.MockTargetRepository
	var ctrl *gomock.Controller
	var reading glucose.Reading

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = glucoseTest.NewMockRepository(ctrl)
		targets = glucoseTest.NewMockTargetRepository(ctrl)

		var err error
		service, err = glucose.NewService(glucose.NewClassifier(config.DefaultAnalytics()), repo, targets, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())

		reading = glucoseTest.RandomReading()
		reading.ReadingType = glucose.ReadingTypeFasting
		reading.GlucoseValue = 90
		reading.OutOfRange = true
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Create", func() {
		It("stores the recomputed flag", func() {
			targets.EXPECT().ListTargets(gomock.Any(), gomock.Eq(reading.PatientId)).Return(nil, nil)
			repo.EXPECT().
				Create(gomock.Any(), test.Match(func(r glucose.Reading) bool { return !r.OutOfRange })).
				DoAndReturn(func(_ context.Context, r glucose.Reading) (*glucose.Reading, error) {
					return &r, nil
				})

			created, err := service.Create(context.Background(), reading)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.OutOfRange).To(BeFalse())
		})

		It("flags values above the target", func() {
			reading.GlucoseValue = 150
			reading.OutOfRange = false
			targets.EXPECT().ListTargets(gomock.Any(), gomock.Any()).Return(nil, nil)
			repo.EXPECT().
				Create(gomock.Any(), test.Match(func(r glucose.Reading) bool { return r.OutOfRange })).
				DoAndReturn(func(_ context.Context, r glucose.Reading) (*glucose.Reading, error) {
					return &r, nil
				})

			created, err := service.Create(context.Background(), reading)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.OutOfRange).To(BeTrue())
		})

		It("does not store invalid readings", func() {
			reading.ReadingType = "snack"
			targets.EXPECT().ListTargets(gomock.Any(), gomock.Any()).Return(nil, nil)

			_, err := service.Create(context.Background(), reading)
			Expect(err).To(MatchError(errors.InvalidInput))
		})

		It("requires a patient", func() {
			reading.PatientId = ""
			_, err := service.Create(context.Background(), reading)
			Expect(err).To(MatchError(errors.InvalidInput))
		})

		It("propagates repository errors unchanged", func() {
			failure := fmt.Errorf("connection refused")
			targets.EXPECT().ListTargets(gomock.Any(), gomock.Any()).Return(nil, failure)

			_, err := service.Create(context.Background(), reading)
			Expect(err).To(Equal(failure))
		})
	})

	Describe("Update", func() {
		var id string

		BeforeEach(func() {
			id = reading.Id.Hex()
			reading.OutOfRange = false
			repo.EXPECT().Get(gomock.Any(), gomock.Eq(id)).Return(&reading, nil)
			targets.EXPECT().ListTargets(gomock.Any(), gomock.Any()).Return(nil, nil)
		})

		It("reclassifies when the value changes", func() {
			repo.EXPECT().
				Update(gomock.Any(), gomock.Eq(id), test.Match(func(r glucose.Reading) bool {
					return r.GlucoseValue == 100 && r.OutOfRange
				})).
				DoAndReturn(func(_ context.Context, _ string, r glucose.Reading) (*glucose.Reading, error) {
					return &r, nil
				})

			updated, err := service.Update(context.Background(), id, glucose.ReadingUpdate{GlucoseValue: pointer.FromAny(100.0)})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.OutOfRange).To(BeTrue())
		})

		It("reclassifies when the type changes", func() {
			reading.GlucoseValue = 120
			readingType := glucose.ReadingTypePostMeal
			repo.EXPECT().
				Update(gomock.Any(), gomock.Eq(id), test.Match(func(r glucose.Reading) bool {
					return r.ReadingType == glucose.ReadingTypePostMeal && !r.OutOfRange
				})).
				DoAndReturn(func(_ context.Context, _ string, r glucose.Reading) (*glucose.Reading, error) {
					return &r, nil
				})

			updated, err := service.Update(context.Background(), id, glucose.ReadingUpdate{ReadingType: &readingType})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.OutOfRange).To(BeFalse())
		})

		It("keeps notes updates consistent with the stored value", func() {
			reading.GlucoseValue = 130
			notes := "after a walk"
			repo.EXPECT().
				Update(gomock.Any(), gomock.Eq(id), test.Match(func(r glucose.Reading) bool {
					return r.OutOfRange && *r.Notes == notes
				})).
				DoAndReturn(func(_ context.Context, _ string, r glucose.Reading) (*glucose.Reading, error) {
					return &r, nil
				})

			_, err := service.Update(context.Background(), id, glucose.ReadingUpdate{Notes: &notes})
			Expect(err).ToNot(HaveOccurred())
		})
	})
})
