package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/dashboard"
	dashboardTest "github.com/Akkadate/gdm-app-sub001/dashboard/test"
	"github.com/Akkadate/gdm-app-sub001/engine"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	glucoseTest "github.com/Akkadate/gdm-app-sub001/glucose/test"
	"github.com/Akkadate/gdm-app-sub001/patients"
	patientsTest "github.com/Akkadate/gdm-app-sub001/patients/test"
)

var _ = Describe("Dependencies", func() {
	BeforeEach(func() {
		for _, key := range []string{"GDM_LOG_LEVEL", "GDM_TIMEZONE", "GDM_ANALYTICS_CONFIG"} {
			GinkgoT().Setenv(key, "")
		}
	})

	It("provides the analytics components", func() {
		var components engine.Components
		app := fxtest.New(GinkgoT(),
			append(engine.Dependencies(), fx.Invoke(func(c engine.Components) { components = c }))...,
		)
		app.RequireStart()
		defer app.RequireStop()

		Expect(components.Analytics.AlertFeedLimit).To(Equal(10))
		Expect(components.Assessor).ToNot(BeNil())
		Expect(components.Classifier).ToNot(BeNil())
		Expect(components.Compliance).ToNot(BeNil())
		Expect(components.Statistics).ToNot(BeNil())
		Expect(components.Ranker).ToNot(BeNil())
	})

	It("fails on an invalid timezone", func() {
		GinkgoT().Setenv("GDM_TIMEZONE", "Mars/Olympus_Mons")

		app := fx.New(append(engine.Dependencies(), fx.NopLogger, fx.Invoke(func(config.Clock) {}))...)
		Expect(app.Err()).To(HaveOccurred())
	})

	It("provides the services when repositories are supplied", func() {
		ctrl := gomock.NewController(GinkgoT())
		var patientsService patients.Service
		var readingsService glucose.Service
		var dashboardService dashboard.Service

		app := fxtest.New(GinkgoT(),
			append(engine.Dependencies(),
				engine.ServicesModule,
				fx.Provide(
					func() patients.Repository { return patientsTest.NewMockRepository(ctrl) },
					func() glucose.Repository { return glucoseTest.NewMockRepository(ctrl) },
					func() glucose.TargetRepository { return glucoseTest.NewMockTargetRepository(ctrl) },
					func() dashboard.PatientRepository { return dashboardTest.NewMockPatientRepository(ctrl) },
					func() dashboard.AppointmentRepository { return dashboardTest.NewMockAppointmentRepository(ctrl) },
					func() dashboard.ReadingRepository { return dashboardTest.NewMockReadingRepository(ctrl) },
				),
				fx.Populate(&patientsService, &readingsService, &dashboardService),
			)...,
		)
		app.RequireStart()
		defer app.RequireStop()

		Expect(patientsService).ToNot(BeNil())
		Expect(readingsService).ToNot(BeNil())
		Expect(dashboardService).ToNot(BeNil())
	})
})
