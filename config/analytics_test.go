package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/test"
)

var _ = Describe("Analytics", func() {
	Describe("DefaultAnalytics", func() {
		It("is valid", func() {
			Expect(config.DefaultAnalytics().Validate()).To(Succeed())
		})

		It("resolves unset thresholds through the fallback", func() {
			thresholds := config.DefaultAnalytics().GlucoseThresholds
			Expect(thresholds.Resolve(thresholds.PreMeal)).To(Equal(config.Range{Low: 70, High: 180}))
			Expect(thresholds.Resolve(thresholds.Fasting)).To(Equal(config.Range{Low: 70, High: 95}))
		})
	})

	Describe("LoadAnalytics", func() {
		It("merges overrides onto the defaults", func() {
			overrides, err := test.LoadFixture("test/fixtures/analytics.json")
			Expect(err).ToNot(HaveOccurred())

			analytics, err := config.LoadAnalytics(overrides)
			Expect(err).ToNot(HaveOccurred())
			Expect(analytics.GlucoseThresholds.Fasting).To(Equal(config.Range{Low: 70, High: 92}))
			Expect(analytics.GlucoseThresholds.Bedtime).To(Equal(config.Range{Low: 80, High: 160}))
			Expect(analytics.GlucoseThresholds.PostMeal).To(Equal(config.Range{Low: 70, High: 140}))
			Expect(analytics.RiskWeights.PreviousGDM).To(Equal(4))
			Expect(analytics.RiskWeights.FamilyHistory).To(Equal(1))
			Expect(analytics.ComplianceWindowDays).To(Equal(7))
			Expect(analytics.AlertFeedLimit).To(Equal(10))
		})

		It("returns the defaults for an empty document", func() {
			analytics, err := config.LoadAnalytics(nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(analytics).To(Equal(config.DefaultAnalytics()))
		})

		It("expands dotted keys", func() {
			analytics, err := config.LoadAnalytics([]byte(`{"glucoseThresholds.postMeal.high": 120, "riskTiers.high": 4}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(analytics.GlucoseThresholds.PostMeal.High).To(Equal(120.0))
			Expect(analytics.RiskTiers.High).To(Equal(4))
		})

		It("rejects unknown options", func() {
			_, err := config.LoadAnalytics([]byte(`{"riskWeights": {"smoking": 2}}`))
			Expect(err).To(MatchError(errors.InvalidInput))
		})

		It("rejects invalid json", func() {
			_, err := config.LoadAnalytics([]byte(`{"riskWeights": `))
			Expect(err).To(MatchError(errors.InvalidInput))
		})

		It("rejects empty ranges", func() {
			_, err := config.LoadAnalytics([]byte(`{"glucoseThresholds.fasting.low": 100}`))
			Expect(err).To(MatchError(errors.InvalidInput))
		})

		It("rejects negative weights", func() {
			_, err := config.LoadAnalytics([]byte(`{"riskWeights.age35plus": -1}`))
			Expect(err).To(MatchError(errors.InvalidInput))
		})

		It("rejects inverted tiers", func() {
			_, err := config.LoadAnalytics([]byte(`{"riskTiers": {"medium": 5, "high": 3}}`))
			Expect(err).To(MatchError(errors.InvalidInput))
		})
	})

	Describe("NewAnalytics", func() {
		It("returns the defaults when no file is configured", func() {
			analytics, err := config.NewAnalytics(config.New())
			Expect(err).ToNot(HaveOccurred())
			Expect(analytics).To(Equal(config.DefaultAnalytics()))
		})

		It("loads the configured file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "analytics.json")
			Expect(os.WriteFile(path, []byte(`{"alertFeedLimit": 25}`), 0o600)).To(Succeed())

			cfg := config.New()
			cfg.AnalyticsConfigPath = path
			analytics, err := config.NewAnalytics(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(analytics.AlertFeedLimit).To(Equal(25))
		})

		It("fails when the file is missing", func() {
			cfg := config.New()
			cfg.AnalyticsConfigPath = filepath.Join(GinkgoT().TempDir(), "missing.json")
			_, err := config.NewAnalytics(cfg)
			Expect(err).To(HaveOccurred())
		})
	})
})
