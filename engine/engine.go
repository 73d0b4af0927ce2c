// Package engine binds the configuration, the logger and the analytics
// components into a single dependency graph.
package engine

import (
	"go.uber.org/fx"

	"github.com/Akkadate/gdm-app-sub001/alerts"
	"github.com/Akkadate/gdm-app-sub001/compliance"
	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/dashboard"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/logger"
	"github.com/Akkadate/gdm-app-sub001/patients"
	"github.com/Akkadate/gdm-app-sub001/risk"
	"github.com/Akkadate/gdm-app-sub001/statistics"
)

// Dependencies provides the stateless analytics components. They only need
// the environment configuration.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewFromEnv,
			config.NewAnalytics,
			config.NewClock,
			logger.NewProductionLogger,
			logger.Suggar,
			risk.NewAssessor,
			glucose.NewClassifier,
			compliance.NewCalculator,
			statistics.NewAggregator,
			alerts.NewRanker,
		),
	}
}

// ServicesModule provides the stateful services. The embedding application
// must supply their repositories.
var ServicesModule = fx.Options(
	fx.Provide(
		patients.NewService,
		glucose.NewService,
		dashboard.NewService,
	),
)

// Components groups the analytics components for callers that need all of
// them.
type Components struct {
	fx.In

	Analytics  *config.Analytics
	Assessor   *risk.Assessor
	Classifier *glucose.Classifier
	Compliance *compliance.Calculator
	Statistics *statistics.Aggregator
	Ranker     *alerts.Ranker
}
