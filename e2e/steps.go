package e2e

import (
	"github.com/cucumber/godog"

	"foresight/e2e/steps/common"
	"foresight/e2e/steps/forecast"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and assertions
	common.RegisterSteps(ctx, tc)

	// Catalog and derived-metric assertions
	forecast.RegisterSteps(ctx, tc)
}
