// Package catalog holds the hand-authored forecast records.
//
// The catalog is rebuilt on every call to All so callers never share state;
// nothing in the process mutates a record after All returns it.
package catalog

import (
	"fmt"

	"foresight/internal/forecast/models"
	"foresight/pkg/platform/sentinel"
)

// All returns every known record, fully populated, in display order.
func All() []*models.Record {
	return []*models.Record{
		vision(),
		economic(),
		security(),
		infrastructure(),
		regulation(),
		collaboration(),
		transparency(),
	}
}

// Find returns the record whose name or label equals name.
func Find(records []*models.Record, name string) (*models.Record, error) {
	for _, r := range records {
		if r.Name == name || r.Label() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("record %q: %w", name, sentinel.ErrNotFound)
}

func vision() *models.Record {
	return models.NewRecord(
		"Vision and Purpose Agent",
		"Healthcare, Education, and Research",
		"Identifies and solves hard problems using AI in healthcare, education, and scientific research.",
	).SetPredictions([]string{
		"AI-powered personalized medicine becomes standard by 2028",
		"Automated scientific discovery platforms emerge by 2030",
		"AI tutors achieve human-level effectiveness by 2029",
		"Healthcare diagnosis accuracy surpasses human doctors by 2027",
		"AI research assistants become ubiquitous in academia by 2026",
		"Breakthrough in protein folding leads to new drug discoveries by 2028",
		"AI-driven public services reach 90% efficiency by 2031",
	}).SetYearlyMilestones(map[int]string{
		2025: "Initial deployment of AI diagnostic tools in major hospitals",
		2026: "AI research assistants deployed across top universities",
		2027: "AI diagnostic systems surpass human accuracy in major specialties",
		2028: "Personalized medicine becomes standard practice",
		2029: "AI tutoring systems achieve widespread adoption",
		2030: "Automated scientific discovery platforms revolutionize research",
	}).SetIntegrationYear(2031)
}

func economic() *models.Record {
	return models.NewRecord(
		"Economic Development Agent",
		"Economic Growth and Employment",
		"Analyzes AI's potential for reindustrialization and economic transformation.",
	).SetPredictions([]string{
		"AI creates more jobs than it displaces by 2029",
		"50% of US manufacturing uses AI automation by 2030",
		"AI-driven startups comprise 30% of new businesses by 2028",
		"Universal Basic Income pilots launch in response to AI transition by 2027",
		"AI-powered economic planning tools adopted by 40 states by 2029",
		"Digital transformation of traditional industries complete by 2032",
		"AI contributes to 25% of GDP growth by 2031",
	}).SetYearlyMilestones(map[int]string{
		2025: "First wave of AI-driven job transformation begins",
		2026: "20% of manufacturing adopts AI automation",
		2027: "UBI pilot programs launch in major cities",
		2028: "AI startups become major economic drivers",
		2029: "Net positive job creation from AI",
		2030: "Manufacturing sector reaches 50% AI automation",
	}).SetIntegrationYear(2032)
}

func security() *models.Record {
	return models.NewRecord(
		"National Security Agent",
		"Defense and Security",
		"Assesses AI integration in national security and defense systems.",
	).SetPredictions([]string{
		"AI-powered cyber defense systems fully operational by 2028",
		"Autonomous defense systems integration complete by 2030",
		"AI threat detection accuracy reaches 99.9% by 2029",
		"International AI security alliance formed by 2027",
		"Quantum-resistant AI encryption standard established by 2031",
		"AI-driven diplomatic analysis systems deployed by 2028",
		"Complete integration of AI in military logistics by 2032",
	}).SetYearlyMilestones(map[int]string{
		2025: "Implementation of basic AI cyber defense systems",
		2026: "AI threat detection systems reach 95% accuracy",
		2027: "Formation of international AI security alliance",
		2028: "Full deployment of AI cyber defense systems",
		2029: "AI threat detection reaches near-perfect accuracy",
		2030: "Autonomous defense systems fully operational",
	}).SetIntegrationYear(2032)
}

func infrastructure() *models.Record {
	return models.NewRecord(
		"Infrastructure Development Agent",
		"Infrastructure and Resources",
		"Predicts infrastructure needs for AI integration.",
	).SetYearlyMilestones(map[int]string{
		2025: "Initial AI computing grid deployment in major cities",
		2026: "30% of energy grid optimized by AI",
		2027: "National high-speed internet initiative launches",
		2028: "AI Economic Zones established in 15 major cities",
		2029: "75% of public schools implement AI programs",
		2030: "Quantum computing infrastructure begins operation",
	}).SetIntegrationYear(2033)
}

func regulation() *models.Record {
	return models.NewRecord(
		"Regulation and Ethics Agent",
		"Policy and Ethics",
		"Develops framework for AI regulations and ethical guidelines.",
	).SetYearlyMilestones(map[int]string{
		2025: "Initial AI safety guidelines established",
		2026: "Child-safe AI guidelines become mandatory",
		2027: "AI certification system launches",
		2028: "Comprehensive AI regulation framework enacted",
		2029: "Universal AI ethics standards adopted",
		2030: "Global AI governance treaty negotiations complete",
	}).SetIntegrationYear(2031)
}

func collaboration() *models.Record {
	return models.NewRecord(
		"Global Collaboration Agent",
		"International Relations",
		"Forecasts outcomes of international AI partnerships.",
	).SetYearlyMilestones(map[int]string{
		2025: "Initial US-EU AI partnership framework",
		2026: "First international AI research centers established",
		2027: "US-EU AI alliance becomes fully operational",
		2028: "Global AI standards harmonization begins",
		2029: "International AI research network completed",
		2030: "Global AI governance framework established",
	}).SetIntegrationYear(2032)
}

func transparency() *models.Record {
	return models.NewRecord(
		"Transparency and Public Trust Agent",
		"Public Relations and Trust",
		"Develops strategies for building public confidence in AI.",
	).SetYearlyMilestones(map[int]string{
		2025: "Launch of public AI literacy programs",
		2026: "AI transparency portals in 50% of federal agencies",
		2027: "Real-time AI monitoring system deployment",
		2028: "Universal AI ethics training implementation",
		2029: "Public AI literacy reaches 80%",
		2030: "AI trust index reaches 75% approval",
	}).SetIntegrationYear(2031)
}
