// Package report exports a patient's surveillance summary as a spreadsheet.
package report

import (
	"strings"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/Akkadate/gdm-app-sub001/compliance"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/patients"
	"github.com/Akkadate/gdm-app-sub001/pointer"
	"github.com/Akkadate/gdm-app-sub001/statistics"
)

const (
	SheetNameSummary    = "Summary"
	SheetNameCompliance = "Daily Compliance"
	SheetNameAverages   = "Averages"
	SheetNameMonthly    = "Monthly"

	GeneratedTimeFormat = time.RFC3339
)

type Input struct {
	Profile       patients.Profile
	Compliance    compliance.Report
	Averages      statistics.Averages
	Monthly       []statistics.MonthlyBucket
	GeneratedTime time.Time
}

type Report struct {
	in Input
}

func New(in Input) Report {
	return Report{in: in}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addSummarySheet,
		r.addComplianceSheet,
		r.addAveragesSheet,
		r.addMonthlySheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addSummarySheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameSummary)
	if err != nil {
		return err
	}

	profile := r.in.Profile
	sh.AddRow().AddCell().SetValue("Gestational Diabetes Surveillance Summary")
	addPair(sh, "Report Generated", r.in.GeneratedTime.Format(GeneratedTimeFormat))
	sh.AddRow()

	addPair(sh, "Patient", pointer.ToString(profile.FullName))
	addPair(sh, "Patient Id", profile.Id)
	addPair(sh, "Risk Level", string(profile.RiskLevel))
	addPair(sh, "Risk Score", profile.RiskScore)
	addPair(sh, "Risk Factors", strings.Join(profile.RiskFactors, ", "))
	if profile.BMI != nil {
		addPair(sh, "BMI", *profile.BMI)
	} else {
		addPair(sh, "BMI", "")
	}
	sh.AddRow()

	addPair(sh, "Compliance Rate (%)", r.in.Compliance.ComplianceRate)
	addPair(sh, "Compliant Days", r.in.Compliance.CompliantDays)
	addPair(sh, "Total Days", r.in.Compliance.TotalDays)
	addPair(sh, "Average Glucose ("+glucose.Units+")", r.in.Averages.Overall.Average)
	addPair(sh, "Readings", r.in.Averages.Overall.Count)

	return nil
}

func (r Report) addComplianceSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameCompliance)
	if err != nil {
		return err
	}

	addHeader(sh, "Date", "Expected", "Actual", "Compliant")
	for _, day := range r.in.Compliance.DailyData {
		row := sh.AddRow()
		row.AddCell().SetValue(day.Date)
		row.AddCell().SetValue(day.Expected)
		row.AddCell().SetValue(day.Actual)
		row.AddCell().SetValue(yesNo(day.Compliant))
	}

	return nil
}

func (r Report) addAveragesSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameAverages)
	if err != nil {
		return err
	}

	addHeader(sh, "Reading Type", "Readings", "Average", "Min", "Max")
	for _, readingType := range glucose.ReadingTypes() {
		if summary, ok := r.in.Averages.ByType[readingType]; ok {
			addSummary(sh, string(readingType), summary)
		}
	}
	addSummary(sh, "Overall", r.in.Averages.Overall)

	return nil
}

func (r Report) addMonthlySheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameMonthly)
	if err != nil {
		return err
	}

	addHeader(sh, "Month", "Readings", "Average", "Out Of Range", "Out Of Range (%)", "Min", "Max")
	for _, bucket := range r.in.Monthly {
		row := sh.AddRow()
		row.AddCell().SetValue(bucket.Month)
		row.AddCell().SetValue(bucket.Count)
		row.AddCell().SetValue(bucket.Average)
		row.AddCell().SetValue(bucket.OutOfRange)
		row.AddCell().SetValue(bucket.OutOfRangePercent)
		row.AddCell().SetValue(bucket.Min)
		row.AddCell().SetValue(bucket.Max)
	}

	return nil
}

func addHeader(sh *xlsx.Sheet, names ...string) {
	row := sh.AddRow()
	for _, name := range names {
		row.AddCell().SetValue(name)
	}
}

func addPair(sh *xlsx.Sheet, name string, value any) {
	row := sh.AddRow()
	row.AddCell().SetValue(name)
	row.AddCell().SetValue(value)
}

func addSummary(sh *xlsx.Sheet, name string, summary statistics.Summary) {
	row := sh.AddRow()
	row.AddCell().SetValue(name)
	row.AddCell().SetValue(summary.Count)
	row.AddCell().SetValue(summary.Average)
	row.AddCell().SetValue(summary.Min)
	row.AddCell().SetValue(summary.Max)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
