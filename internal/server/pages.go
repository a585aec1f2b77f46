package server

import (
	"html/template"

	"trustlens/internal/model"
	"trustlens/internal/score"
)

// resultsView is the data handed to the results template.
type resultsView struct {
	URL       string
	Report    *model.InspectionReport
	RiskLabel string
	RiskClass string
}

func newResultsView(url string, report *model.InspectionReport) resultsView {
	label, class := "Low Risk", "low"
	switch {
	case report.TrustScore < score.ThresholdLow:
		label, class = "High Risk", "high"
	case report.TrustScore < score.ThresholdHigh:
		label, class = "Medium Risk", "medium"
	}
	return resultsView{URL: url, Report: report, RiskLabel: label, RiskClass: class}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>TrustLens</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 40px auto; }
input[type=url] { width: 70%; padding: 8px; }
button { padding: 8px 16px; }
</style>
</head>
<body>
<h1>TrustLens</h1>
<p>Enter a shop URL to check it for counterfeit-sale signals, domain age and archive history.</p>
<form method="POST" action="/analyze">
  <input type="url" name="url" placeholder="https://example-shop.com" required>
  <button type="submit">Analyze</button>
</form>
</body>
</html>
`))

var resultsTemplate = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html>
<head>
<title>TrustLens - Results</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 40px auto; }
.score { font-size: 2em; }
.low { color: #2e7d32; }
.medium { color: #f9a825; }
.high { color: #c62828; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
</style>
</head>
<body>
<h1>Inspection results</h1>
<p>Target: <a href="{{.URL}}">{{.URL}}</a></p>
<p class="score {{.RiskClass}}">{{.Report.TrustScore}} / 100 &mdash; {{.RiskLabel}}</p>

<h2>Detected keywords ({{len .Report.KeywordsDetected}})</h2>
{{if .Report.KeywordsDetected}}
<ul>{{range .Report.KeywordsDetected}}<li>{{.}}</li>{{end}}</ul>
{{else}}<p>No risk keywords found.</p>{{end}}

<h2>Domain registration</h2>
<table>
<tr><th>Domain</th><td>{{.Report.WhoisData.Domain}}</td></tr>
<tr><th>Age (years)</th><td>{{.Report.WhoisData.DomainAge}}</td></tr>
<tr><th>Created</th><td>{{.Report.WhoisData.CreationDate}}</td></tr>
<tr><th>Country</th><td>{{.Report.WhoisData.Country}}</td></tr>
<tr><th>Registrar</th><td>{{.Report.WhoisData.Registrar}}</td></tr>
</table>

<h2>Archive history</h2>
<table>
<tr><th>Snapshots</th><td>{{.Report.WaybackData.SnapshotsFound}}</td></tr>
<tr><th>First snapshot</th><td>{{.Report.WaybackData.FirstSnapshot}}</td></tr>
<tr><th>Last snapshot</th><td>{{.Report.WaybackData.LastSnapshot}}</td></tr>
<tr><th>Activity span (days)</th><td>{{.Report.WaybackData.ChangePeriodDays}}</td></tr>
</table>

<h2>Images ({{len .Report.ImagesFound}})</h2>
{{if .Report.ImagesFound}}
<ul>{{range .Report.ImagesFound}}<li>{{.}}</li>{{end}}</ul>
{{else}}<p>No images found.</p>{{end}}

<p><a href="/">Analyze another site</a></p>
</body>
</html>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head>
<title>TrustLens - Error</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 40px auto; }
.error { color: #c62828; }
</style>
</head>
<body>
<h1>Inspection failed</h1>
<p class="error">{{.}}</p>
<p><a href="/">Try again</a></p>
</body>
</html>
`))
