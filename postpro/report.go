package postpro

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"topmodel/params"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<title>TOPMODEL simulation report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #999; padding: 4px 10px; text-align: right; }
th { background: #eee; }
td:first-child, th:first-child { text-align: left; }
</style>
</head>
<body>
<h1>TOPMODEL simulation report</h1>
<p>Generated {{.Generated}}; {{.NT}} timesteps, {{.NBins}} TWI bins,
period {{.Begin}} to {{.End}}.</p>

<h2>Parameters</h2>
<table>
<tr><th>name</th><th>value</th><th>units</th><th>description</th></tr>
{{range .Parameters}}<tr><td>{{.Name}}</td><td>{{printf "%g" .Value}}</td><td>{{.Units}}</td><td>{{.Description}}</td></tr>
{{end}}</table>

<h2>Summary statistics</h2>
<table>
<tr><th>series</th><th>mean</th><th>median</th><th>max</th><th>min</th></tr>
{{range .Summaries}}<tr><td>{{.Name}}</td><td>{{printf "%.3f" .Mean}}</td><td>{{printf "%.3f" .Median}}</td><td>{{printf "%.3f" .Max}}</td><td>{{printf "%.3f" .Min}}</td></tr>
{{end}}</table>

{{if .HasFit}}<h2>Goodness of fit</h2>
<table>
<tr><th>KGE</th><th>NSE</th><th>RMSE</th><th>Bias</th></tr>
<tr><td>{{printf "%.3f" .Fit.KGE}}</td><td>{{printf "%.3f" .Fit.NSE}}</td><td>{{printf "%.3f" .Fit.RMSE}}</td><td>{{printf "%.3f" .Fit.Bias}}</td></tr>
</table>
{{end}}</body>
</html>
`

type reportData struct {
	Generated, Begin, End string
	NT, NBins             int
	Parameters            []params.Entry
	Summaries             []Summary
	HasFit                bool
	Fit                   Fit
}

// WriteReport renders the run summary to an HTML file.
func (r *Results) WriteReport(fp string, entries []params.Entry) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("postpro.WriteReport: %w", err)
	}

	nbins := 0
	if len(r.SDLocals) > 0 {
		nbins = len(r.SDLocals[0])
	}
	data := reportData{
		Generated:  time.Now().Format("2006-01-02 15:04"),
		Begin:      r.T[0].Format("2006-01-02"),
		End:        r.T[len(r.T)-1].Format("2006-01-02"),
		NT:         len(r.T),
		NBins:      nbins,
		Parameters: entries,
		Summaries:  r.Summarize(),
	}
	if r.FlowObs != nil {
		data.HasFit = true
		data.Fit = r.GoodnessOfFit()
	}

	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("postpro.WriteReport: %w", err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("postpro.WriteReport: %w", err)
	}
	return nil
}
