package dashboard

// frameTemplate is the sidebar frame. Each page supplies "content", which
// receives the page's content data.
const frameTemplate = `{{define "body"}}{{$f := .Data.Frame}}
<div class="frame{{if $f.Collapsed}} collapsed{{end}}">
  <aside class="sidebar">
    <a href="/dashboard" class="brand">{{icon "heart-pulse"}}{{if not $f.Collapsed}} <span class="app-name">{{.AppName}}</span>{{end}}</a>
    <nav>
      {{- range $f.Nav}}
      <a href="{{.Path}}" class="nav-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}{{if $f.Collapsed}} aria-label="{{.Label}}"{{end}}>{{icon .Icon}}{{if not $f.Collapsed}} <span class="nav-label">{{.Label}}</span>{{end}}</a>
      {{- end}}
    </nav>
    <div class="sidebar-foot">
      <a href="/" class="nav-link logout"{{if $f.Collapsed}} aria-label="Log Out"{{end}}>{{icon "log-out"}}{{if not $f.Collapsed}} <span class="nav-label">Log Out</span>{{end}}</a>
      <form method="post" action="/dashboard/sidebar/toggle">
        <input type="hidden" name="return" value="{{$f.Return}}">
        {{- if $f.Collapsed}}
        <button type="submit" class="nav-link" aria-label="Expand sidebar">{{icon "chevron-right"}}</button>
        {{- else}}
        <button type="submit" class="nav-link">{{icon "chevron-left"}} <span class="nav-label">Collapse</span></button>
        {{- end}}
      </form>
    </div>
  </aside>
  <main class="content">
    {{template "content" .Data.Content}}
  </main>
</div>
{{end}}

{{define "stat"}}
<div class="card stat">
  {{- with .Icon}}<span class="tone-{{$.Tone}}">{{icon .}}</span>{{end}}
  <p class="muted">{{.Label}}</p>
  <p class="stat-value">{{.Value}}{{with .Unit}}<span class="stat-unit">{{.}}</span>{{end}}</p>
  {{- with .Status}}
  <span class="badge badge-{{$.Tone}}">{{.}}</span>
  {{- end}}
  {{- with .Trend}}
  <p class="muted">{{.}}</p>
  {{- end}}
</div>
{{end}}

{{define "tabs"}}
<nav class="tabs">
  {{- range .}}
  <a href="?tab={{.Key}}" class="tab{{if .Active}} active{{end}}"{{if .Active}} aria-current="true"{{end}}>{{.Label}}</a>
  {{- end}}
</nav>
{{end}}`

const overviewTemplate = `{{define "content"}}
<section data-page="overview">
  <div class="page-head">
    <div>
      <h1>{{.Greeting}}</h1>
      <p class="muted">Here's your health summary for today.</p>
    </div>
  </div>
  <div class="grid grid-4">
    {{- range .Cards}}{{template "stat" .}}{{end}}
  </div>
  <div class="grid grid-2">
    <div class="card">
      <h3>{{.WeeklyGlucose.Title}}</h3>
      {{line .WeeklyGlucose (color "primary")}}
    </div>
    <div class="card">
      <h3>{{.WeeklyExercise.Title}}</h3>
      {{bar .WeeklyExercise (color "secondary")}}
    </div>
  </div>
  <div class="card">
    <h3>{{icon "brain"}} AI Recommendations</h3>
    <div class="list">
      {{- range .Recommendations}}
      <div class="rec tone-{{.Kind}}">{{icon .Icon}}<p>{{inline .Text}}</p></div>
      {{- end}}
    </div>
  </div>
</section>
{{end}}`

const glucoseTemplate = `{{define "content"}}
<section data-page="glucose">
  <div class="page-head">
    <div>
      <h1>Glucose Tracking</h1>
      <p class="muted">Monitor and log your blood sugar levels</p>
    </div>
    <button type="button" class="btn btn-primary inert">{{icon "plus"}} Add Reading</button>
  </div>
  <div class="grid grid-3">
    {{- range .Stats}}{{template "stat" .}}{{end}}
  </div>
  <div class="card">
    <h3>{{.Trend.Title}}</h3>
    {{line .Trend (color "primary")}}
  </div>
  <div class="card">
    <h3>Today's Readings</h3>
    <div class="list">
      {{- range .Readings}}
      <div class="list-row reading reading-{{.Status}}">
        <div><strong>{{.Value}} mg/dL</strong> <span class="muted">{{.Kind}}</span></div>
        <span class="muted">{{.Time}}</span>
        <span class="badge badge-{{.Status}}">{{.Status}}</span>
      </div>
      {{- end}}
    </div>
  </div>
</section>
{{end}}`

const exercisesTemplate = `{{define "content"}}
<section data-page="exercises">
  <div class="page-head">
    <div>
      <h1>Exercise Programs</h1>
      <p class="muted">Guided rehabilitation exercises tailored for you</p>
    </div>
  </div>
  <div class="grid grid-3">
    {{- range .Stats}}{{template "stat" .}}{{end}}
  </div>
  {{template "tabs" .Tabs}}
  <div class="grid grid-2">
    {{- range .Exercises}}
    <div class="card list-row exercise{{if .Completed}} done{{end}}">
      <div>
        <strong>{{.Name}}</strong>
        <p class="muted">{{.Duration}} · {{.Reps}} · {{.Calories}} cal</p>
      </div>
      {{- if .Completed}}
      <span class="badge badge-success">{{icon "check"}} Done</span>
      {{- else}}
      <button type="button" class="btn btn-ghost inert">{{icon "play"}} Start</button>
      {{- end}}
    </div>
    {{- end}}
  </div>
</section>
{{end}}`

const postureTemplate = `{{define "content"}}
<section data-page="posture">
  <div class="page-head">
    <div>
      <h1>AI Posture Correction</h1>
      <p class="muted">Real-time exercise form analysis powered by AI</p>
    </div>
  </div>
  <div class="card camera">
    {{icon "camera"}}
    <p><strong>Start Posture Analysis</strong></p>
    <p class="muted">Allow camera access for real-time AI corrections</p>
    <button type="button" class="btn btn-primary inert">{{icon "camera"}} Start Camera</button>
  </div>
  <div class="grid grid-3">
    {{- range .Stats}}{{template "stat" .}}{{end}}
  </div>
  <div class="card">
    <h3>Recent Sessions</h3>
    <div class="list">
      {{- range .History}}
      {{- $grade := .Grade}}
      <div class="list-row posture-session">
        <div>
          <strong>{{.Exercise}}</strong> <span class="muted">{{.Date}}</span>
          <p class="muted">{{.Feedback}}</p>
        </div>
        <span class="badge badge-{{$grade}}" data-grade="{{$grade}}">{{.Score}}% · {{$grade.Label}}</span>
      </div>
      {{- end}}
    </div>
  </div>
</section>
{{end}}`

const nutritionTemplate = `{{define "content"}}
<section data-page="nutrition">
  <div class="page-head">
    <div>
      <h1>Nutrition Plan</h1>
      <p class="muted">Personalized diabetic-safe meal plans with local Tamil Nadu cuisine</p>
    </div>
  </div>
  <div class="banner tone-secondary">
    <strong>{{icon "map-pin"}} Personalized for your region</strong>
    <p>Based on Tamil Nadu dietary preferences with glycemic index data for every meal.</p>
  </div>
  <div class="grid grid-4">
    {{- range .Stats}}{{template "stat" .}}{{end}}
  </div>
  {{template "tabs" .Tabs}}
  <div class="grid grid-3">
    {{- range .Meals}}
    <div class="card meal">
      <div class="list-row">
        <strong>{{.Name}}</strong>
        {{- if .Safe}}
        <span class="badge badge-success">{{icon "check"}} Safe</span>
        {{- end}}
      </div>
      <p class="muted">Carbs: {{.Carbs}}g · <span class="badge badge-info">GI: {{.GI}}</span></p>
      <p class="muted">{{.Calories}} cal</p>
    </div>
    {{- end}}
  </div>
</section>
{{end}}`

const remindersTemplate = `{{define "content"}}
<section data-page="reminders">
  <div class="page-head">
    <div>
      <h1>Smart Reminders</h1>
      <p class="muted">Never miss your medication, exercise, or hydration</p>
    </div>
    <button type="button" class="btn btn-primary inert">{{icon "plus"}} Add Reminder</button>
  </div>
  <div class="grid grid-3">
    <div class="card stat">{{icon "pill"}}<p class="stat-value" data-count="medicine">{{.Counts.Medicine}}</p><p class="muted">Medicine reminders</p></div>
    <div class="card stat">{{icon "dumbbell"}}<p class="stat-value" data-count="exercise">{{.Counts.Exercise}}</p><p class="muted">Exercise reminders</p></div>
    <div class="card stat">{{icon "droplets"}}<p class="stat-value" data-count="water">{{.Counts.Water}}</p><p class="muted">Water reminders</p></div>
  </div>
  <div class="list">
    {{- range .Items}}
    <div class="card list-row reminder{{if not .Active}} inactive{{end}}" data-reminder="{{.ID}}">
      <div>
        {{icon .Type.Icon}}
        <strong>{{.Label}}</strong>
        <p class="muted">{{.Time}} · {{.Days}}</p>
      </div>
      <div>
        <form method="post" action="/dashboard/reminders/{{.ID}}/toggle">
          <button type="submit" class="btn btn-ghost">{{if .Active}}Pause{{else}}Resume{{end}}</button>
        </form>
        <form method="post" action="/dashboard/reminders/{{.ID}}/delete">
          <button type="submit" class="btn btn-ghost" aria-label="Delete {{.Label}}">{{icon "trash"}}</button>
        </form>
      </div>
    </div>
    {{- end}}
  </div>
</section>
{{end}}`

const analyticsTemplate = `{{define "content"}}
<section data-page="analytics">
  <div class="page-head">
    <div>
      <h1>Recovery Analytics</h1>
      <p class="muted">Insights, predictions, and progress reports</p>
    </div>
    <button type="button" class="btn inert">Export PDF</button>
  </div>
  <div class="grid grid-4">
    {{- range .Cards}}{{template "stat" .}}{{end}}
  </div>
  <div class="grid grid-2">
    <div class="card">
      <h3>{{.SugarTrend.Title}}</h3>
      {{line .SugarTrend (color "primary")}}
    </div>
    <div class="card">
      <h3>{{.Consistency.Title}}</h3>
      {{bar .Consistency (color "secondary")}}
    </div>
    <div class="card">
      <h3>Diet Adherence</h3>
      {{donut "Diet Adherence" .Diet}}
      <div class="chart-legend">
        {{- range .Diet}}
        <span><span class="swatch" style="background: {{css .Color}}"></span>{{.Name}} {{.Value}}%</span>
        {{- end}}
      </div>
    </div>
    <div class="card">
      <h3>{{.Posture.Title}}</h3>
      {{line .Posture (color "info")}}
    </div>
  </div>
</section>
{{end}}`

const doctorTemplate = `{{define "content"}}
<section data-page="doctor">
  <div class="page-head">
    <div>
      <h1>Doctor Portal</h1>
      <p class="muted">Monitor patients and manage alerts</p>
    </div>
  </div>
  <div class="card">
    <h3>{{icon "alert"}} Active Alerts ({{len .Alerts}})</h3>
    <div class="list">
      {{- range .Alerts}}
      <div class="list-row alert alert-{{.Severity}}">
        <div>
          <strong>{{.Patient}}</strong> <span class="badge badge-{{.Severity}}">{{.Type}}</span>
          <p class="muted">{{.Value}} · {{.Time}}</p>
        </div>
        <button type="button" class="btn inert">Respond</button>
      </div>
      {{- end}}
    </div>
  </div>
  <div class="card">
    <h3>Patient List</h3>
    <table>
      <thead>
        <tr><th>Patient</th><th>Age</th><th>Type</th><th>Last Glucose</th><th>Status</th><th>Actions</th></tr>
      </thead>
      <tbody>
        {{- range .Patients}}
        <tr class="patient">
          <td><strong>{{.Name}}</strong></td>
          <td>{{.Age}}</td>
          <td>{{.Type}}</td>
          <td class="value-{{.GlucoseLevel}}">{{.LastGlucose}} mg/dL</td>
          <td><span class="badge badge-{{.Status}}">{{.Status}}</span></td>
          <td>
            <button type="button" class="btn btn-ghost inert" aria-label="View {{.Name}}">👁</button>
            <button type="button" class="btn btn-ghost inert" aria-label="Message {{.Name}}">💬</button>
          </td>
        </tr>
        {{- end}}
      </tbody>
    </table>
  </div>
</section>
{{end}}`
