package view

// layoutTemplate wraps every page. Pages supply a "body" template.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} · {{.AppName}}</title>
  <link rel="stylesheet" href="/static/app.css">
</head>
<body class="{{.BodyClass}}">
{{- with .Toast}}
  <div class="toast" role="status">
    <strong class="toast-title">{{.Title}}</strong>
    <p class="toast-description">{{.Description}}</p>
  </div>
{{- end}}
{{template "body" .}}
</body>
</html>{{end}}`

const notFoundTemplate = `{{define "body"}}
<main class="not-found" data-page="not-found">
  <h1>404</h1>
  <p>Oops! Page not found</p>
  <a href="/" class="btn btn-primary">Return to Home</a>
</main>
{{end}}`

// cssContent is the whole stylesheet served at /static/app.css.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: hsl(200, 20%, 98%);
  --card: #ffffff;
  --text: hsl(210, 25%, 15%);
  --muted: hsl(210, 10%, 45%);
  --border: hsl(210, 15%, 89%);
  --primary: hsl(195, 80%, 40%);
  --primary-soft: hsl(195, 80%, 94%);
  --secondary: hsl(152, 55%, 45%);
  --secondary-soft: hsl(152, 55%, 93%);
  --success: hsl(152, 60%, 40%);
  --success-soft: hsl(152, 60%, 93%);
  --warning: hsl(38, 92%, 50%);
  --warning-soft: hsl(38, 92%, 93%);
  --critical: hsl(0, 72%, 51%);
  --critical-soft: hsl(0, 72%, 95%);
  --info: hsl(210, 80%, 55%);
  --info-soft: hsl(210, 80%, 95%);
  --radius: 12px;
  --sidebar: 248px;
  --sidebar-collapsed: 72px;
}

* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.5;
}
a { color: var(--primary); text-decoration: none; }
h1, h2, h3 { line-height: 1.2; margin: 0 0 .5rem; }
.muted { color: var(--muted); }
.icon { display: inline-block; width: 1.25em; text-align: center; }

/* ============ Buttons & badges ============ */
.btn {
  display: inline-flex; align-items: center; gap: .4rem;
  padding: .55rem 1rem; border-radius: 8px; border: 1px solid var(--border);
  background: var(--card); color: var(--text); font: inherit; cursor: pointer;
}
.btn-primary { background: var(--primary); border-color: var(--primary); color: #fff; }
.btn-ghost { background: transparent; border-color: transparent; }
.btn[disabled], .btn.inert { cursor: default; }
.badge {
  display: inline-block; padding: .1rem .55rem; border-radius: 999px;
  font-size: .75rem; font-weight: 600; text-transform: capitalize;
}
.tone-primary, .badge-primary { background: var(--primary-soft); color: var(--primary); }
.tone-secondary, .badge-secondary { background: var(--secondary-soft); color: var(--secondary); }
.tone-success, .badge-success, .badge-stable, .badge-normal, .badge-excellent { background: var(--success-soft); color: var(--success); }
.tone-warning, .badge-warning, .badge-elevated, .badge-good { background: var(--warning-soft); color: var(--warning); }
.tone-critical, .badge-critical, .badge-needs-work { background: var(--critical-soft); color: var(--critical); }
.tone-info, .badge-info { background: var(--info-soft); color: var(--info); }
.value-critical { color: var(--critical); font-weight: 700; }
.value-warning { color: var(--warning); font-weight: 700; }
.value-normal { color: var(--text); }

/* ============ Toast ============ */
.toast {
  position: fixed; right: 1.5rem; bottom: 1.5rem; z-index: 50;
  background: var(--card); border: 1px solid var(--border); border-radius: var(--radius);
  padding: .9rem 1.2rem; box-shadow: 0 10px 30px rgba(0,0,0,.12);
}
.toast p { margin: .2rem 0 0; color: var(--muted); }

/* ============ Public site ============ */
.site-nav {
  position: sticky; top: 0; z-index: 10; display: flex; align-items: center; justify-content: space-between;
  padding: 1rem 2rem; background: rgba(255,255,255,.9); border-bottom: 1px solid var(--border);
}
.site-nav ul { display: flex; gap: 1.5rem; list-style: none; margin: 0; padding: 0; }
.site-nav a { color: var(--muted); }
.brand { display: flex; align-items: center; gap: .5rem; font-weight: 700; font-size: 1.2rem; color: var(--text); }
section { padding: 4rem 2rem; max-width: 1120px; margin: 0 auto; }
.section-head { text-align: center; margin-bottom: 2.5rem; }
.hero { display: grid; gap: 2rem; text-align: center; padding-top: 6rem; }
.hero h1 { font-size: 2.8rem; }
.hero-highlights { display: flex; justify-content: center; gap: 1.5rem; flex-wrap: wrap; }
.grid { display: grid; gap: 1.25rem; }
.grid-2 { grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); }
.grid-3 { grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); }
.grid-4 { grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); }
.card {
  background: var(--card); border: 1px solid var(--border); border-radius: var(--radius);
  padding: 1.25rem;
}
.stars { color: var(--warning); letter-spacing: .1em; }
.faq details { border-bottom: 1px solid var(--border); padding: .8rem 0; }
.faq summary { cursor: pointer; font-weight: 600; }
.contact { display: grid; gap: 2rem; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); }
.contact ul { list-style: none; padding: 0; }
form.stack { display: grid; gap: .9rem; }
label { display: grid; gap: .3rem; font-size: .9rem; font-weight: 500; }
input, textarea, select {
  font: inherit; padding: .55rem .75rem; border: 1px solid var(--border); border-radius: 8px; background: #fff;
}
.site-footer { text-align: center; padding: 2rem; border-top: 1px solid var(--border); color: var(--muted); }

/* ============ Auth pages ============ */
.auth { min-height: 100vh; display: grid; place-items: center; padding: 2rem; }
.auth .card { width: 100%; max-width: 440px; }
.roles { display: grid; grid-template-columns: repeat(3, 1fr); gap: .5rem; border: 0; padding: 0; }
.roles label { border: 1px solid var(--border); border-radius: 8px; padding: .6rem; text-align: center; cursor: pointer; }
.row { display: grid; grid-template-columns: 1fr 1fr; gap: .75rem; }

/* ============ Not found ============ */
.not-found { min-height: 100vh; display: grid; place-content: center; text-align: center; gap: 1rem; }
.not-found h1 { font-size: 4rem; }

/* ============ Dashboard frame ============ */
.frame { display: flex; min-height: 100vh; }
.sidebar {
  width: var(--sidebar); flex-shrink: 0; display: flex; flex-direction: column;
  background: var(--card); border-right: 1px solid var(--border); padding: 1rem .75rem;
}
.frame.collapsed .sidebar { width: var(--sidebar-collapsed); }
.sidebar nav { flex: 1; display: grid; align-content: start; gap: .2rem; margin-top: 1.5rem; }
.nav-link {
  display: flex; align-items: center; gap: .75rem; padding: .6rem .75rem;
  border-radius: 8px; color: var(--muted); background: none; border: 0; font: inherit; width: 100%; cursor: pointer;
}
.nav-link:hover { background: var(--bg); }
.nav-link.active { background: var(--primary-soft); color: var(--primary); font-weight: 600; }
.sidebar-foot { display: grid; gap: .2rem; border-top: 1px solid var(--border); padding-top: .75rem; }
.sidebar-foot form { margin: 0; }
.content { flex: 1; padding: 2rem; overflow-x: auto; }
.page-head { display: flex; justify-content: space-between; align-items: flex-start; gap: 1rem; margin-bottom: 1.5rem; }
.stat-value { font-size: 1.8rem; font-weight: 700; }
.stat-unit { font-size: .9rem; color: var(--muted); margin-left: .25rem; }
.tabs { display: flex; gap: .5rem; margin-bottom: 1rem; flex-wrap: wrap; }
.tab { padding: .45rem .9rem; border-radius: 999px; border: 1px solid var(--border); color: var(--muted); }
.tab.active { background: var(--primary); border-color: var(--primary); color: #fff; }
.list { display: grid; gap: .75rem; }
.list-row { display: flex; align-items: center; justify-content: space-between; gap: 1rem; }
.list-row.done { opacity: .75; }
.list-row.inactive { opacity: .5; }
.list-row form { display: inline; }
.rec { display: flex; gap: .75rem; padding: .8rem 1rem; border-radius: 8px; }
.rec p { margin: 0; }
.banner { padding: 1rem 1.25rem; border-radius: var(--radius); margin-bottom: 1rem; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: .65rem .5rem; border-bottom: 1px solid var(--border); }
th { color: var(--muted); font-weight: 500; font-size: .85rem; }
.chart { width: 100%; height: auto; }
.chart text { font-size: 10px; fill: var(--muted); }
.chart-legend { display: flex; gap: 1rem; justify-content: center; font-size: .85rem; }
.swatch { display: inline-block; width: .75rem; height: .75rem; border-radius: 3px; margin-right: .3rem; }
.camera { display: grid; place-items: center; gap: .75rem; text-align: center; min-height: 240px; background: var(--bg); border-radius: var(--radius); }
`
