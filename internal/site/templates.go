package site

// landingTemplate is the marketing page assembled from its sections.
const landingTemplate = `{{define "body"}}{{with .Data}}
<header class="site-nav">
  <a href="/" class="brand">{{icon "heart-pulse"}} <span>{{$.AppName}}</span></a>
  <ul>
    {{- range .NavLinks}}
    <li><a href="{{.Href}}">{{.Label}}</a></li>
    {{- end}}
  </ul>
  <div>
    <a href="/login" class="btn btn-ghost">Log In</a>
    <a href="/register" class="btn btn-primary">Get Started</a>
  </div>
</header>

<main data-page="landing">
  <section class="hero" id="home">
    <span class="badge badge-primary">AI-Powered Diabetes Management</span>
    <h1>Your Personal Health Companion</h1>
    <p class="muted">Smart rehabilitation exercises, real-time posture correction, personalized nutrition, and glucose tracking, all powered by AI.</p>
    <div>
      <a href="/register" class="btn btn-primary">Start Free Trial</a>
      <a href="#features" class="btn">Learn More</a>
    </div>
    <div class="hero-highlights">
      {{- range .HeroHighlights}}
      <span>{{icon .Icon}} {{.Title}}</span>
      {{- end}}
    </div>
  </section>

  <section id="features">
    <div class="section-head">
      <p class="badge badge-primary">Features</p>
      <h2>Everything You Need to Manage Diabetes</h2>
      <p class="muted">Comprehensive tools powered by AI to help you stay healthy, active, and informed.</p>
    </div>
    <div class="grid grid-4">
      {{- range .Features}}
      <article class="card feature">
        <div>{{icon .Icon}}</div>
        <h3>{{.Title}}</h3>
        <p class="muted">{{.Description}}</p>
      </article>
      {{- end}}
    </div>
  </section>

  <section id="how-it-works">
    <div class="section-head">
      <p class="badge badge-primary">How It Works</p>
      <h2>Get Started in 4 Simple Steps</h2>
    </div>
    <ol class="grid grid-4">
      {{- range $i, $s := .Steps}}
      <li class="card step">
        <span class="badge badge-secondary">Step {{inc $i}}</span>
        <div>{{icon $s.Icon}}</div>
        <h3>{{$s.Title}}</h3>
        <p class="muted">{{$s.Description}}</p>
      </li>
      {{- end}}
    </ol>
  </section>

  <section id="testimonials">
    <div class="section-head">
      <p class="badge badge-primary">Testimonials</p>
      <h2>Trusted by Patients &amp; Doctors</h2>
    </div>
    <div class="grid grid-3">
      {{- range .Testimonials}}
      <figure class="card testimonial">
        <div class="stars" aria-label="{{.Rating}} out of 5 stars">{{stars .Rating}}</div>
        <blockquote class="muted">"{{.Text}}"</blockquote>
        <figcaption><strong>{{.Name}}</strong><br><span class="muted">{{.Role}}</span></figcaption>
      </figure>
      {{- end}}
    </div>
  </section>

  <section id="faq" class="faq">
    <div class="section-head">
      <p class="badge badge-primary">FAQ</p>
      <h2>Frequently Asked Questions</h2>
    </div>
    {{- range .FAQs}}
    <details>
      <summary>{{.Question}}</summary>
      <div class="muted">{{markdown .Answer}}</div>
    </details>
    {{- end}}
  </section>

  <section id="contact">
    <div class="section-head">
      <p class="badge badge-primary">Contact</p>
      <h2>Get in Touch</h2>
    </div>
    <div class="contact">
      <div>
        <h3>Let's Talk</h3>
        <div class="muted">{{markdown .ContactBlurb}}</div>
        <ul>
          {{- range .ContactLines}}
          <li>{{icon .Icon}} {{.Label}}</li>
          {{- end}}
        </ul>
      </div>
      <form class="card stack" method="post" action="/contact">
        <input name="name" placeholder="Your Name" value="{{.Contact.Name}}" required>
        <input name="email" type="email" placeholder="Your Email" value="{{.Contact.Email}}" required>
        <textarea name="message" rows="4" placeholder="Your Message" required>{{.Contact.Message}}</textarea>
        <button type="submit" class="btn btn-primary">Send Message</button>
      </form>
    </div>
  </section>
</main>

<footer class="site-footer">
  <div class="brand">{{icon "heart-pulse"}} <span>{{$.AppName}}</span></div>
  <p>{{.FooterCredit}}</p>
  <p>&copy; {{$.Year}} {{$.AppName}}. All rights reserved.</p>
</footer>
{{end}}{{end}}`

// authAsideTemplate is the branded panel beside the login and register forms.
const authAsideTemplate = `{{define "aside"}}
<aside class="auth-aside">
  <a href="/" class="brand">{{icon "heart-pulse"}} <span>{{.AppName}}</span></a>
</aside>
{{end}}`

const loginTemplate = `{{define "body"}}
<main class="auth" data-page="login">
  {{template "aside" .}}
  <div class="card">
    <h1>Welcome Back to {{.AppName}}</h1>
    <p class="muted">Your AI-powered diabetes management companion awaits.</p>
    <h2>Sign In</h2>
    <p class="muted">Enter your credentials to access your dashboard</p>
    <form class="stack" method="post" action="/login">
      <label>Email
        <input id="email" name="email" type="email" placeholder="you@example.com" value="{{.Data.Email}}" required>
      </label>
      <label>Password
        <input id="password" name="password" type="password" placeholder="••••••••" required>
      </label>
      <a href="#" class="muted">Forgot password?</a>
      <button type="submit" class="btn btn-primary">Sign In</button>
    </form>
    <p class="muted">Don't have an account? <a href="/register">Create one</a></p>
  </div>
</main>
{{end}}`

const registerTemplate = `{{define "body"}}
<main class="auth" data-page="register">
  {{template "aside" .}}
  <div class="card">
    <h1>Join {{.AppName}} Today</h1>
    <p class="muted">Start your AI-powered diabetes management journey.</p>
    <h2>Create Account</h2>
    <p class="muted">Choose your role and get started</p>
    {{- $form := .Data.Form}}
    <form class="stack" method="post" action="/register">
      <fieldset class="roles">
        {{- range .Data.Roles}}
        <label>
          <input type="radio" name="role" value="{{.Value}}"{{if eq .Value $form.Role}} checked{{end}}>
          <strong>{{.Label}}</strong>
          <span class="muted">{{.Desc}}</span>
        </label>
        {{- end}}
      </fieldset>
      <div class="row">
        <label>First Name
          <input name="first_name" placeholder="John" value="{{$form.FirstName}}" required>
        </label>
        <label>Last Name
          <input name="last_name" placeholder="Doe" value="{{$form.LastName}}" required>
        </label>
      </div>
      <label>Email
        <input name="email" type="email" placeholder="you@example.com" value="{{$form.Email}}" required>
      </label>
      <label>Password
        <input name="password" type="password" placeholder="••••••••" required>
      </label>
      <button type="submit" class="btn btn-primary">Create Account</button>
    </form>
    <p class="muted">Already have an account? <a href="/login">Sign in</a></p>
  </div>
</main>
{{end}}`
