package view

// pageTemplate is the whole UI. Every view change re-renders the full
// page; the catalog grid and comment list are split into their own
// templates because those two regions are also repainted in place after
// background data loads.
const pageTemplate = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Adipo Documentaries</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body data-view="{{.View}}">
{{template "nav" .}}
{{template "toast" .Toast}}
{{if .Degraded}}<div class="banner-degraded">Showing sample data — the catalog service is unreachable.</div>{{end}}
<main>
{{if eq .View "home"}}{{template "view-home" .}}
{{else if eq .View "documentaries"}}{{template "view-documentaries" .}}
{{else if eq .View "subscribe"}}{{template "view-subscribe" .}}
{{else if eq .View "donate"}}{{template "view-donate" .}}
{{else if eq .View "comments"}}{{template "view-comments" .}}
{{else if eq .View "contact"}}{{template "view-contact" .}}
{{else if eq .View "admin"}}{{template "view-admin" .}}
{{else if eq .View "login"}}{{template "view-login" .}}
{{else if eq .View "register"}}{{template "view-register" .}}
{{end}}
</main>
</body>
</html>{{end}}

{{define "nav"}}
<header>
<nav>
<a href="/home" class="brand">Adipo Documentaries</a>
<ul>
<li><a href="/home" {{if eq .View "home"}}class="active"{{end}}>Home</a></li>
<li><a href="/documentaries" {{if eq .View "documentaries"}}class="active"{{end}}>Documentaries</a></li>
<li><a href="/subscribe" {{if eq .View "subscribe"}}class="active"{{end}}>Subscribe</a></li>
<li><a href="/donate" {{if eq .View "donate"}}class="active"{{end}}>Donate</a></li>
<li><a href="/comments" {{if eq .View "comments"}}class="active"{{end}}>Comments</a></li>
<li><a href="/contact" {{if eq .View "contact"}}class="active"{{end}}>Contact</a></li>
<li><a href="/admin" {{if eq .View "admin"}}class="active"{{end}}>Admin</a></li>
</ul>
{{if .UserLoggedIn}}
<form method="post" action="/logout"><button type="submit">Logout</button></form>
{{else}}
<a href="/login" class="nav-login">Login</a>
{{end}}
</nav>
</header>
{{end}}

{{define "toast"}}
{{if .}}<div class="toast toast-{{.Kind}}" data-auto-dismiss="5000" role="status">{{.Message}}</div>{{end}}
{{end}}

{{define "view-home"}}
<section class="hero">
<h1>Explore the World Through Stories</h1>
<p>{{len .Documentaries}} documentaries · {{.TotalDownloads}} total downloads</p>
</section>
<section class="featured">
<h2>Featured Documentaries</h2>
<div class="grid">
{{range $i, $d := .Documentaries}}{{if lt $i 3}}{{template "doc-card" $d}}{{end}}{{end}}
</div>
</section>
{{end}}

{{define "view-documentaries"}}
<section>
<h2>All Documentaries</h2>
<form method="get" action="/documentaries">
<select name="category" onchange="this.form.submit()">
<option value="">All categories</option>
{{$cat := .Category}}
<option value="nature" {{if eq $cat "nature"}}selected{{end}}>Nature</option>
<option value="society" {{if eq $cat "society"}}selected{{end}}>Society</option>
<option value="culture" {{if eq $cat "culture"}}selected{{end}}>Culture</option>
<option value="history" {{if eq $cat "history"}}selected{{end}}>History</option>
<option value="science" {{if eq $cat "science"}}selected{{end}}>Science</option>
<option value="technology" {{if eq $cat "technology"}}selected{{end}}>Technology</option>
</select>
</form>
{{template "catalog-grid" .FilteredDocumentaries}}
</section>
{{end}}

{{define "catalog-grid"}}
<div class="grid" id="catalog-grid">
{{range .}}{{template "doc-card" .}}{{end}}
{{if not .}}<p class="empty">No documentaries yet.</p>{{end}}
</div>
{{end}}

{{define "doc-card"}}
<article class="documentary-card" data-id="{{.ID}}">
<div class="card-img{{if isFallback .}} fallback{{end}}" style="background-image: url('{{imageURL .}}')"></div>
<div class="card-body">
<h3>{{.Title}}</h3>
<p class="category">{{.Category}}</p>
<p>{{.Description}}</p>
<p class="meta">{{stars .Rating}} · {{.Downloads}} downloads{{with .Duration}} · {{.}}{{end}}</p>
{{with .VideoURL}}<a href="{{.}}" class="watch">Watch</a>{{end}}
{{if hasPDF .}}<a href="{{.PDFURL}}" class="pdf">PDF</a>{{end}}
<form method="post" action="/download/{{.ID}}"><button type="submit">Download</button></form>
</div>
</article>
{{end}}

{{define "view-comments"}}
<section>
<h2>Community Comments</h2>
{{template "comment-list" .Comments}}
<h3>Share your thoughts</h3>
<form method="post" action="/comment">
<input type="text" name="author" placeholder="Enter your name" required>
<input type="email" name="email" placeholder="Enter your email" required>
<textarea name="text" rows="4" placeholder="Share your thoughts about our documentaries..." required></textarea>
<button type="submit">Post Comment</button>
</form>
</section>
{{end}}

{{define "comment-list"}}
<div class="comments" id="comment-list">
{{range .}}
<div class="comment">
<p class="author">{{.Author}}</p>
<p>{{.Text}}</p>
<p class="date">{{.DateAdded.Format "Jan 2, 2006"}}</p>
</div>
{{end}}
{{if not .}}<p class="empty">No comments yet. Be the first!</p>{{end}}
</div>
{{end}}

{{define "view-subscribe"}}
<section>
<h2>Subscribe</h2>
<p>Get notified when new documentaries arrive.</p>
<form method="post" action="/subscribe">
<input type="email" name="email" placeholder="Your email address" required>
<button type="submit">Subscribe</button>
</form>
</section>
{{end}}

{{define "view-donate"}}
<section>
<h2>Support Independent Documentaries</h2>
<p>Your donation keeps this catalog free for everyone.</p>
</section>
{{end}}

{{define "view-contact"}}
<section>
<h2>Contact Us</h2>
<form method="post" action="/contact">
<input type="text" name="name" placeholder="Enter your full name" required>
<input type="email" name="email" placeholder="Enter your email" required>
<input type="text" name="subject" placeholder="What is this regarding?" required>
<textarea name="message" rows="5" placeholder="Tell us how we can help you..." required></textarea>
<button type="submit">Send Message</button>
</form>
</section>
{{end}}

{{define "view-admin"}}
{{if not .AdminLoggedIn}}
<section>
<h2>Admin Login</h2>
<form method="post" action="/admin-login">
<input type="text" name="username" placeholder="Enter admin username" required>
<input type="password" name="password" placeholder="Enter admin password" required>
<button type="submit">Login</button>
</form>
</section>
{{else}}
<section>
<h2>Admin Dashboard</h2>
<form method="post" action="/admin-logout"><button type="submit">Admin Logout</button></form>
<h3>Add Documentary</h3>
<form method="post" action="/documentary">
<input type="text" name="title" placeholder="Enter documentary title" required>
<select name="category" required>
<option value="nature">Nature</option>
<option value="society">Society</option>
<option value="culture">Culture</option>
<option value="history">History</option>
<option value="science">Science</option>
<option value="technology">Technology</option>
</select>
<textarea name="description" placeholder="Enter detailed description of the documentary..." required rows="4"></textarea>
<input type="text" name="duration" placeholder="e.g., 45 min, 1h 30m">
<input type="url" name="image_url" placeholder="https://images.unsplash.com/photo-1234567890" required>
<input type="url" name="video_url" placeholder="https://www.youtube.com/watch?v=VIDEO_ID">
<input type="url" name="pdf_url" placeholder="https://example.com/document.pdf">
<button type="submit">Add Documentary</button>
</form>
<h3>Manage Catalog</h3>
<div class="admin-list">
{{range .Documentaries}}
<div class="admin-row">
<span>{{.Title}} ({{.Category}}) — {{.Downloads}} downloads</span>
<form method="post" action="/delete/{{.ID}}"><button type="submit">Delete</button></form>
</div>
{{end}}
</div>
</section>
{{end}}
{{end}}

{{define "view-login"}}
<section>
<h2>Login</h2>
<form method="post" action="/login">
<input type="email" name="email" placeholder="Enter your email" required>
<input type="password" name="password" placeholder="Enter your password" required>
<button type="submit">Login</button>
</form>
<p>New here? <a href="/register">Create an account</a></p>
</section>
{{end}}

{{define "view-register"}}
<section>
<h2>Create Account</h2>
<form method="post" action="/register">
<input type="text" name="name" placeholder="Enter your full name" required>
<input type="email" name="email" placeholder="Enter your email" required>
<input type="password" name="password" placeholder="Create a password" required>
<input type="password" name="confirm" placeholder="Confirm your password" required>
<button type="submit">Register</button>
</form>
</section>
{{end}}
`
