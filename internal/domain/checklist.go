package domain

// CheckDefinition holds the display metadata for one check. Pass/fail logic
// is never configured here; it is hard-coded in the evaluator families.
type CheckDefinition struct {
	Label    string `yaml:"label"    json:"label"`
	Priority string `yaml:"priority" json:"priority"`
	Hint     string `yaml:"hint"     json:"hint,omitempty"`
}

// Section groups related checks under a display label.
type Section struct {
	Label  string                     `yaml:"label"  json:"label"`
	Checks map[string]CheckDefinition `yaml:"checks" json:"checks"`
}

// Checklist is read-only configuration mapping section ids to sections.
// A nil or sparse checklist is valid: lookups fall back to built-in defaults,
// so an unavailable store never blocks evaluation.
type Checklist struct {
	Version  int                `yaml:"version"  json:"version"`
	Sections map[string]Section `yaml:"sections" json:"sections"`
}

// SectionLabel returns the display label for a section, falling back to the
// built-in default, then to the id itself.
func (c *Checklist) SectionLabel(sectionID string) string {
	if c != nil {
		if s, ok := c.Sections[sectionID]; ok && s.Label != "" {
			return s.Label
		}
	}
	if s, ok := builtinChecklist.Sections[sectionID]; ok {
		return s.Label
	}
	return sectionID
}

// Def returns the definition for a check, merging missing fields from the
// built-in defaults so evaluators always see a usable label, priority and
// hint.
func (c *Checklist) Def(sectionID, checkID string) CheckDefinition {
	def := builtinDef(sectionID, checkID)
	if c == nil {
		return def
	}
	s, ok := c.Sections[sectionID]
	if !ok {
		return def
	}
	override, ok := s.Checks[checkID]
	if !ok {
		return def
	}
	if override.Label != "" {
		def.Label = override.Label
	}
	if override.Priority != "" {
		def.Priority = override.Priority
	}
	if override.Hint != "" {
		def.Hint = override.Hint
	}
	return def
}

func builtinDef(sectionID, checkID string) CheckDefinition {
	if s, ok := builtinChecklist.Sections[sectionID]; ok {
		if d, ok := s.Checks[checkID]; ok {
			return d
		}
	}
	return CheckDefinition{Label: checkID, Priority: PriorityMedium}
}

// DefaultChecklist returns a copy of the compiled-in checklist, used when no
// checklist file can be resolved.
func DefaultChecklist() *Checklist {
	cl := &Checklist{Version: builtinChecklist.Version, Sections: make(map[string]Section, len(builtinChecklist.Sections))}
	for id, s := range builtinChecklist.Sections {
		checks := make(map[string]CheckDefinition, len(s.Checks))
		for cid, d := range s.Checks {
			checks[cid] = d
		}
		cl.Sections[id] = Section{Label: s.Label, Checks: checks}
	}
	return cl
}

var builtinChecklist = Checklist{
	Version: 1,
	Sections: map[string]Section{
		"technical": {
			Label: "Technical foundation",
			Checks: map[string]CheckDefinition{
				"doctype":     {Label: "HTML5 doctype declared", Priority: PriorityHigh, Hint: "Add <!DOCTYPE html> as the very first line"},
				"charset":     {Label: "Character encoding declared", Priority: PriorityHigh, Hint: "Add <meta charset=\"utf-8\"> inside <head>"},
				"viewport":    {Label: "Responsive viewport configured", Priority: PriorityCritical, Hint: "Add <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">"},
				"canonical":   {Label: "Canonical URL set", Priority: PriorityHigh, Hint: "Add <link rel=\"canonical\"> pointing at the preferred URL"},
				"favicon":     {Label: "Favicon present", Priority: PriorityLow, Hint: "Add <link rel=\"icon\"> referencing a favicon"},
				"robots_txt":  {Label: "robots.txt reachable", Priority: PriorityMedium, Hint: "Serve a robots.txt that does not block the whole site"},
				"sitemap_xml": {Label: "XML sitemap available", Priority: PriorityMedium, Hint: "Serve sitemap.xml or reference it from robots.txt"},
			},
		},
		"content": {
			Label: "On-page content",
			Checks: map[string]CheckDefinition{
				"title":            {Label: "Page title length", Priority: PriorityCritical, Hint: "Provide a descriptive <title> of 30-70 characters"},
				"meta_description": {Label: "Meta description length", Priority: PriorityCritical, Hint: "Provide a meta description of 100-170 characters"},
				"h1_presence":      {Label: "Exactly one H1 heading", Priority: PriorityHigh, Hint: "Use a single <h1> per page"},
				"heading_order":    {Label: "Heading levels not skipped", Priority: PriorityMedium, Hint: "Do not jump heading levels (h1 -> h3)"},
				"img_alt":          {Label: "Images have alt text", Priority: PriorityCritical, Hint: "Add an alt attribute to every <img>"},
				"img_dimensions":   {Label: "Images have width and height", Priority: PriorityMedium, Hint: "Add width and height attributes to <img> to avoid layout shift"},
				"content_length":   {Label: "Sufficient text content", Priority: PriorityMedium, Hint: "Aim for at least 300 words of visible text"},
				"internal_links":   {Label: "Internal links present", Priority: PriorityMedium, Hint: "Link to at least 3 pages on the same site"},
			},
		},
		"structured": {
			Label: "Structured data",
			Checks: map[string]CheckDefinition{
				"json_ld":   {Label: "JSON-LD structured data", Priority: PriorityHigh, Hint: "Embed a schema.org JSON-LD block with an @type"},
				"microdata": {Label: "Microdata markup", Priority: PriorityLow, Hint: "Annotate key content with itemscope/itemprop"},
			},
		},
		"social": {
			Label: "Social sharing",
			Checks: map[string]CheckDefinition{
				"og_title":       {Label: "Open Graph title", Priority: PriorityMedium, Hint: "Add <meta property=\"og:title\">"},
				"og_description": {Label: "Open Graph description", Priority: PriorityMedium, Hint: "Add <meta property=\"og:description\">"},
				"og_image":       {Label: "Open Graph image", Priority: PriorityMedium, Hint: "Add <meta property=\"og:image\">"},
				"twitter_card":   {Label: "Twitter card", Priority: PriorityLow, Hint: "Add <meta name=\"twitter:card\">"},
			},
		},
		"performance": {
			Label: "Performance hints",
			Checks: map[string]CheckDefinition{
				"script_defer": {Label: "Scripts deferred or async", Priority: PriorityMedium, Hint: "Add defer or async to external <script> tags"},
				"img_lazy":     {Label: "Images lazy-loaded", Priority: PriorityLow, Hint: "Add loading=\"lazy\" to below-the-fold images"},
				"inline_css":   {Label: "Inline styles kept minimal", Priority: PriorityLow, Hint: "Move repeated style attributes into a stylesheet"},
				"html_size":    {Label: "HTML document size", Priority: PriorityMedium, Hint: "Keep the HTML payload under 512 KiB"},
			},
		},
		"security": {
			Label: "Security headers",
			Checks: map[string]CheckDefinition{
				"hsts":                   {Label: "Strict-Transport-Security", Priority: PriorityHigh, Hint: "Send Strict-Transport-Security on HTTPS responses"},
				"x_content_type_options": {Label: "X-Content-Type-Options", Priority: PriorityMedium, Hint: "Send X-Content-Type-Options: nosniff"},
				"x_frame_options":        {Label: "X-Frame-Options", Priority: PriorityMedium, Hint: "Send X-Frame-Options or a frame-ancestors CSP"},
				"csp":                    {Label: "Content-Security-Policy", Priority: PriorityHigh, Hint: "Define a Content-Security-Policy header"},
				"referrer_policy":        {Label: "Referrer-Policy", Priority: PriorityLow, Hint: "Send a Referrer-Policy header"},
			},
		},
		"ux": {
			Label: "UX and conversion",
			Checks: map[string]CheckDefinition{
				"contact_page": {Label: "Contact page linked", Priority: PriorityMedium, Hint: "Link to a contact page from every page"},
				"phone_link":   {Label: "Click-to-call phone link", Priority: PriorityLow, Hint: "Mark phone numbers up with tel: links"},
				"cta_presence": {Label: "Call to action present", Priority: PriorityMedium, Hint: "Offer at least one button or clearly marked action"},
			},
		},
		"accessibility": {
			Label: "Accessibility",
			Checks: map[string]CheckDefinition{
				"lang_attr":      {Label: "Document language declared", Priority: PriorityHigh, Hint: "Add a lang attribute to <html>"},
				"aria_landmarks": {Label: "Landmark regions used", Priority: PriorityMedium, Hint: "Structure the page with <nav>, <main> or ARIA roles"},
				"skip_link":      {Label: "Skip-to-content link", Priority: PriorityLow, Hint: "Add a skip link as the first focusable element"},
				"form_labels":    {Label: "Form inputs labelled", Priority: PriorityHigh, Hint: "Associate every input with a <label for>"},
			},
		},
		"legal": {
			Label: "Legal notices",
			Checks: map[string]CheckDefinition{
				"privacy_policy": {Label: "Privacy policy linked", Priority: PriorityHigh, Hint: "Link to a privacy policy page"},
				"imprint":        {Label: "Imprint / legal notice linked", Priority: PriorityMedium, Hint: "Link to an imprint or legal notice page"},
				"cookie_notice":  {Label: "Cookie notice present", Priority: PriorityLow, Hint: "Inform visitors about cookie usage"},
			},
		},
	},
}
