// Package catalog holds the category-keyed option sets for the post-a-project
// wizard. Every legal Type, Activity, Deliverable, and suggested expertise tag
// is a function of (Category, Type), expressed as lookup tables so the wizard
// and draft store never branch on category directly.
package catalog

import "github.com/andy/gigpost/internal/domain"

// entry is the full option set owned by one category
type entry struct {
	types        []string
	deliverables []string
	expertise    []string

	// activities maps a type to its activity options. A type with no key
	// here never collects an activity.
	activities map[string][]string

	// typeDeliverables overrides deliverables per type (research only)
	typeDeliverables map[string][]string
}

var catalogs = map[domain.Category]entry{
	domain.CategoryWriting: {
		types: []string{
			"Technical Writing",
			"Copywriting",
			"Editing & Proofreading",
			"Grant Writing",
			"UX Writing",
		},
		// Writing always collects an activity, whatever the type
		activities: map[string][]string{
			"Technical Writing":      {"New document", "Rewrite existing", "Ongoing documentation"},
			"Copywriting":            {"Web copy", "Email campaign", "Ad copy", "Product descriptions"},
			"Editing & Proofreading": {"Developmental edit", "Copy edit", "Proofread"},
			"Grant Writing":          {"New application", "Revision", "Review & feedback"},
			"UX Writing":             {"Microcopy", "Onboarding flows", "Error messaging"},
		},
		deliverables: []string{"Outline", "Draft", "Final document", "Style guide"},
		expertise: []string{
			"SaaS", "Developer tools", "Healthcare", "Finance", "E-commerce",
			"Legal", "Education", "Nonprofit",
		},
	},
	domain.CategoryResearch: {
		types: []string{
			"Market Research",
			"Literature Review",
			"Competitive Analysis",
			"User Research",
		},
		// Research collects an activity only for market research
		activities: map[string][]string{
			"Market Research": {"Market sizing", "Customer segmentation", "Pricing study", "Trend analysis"},
		},
		deliverables: []string{"Research report", "Executive summary", "Raw data & notes"},
		typeDeliverables: map[string][]string{
			"Literature Review":    {"Annotated bibliography", "Synthesis report"},
			"User Research":        {"Interview transcripts", "Findings report", "Persona set"},
			"Competitive Analysis": {"Comparison matrix", "Strategy memo"},
		},
		expertise: []string{
			"B2B markets", "Consumer markets", "Academic research", "Survey design",
			"Statistics", "Interviewing",
		},
	},
	domain.CategoryConsulting: {
		types: []string{
			"Strategy Consulting",
			"Operations Consulting",
			"Financial Advisory",
			"Marketing Consulting",
		},
		deliverables: []string{"Recommendation deck", "Written assessment", "Workshop", "Ongoing advisory"},
		expertise: []string{
			"Go-to-market", "Fundraising", "Pricing", "Supply chain",
			"Organizational design", "Brand strategy",
		},
	},
	domain.CategoryDataAI: {
		types: []string{
			"Data Analysis",
			"Machine Learning",
			"Data Engineering",
			"LLM Integration",
			"Data Visualization",
		},
		// Only the model-building types collect an activity
		activities: map[string][]string{
			"Machine Learning": {"Model training", "Model evaluation", "Fine-tuning", "Deployment"},
			"LLM Integration":  {"Prompt engineering", "RAG pipeline", "Agent workflow", "Evaluation harness"},
			"Data Engineering": {"Pipeline build", "Warehouse design", "Migration"},
		},
		deliverables: []string{"Notebook & findings", "Trained model", "Pipeline code", "Dashboard"},
		expertise: []string{
			"Python", "SQL", "PyTorch", "NLP", "Computer vision",
			"dbt", "Spark", "Tableau",
		},
	},
	domain.CategoryProductDev: {
		types: []string{
			"Web Application",
			"Mobile Application",
			"API & Backend",
			"Prototype / MVP",
		},
		deliverables: []string{"Specification", "Working prototype", "Production release", "Code review"},
		expertise: []string{
			"React", "Go", "iOS", "Android", "PostgreSQL",
			"AWS", "Kubernetes", "Design systems",
		},
	},
}

// Types returns the legal type options for a category
func Types(c domain.Category) []string {
	return catalogs[c].types
}

// Activities returns the activity options for a (category, type) pair.
// Nil means no activity is collected for that pair.
func Activities(c domain.Category, typ string) []string {
	return catalogs[c].activities[typ]
}

// ActivityRequired reports whether a (category, type) pair collects an activity
func ActivityRequired(c domain.Category, typ string) bool {
	return len(catalogs[c].activities[typ]) > 0
}

// Deliverables returns the deliverable options for a category, further keyed
// by type where the category defines per-type deliverables.
func Deliverables(c domain.Category, typ string) []string {
	e := catalogs[c]
	if d, ok := e.typeDeliverables[typ]; ok {
		return d
	}
	return e.deliverables
}

// Expertise returns the suggested expertise tags for a category
func Expertise(c domain.Category) []string {
	return catalogs[c].expertise
}

// ValidType reports whether typ belongs to the category's type catalog
func ValidType(c domain.Category, typ string) bool {
	return contains(Types(c), typ)
}

// ValidActivity reports whether activity is legal for the (category, type) pair
func ValidActivity(c domain.Category, typ, activity string) bool {
	return contains(Activities(c, typ), activity)
}

// ValidDeliverable reports whether deliverable is legal for the (category, type) pair
func ValidDeliverable(c domain.Category, typ, deliverable string) bool {
	return contains(Deliverables(c, typ), deliverable)
}

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
