package usecase

// CategoryTaxonomy is the single source of truth for a category's topics.
// Both the profile adapter and the fallback selector consume it, so topic
// names never live as literals at call sites.
type CategoryTaxonomy struct {
	// OrderedTopics is the fixed scan order for fallback degradation.
	OrderedTopics []string
	// DefaultTopic is used when no better signal exists and as the last
	// fallback resolution step.
	DefaultTopic string
	// BasicTopics is the triple offered to learners with <3 recent answers.
	BasicTopics [3]string
	// IntermediateTopics is the quadruple offered in the steady state.
	IntermediateTopics [4]string
	// AdvancedTopics are offered to high performers.
	AdvancedTopics []string
}

var taxonomies = map[string]CategoryTaxonomy{
	"HTML": {
		OrderedTopics: []string{
			"HTML Basics", "HTML Elements", "HTML Attributes", "HTML Forms",
			"HTML Tables", "HTML Media", "Semantic HTML", "HTML5 APIs",
			"Web Components", "HTML Accessibility",
		},
		DefaultTopic:       "HTML Basics",
		BasicTopics:        [3]string{"HTML Basics", "HTML Elements", "HTML Attributes"},
		IntermediateTopics: [4]string{"HTML Forms", "HTML Tables", "HTML Media", "Semantic HTML"},
		AdvancedTopics:     []string{"HTML5 APIs", "Web Components", "HTML Accessibility"},
	},
	"CSS": {
		OrderedTopics: []string{
			"CSS Basics", "CSS Selectors", "CSS Colors", "CSS Box Model",
			"CSS Flexbox", "CSS Grid", "CSS Positioning", "CSS Animations",
			"CSS Variables", "Responsive Design",
		},
		DefaultTopic:       "CSS Basics",
		BasicTopics:        [3]string{"CSS Basics", "CSS Selectors", "CSS Colors"},
		IntermediateTopics: [4]string{"CSS Box Model", "CSS Flexbox", "CSS Grid", "CSS Positioning"},
		AdvancedTopics:     []string{"CSS Animations", "CSS Variables", "Responsive Design"},
	},
	"JavaScript": {
		OrderedTopics: []string{
			"JS Basics", "JS Variables", "JS Functions", "JS Arrays",
			"JS Objects", "JS DOM", "JS Events", "JS Async",
			"JS Closures", "JS Prototypes",
		},
		DefaultTopic:       "JS Basics",
		BasicTopics:        [3]string{"JS Basics", "JS Variables", "JS Functions"},
		IntermediateTopics: [4]string{"JS Arrays", "JS Objects", "JS DOM", "JS Events"},
		AdvancedTopics:     []string{"JS Async", "JS Closures", "JS Prototypes"},
	},
	"Python": {
		OrderedTopics: []string{
			"Python Basics", "Python Strings", "Python Lists", "Python Dicts",
			"Python Functions", "Python Loops", "Python Classes", "Python Generators",
			"Python Decorators", "Python Concurrency",
		},
		DefaultTopic:       "Python Basics",
		BasicTopics:        [3]string{"Python Basics", "Python Strings", "Python Lists"},
		IntermediateTopics: [4]string{"Python Dicts", "Python Functions", "Python Loops", "Python Classes"},
		AdvancedTopics:     []string{"Python Generators", "Python Decorators", "Python Concurrency"},
	},
}

// TaxonomyFor returns the taxonomy for a category. Unknown categories get an
// empty taxonomy with the category name itself as default topic, so adaptation
// still degrades gracefully instead of failing the request.
func TaxonomyFor(category string) CategoryTaxonomy {
	if t, ok := taxonomies[category]; ok {
		return t
	}
	return CategoryTaxonomy{
		DefaultTopic:       category + " Basics",
		BasicTopics:        [3]string{category + " Basics", category + " Basics", category + " Basics"},
		IntermediateTopics: [4]string{category + " Basics", category + " Basics", category + " Basics", category + " Basics"},
	}
}

// KnownCategory reports whether the category has a curated taxonomy.
func KnownCategory(category string) bool {
	_, ok := taxonomies[category]
	return ok
}

// Categories returns the curated category names, for validation.
func Categories() []string {
	names := make([]string, 0, len(taxonomies))
	for name := range taxonomies {
		names = append(names, name)
	}
	return names
}

// DefaultTopic is a shorthand used across the engine.
func DefaultTopic(category string) string {
	return TaxonomyFor(category).DefaultTopic
}
