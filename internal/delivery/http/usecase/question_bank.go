package usecase

import "github.com/quizforge/quizforge-be/internal/delivery/http/entity"

// questionBankData is the curated fallback bank. It is compiled into the
// binary and never mutated at runtime; lookups go through the index built in
// init below.
var questionBankData = []entity.StaticQuestionTemplate{
	// ==================== HTML ====================
	{
		Category: "HTML", Topic: "HTML Basics", Difficulty: entity.LevelBeginner,
		Question:      "What does HTML stand for?",
		Options:       []string{"HyperText Markup Language", "HighText Machine Language", "HyperTool Multi Language", "Home Tool Markup Language"},
		CorrectAnswer: "HyperText Markup Language",
		Explanation:   "HTML is the standard markup language for creating web pages.",
	},
	{
		Category: "HTML", Topic: "HTML Basics", Difficulty: entity.LevelBeginner,
		Question:      "Which tag is used to define the largest heading?",
		Options:       []string{"<h1>", "<h6>", "<heading>", "<head>"},
		CorrectAnswer: "<h1>",
		Explanation:   "<h1> defines the most important, largest heading; <h6> is the smallest.",
	},
	{
		Category: "HTML", Topic: "HTML Basics", Difficulty: entity.LevelBeginner,
		Question:      "Which element contains metadata about the document?",
		Options:       []string{"<head>", "<body>", "<meta-info>", "<header>"},
		CorrectAnswer: "<head>",
		Explanation:   "The <head> element holds metadata such as the title, styles and scripts.",
	},
	{
		Category: "HTML", Topic: "HTML Elements", Difficulty: entity.LevelBeginner,
		Question:      "Which tag creates a hyperlink?",
		Options:       []string{"<a>", "<link>", "<href>", "<url>"},
		CorrectAnswer: "<a>",
		Explanation:   "The anchor tag <a> with an href attribute creates a hyperlink.",
	},
	{
		Category: "HTML", Topic: "HTML Elements", Difficulty: entity.LevelBeginner,
		Question:      "Which tag inserts a line break?",
		Options:       []string{"<br>", "<lb>", "<break>", "<newline>"},
		CorrectAnswer: "<br>",
		Explanation:   "<br> is an empty element producing a single line break.",
	},
	{
		Category: "HTML", Topic: "HTML Attributes", Difficulty: entity.LevelBeginner,
		Question:      "Which attribute provides alternative text for an image?",
		Options:       []string{"alt", "title", "src", "text"},
		CorrectAnswer: "alt",
		Explanation:   "The alt attribute describes the image for screen readers and broken loads.",
	},
	{
		Category: "HTML", Topic: "HTML Forms", Difficulty: entity.LevelIntermediate,
		Question:      "Which input type restricts entry to an email address format?",
		Options:       []string{"type=\"email\"", "type=\"mail\"", "type=\"address\"", "type=\"text-email\""},
		CorrectAnswer: "type=\"email\"",
		Explanation:   "HTML5 added type=\"email\" with built-in format validation.",
	},
	{
		Category: "HTML", Topic: "HTML Forms", Difficulty: entity.LevelIntermediate,
		Question:      "Which attribute on <form> sets where the data is sent?",
		Options:       []string{"action", "method", "target", "destination"},
		CorrectAnswer: "action",
		Explanation:   "The action attribute holds the URL that receives the form submission.",
	},
	{
		Category: "HTML", Topic: "HTML Tables", Difficulty: entity.LevelIntermediate,
		Question:      "Which tag defines a table header cell?",
		Options:       []string{"<th>", "<td>", "<tr>", "<thead>"},
		CorrectAnswer: "<th>",
		Explanation:   "<th> marks a header cell; <td> is a regular data cell.",
	},
	{
		Category: "HTML", Topic: "Semantic HTML", Difficulty: entity.LevelIntermediate,
		Question:      "Which element represents standalone, self-contained content?",
		Options:       []string{"<article>", "<section>", "<div>", "<aside>"},
		CorrectAnswer: "<article>",
		Explanation:   "<article> wraps content that makes sense on its own, like a blog post.",
	},
	{
		Category: "HTML", Topic: "HTML5 APIs", Difficulty: entity.LevelAdvanced,
		Question:      "Which API stores key/value pairs that survive browser restarts?",
		Options:       []string{"localStorage", "sessionStorage", "cookieStore", "memoryStorage"},
		CorrectAnswer: "localStorage",
		Explanation:   "localStorage persists across sessions; sessionStorage is cleared when the tab closes.",
	},
	{
		Category: "HTML", Topic: "Web Components", Difficulty: entity.LevelAdvanced,
		Question:      "Which feature encapsulates a component's internal DOM?",
		Options:       []string{"Shadow DOM", "Virtual DOM", "Hidden DOM", "Scoped DOM"},
		CorrectAnswer: "Shadow DOM",
		Explanation:   "Shadow DOM isolates a component's markup and styles from the page.",
	},

	// ==================== CSS ====================
	{
		Category: "CSS", Topic: "CSS Basics", Difficulty: entity.LevelBeginner,
		Question:      "What does CSS stand for?",
		Options:       []string{"Cascading Style Sheets", "Computer Style Sheets", "Creative Style System", "Colorful Style Sheets"},
		CorrectAnswer: "Cascading Style Sheets",
		Explanation:   "CSS describes how HTML elements are displayed.",
	},
	{
		Category: "CSS", Topic: "CSS Basics", Difficulty: entity.LevelBeginner,
		Question:      "Which property changes the text color of an element?",
		Options:       []string{"color", "text-color", "font-color", "fgcolor"},
		CorrectAnswer: "color",
		Explanation:   "The color property sets the foreground (text) color.",
	},
	{
		Category: "CSS", Topic: "CSS Selectors", Difficulty: entity.LevelBeginner,
		Question:      "Which selector targets an element with id=\"menu\"?",
		Options:       []string{"#menu", ".menu", "menu", "*menu"},
		CorrectAnswer: "#menu",
		Explanation:   "The # prefix selects by id; the . prefix selects by class.",
	},
	{
		Category: "CSS", Topic: "CSS Box Model", Difficulty: entity.LevelIntermediate,
		Question:      "Which property adds space inside an element's border?",
		Options:       []string{"padding", "margin", "spacing", "border-gap"},
		CorrectAnswer: "padding",
		Explanation:   "Padding is inside the border, margin is outside it.",
	},
	{
		Category: "CSS", Topic: "CSS Flexbox", Difficulty: entity.LevelIntermediate,
		Question:      "Which property aligns flex items along the main axis?",
		Options:       []string{"justify-content", "align-items", "flex-align", "main-align"},
		CorrectAnswer: "justify-content",
		Explanation:   "justify-content distributes items along the main axis; align-items handles the cross axis.",
	},
	{
		Category: "CSS", Topic: "CSS Grid", Difficulty: entity.LevelIntermediate,
		Question:      "Which property defines the column structure of a grid container?",
		Options:       []string{"grid-template-columns", "grid-columns", "column-template", "grid-layout"},
		CorrectAnswer: "grid-template-columns",
		Explanation:   "grid-template-columns sets the number and size of grid columns.",
	},
	{
		Category: "CSS", Topic: "CSS Animations", Difficulty: entity.LevelAdvanced,
		Question:      "Which at-rule defines the stages of a CSS animation?",
		Options:       []string{"@keyframes", "@animation", "@stages", "@transition"},
		CorrectAnswer: "@keyframes",
		Explanation:   "@keyframes declares the waypoints an animation passes through.",
	},
	{
		Category: "CSS", Topic: "CSS Variables", Difficulty: entity.LevelAdvanced,
		Question:      "How is a custom property referenced in a value?",
		Options:       []string{"var(--name)", "$name", "custom(--name)", "prop(name)"},
		CorrectAnswer: "var(--name)",
		Explanation:   "Custom properties are declared as --name and read with var(--name).",
	},

	// ==================== JavaScript ====================
	{
		Category: "JavaScript", Topic: "JS Basics", Difficulty: entity.LevelBeginner,
		Question:      "Which keyword declares a block-scoped variable that can be reassigned?",
		Options:       []string{"let", "var", "const", "def"},
		CorrectAnswer: "let",
		Explanation:   "let is block-scoped and reassignable; const is block-scoped but not reassignable.",
	},
	{
		Category: "JavaScript", Topic: "JS Basics", Difficulty: entity.LevelBeginner,
		Question:      "What is the result of typeof null?",
		Options:       []string{"\"object\"", "\"null\"", "\"undefined\"", "\"none\""},
		CorrectAnswer: "\"object\"",
		Explanation:   "typeof null returning \"object\" is a long-standing quirk of the language.",
	},
	{
		Category: "JavaScript", Topic: "JS Functions", Difficulty: entity.LevelBeginner,
		Question:      "Which syntax defines an arrow function?",
		Options:       []string{"(a, b) => a + b", "function => (a, b)", "a, b -> a + b", "=> (a, b) a + b"},
		CorrectAnswer: "(a, b) => a + b",
		Explanation:   "Arrow functions use parameter list, =>, then the body.",
	},
	{
		Category: "JavaScript", Topic: "JS Arrays", Difficulty: entity.LevelIntermediate,
		Question:      "Which method creates a new array with elements that pass a test?",
		Options:       []string{"filter", "map", "forEach", "reduce"},
		CorrectAnswer: "filter",
		Explanation:   "filter returns a new array containing the elements for which the callback returns true.",
	},
	{
		Category: "JavaScript", Topic: "JS DOM", Difficulty: entity.LevelIntermediate,
		Question:      "Which method selects the first element matching a CSS selector?",
		Options:       []string{"document.querySelector", "document.getElement", "document.selectFirst", "document.findNode"},
		CorrectAnswer: "document.querySelector",
		Explanation:   "querySelector returns the first match; querySelectorAll returns all matches.",
	},
	{
		Category: "JavaScript", Topic: "JS Async", Difficulty: entity.LevelAdvanced,
		Question:      "What does await do inside an async function?",
		Options:       []string{"Pauses until the promise settles", "Blocks the event loop", "Converts a value to a promise", "Retries a rejected promise"},
		CorrectAnswer: "Pauses until the promise settles",
		Explanation:   "await suspends the async function without blocking the event loop.",
	},
	{
		Category: "JavaScript", Topic: "JS Closures", Difficulty: entity.LevelAdvanced,
		Question:      "A closure gives a function access to what?",
		Options:       []string{"Variables from its defining scope", "The global object only", "Its caller's local variables", "The prototype chain"},
		CorrectAnswer: "Variables from its defining scope",
		Explanation:   "A closure captures the lexical environment where the function was created.",
	},

	// ==================== Python ====================
	{
		Category: "Python", Topic: "Python Basics", Difficulty: entity.LevelBeginner,
		Question:      "Which function prints output to the console?",
		Options:       []string{"print()", "echo()", "console.log()", "write()"},
		CorrectAnswer: "print()",
		Explanation:   "print() writes its arguments to standard output.",
	},
	{
		Category: "Python", Topic: "Python Lists", Difficulty: entity.LevelBeginner,
		Question:      "Which method appends an element to the end of a list?",
		Options:       []string{"append()", "add()", "push()", "insert()"},
		CorrectAnswer: "append()",
		Explanation:   "list.append(x) adds x to the end; insert(i, x) places it at an index.",
	},
	{
		Category: "Python", Topic: "Python Dicts", Difficulty: entity.LevelIntermediate,
		Question:      "Which method returns a value with a default when the key is missing?",
		Options:       []string{"get()", "fetch()", "value()", "lookup()"},
		CorrectAnswer: "get()",
		Explanation:   "dict.get(key, default) avoids a KeyError for missing keys.",
	},
	{
		Category: "Python", Topic: "Python Functions", Difficulty: entity.LevelIntermediate,
		Question:      "What does *args collect in a function signature?",
		Options:       []string{"Extra positional arguments", "Extra keyword arguments", "Global variables", "Return values"},
		CorrectAnswer: "Extra positional arguments",
		Explanation:   "*args gathers surplus positional arguments into a tuple; **kwargs gathers keyword arguments.",
	},
	{
		Category: "Python", Topic: "Python Generators", Difficulty: entity.LevelAdvanced,
		Question:      "Which keyword turns a function into a generator?",
		Options:       []string{"yield", "async", "gen", "lazy"},
		CorrectAnswer: "yield",
		Explanation:   "A function containing yield returns a generator iterator when called.",
	},
	{
		Category: "Python", Topic: "Python Decorators", Difficulty: entity.LevelAdvanced,
		Question:      "What does a decorator receive as its argument?",
		Options:       []string{"The function it wraps", "The module namespace", "The call arguments", "A class instance"},
		CorrectAnswer: "The function it wraps",
		Explanation:   "A decorator is a callable taking the wrapped function and returning a replacement.",
	},
}

// questionBank indexes the bank as category -> topic -> level -> templates.
var questionBank map[string]map[string]map[entity.Level][]entity.StaticQuestionTemplate

func init() {
	questionBank = make(map[string]map[string]map[entity.Level][]entity.StaticQuestionTemplate)
	for _, tpl := range questionBankData {
		byTopic, ok := questionBank[tpl.Category]
		if !ok {
			byTopic = make(map[string]map[entity.Level][]entity.StaticQuestionTemplate)
			questionBank[tpl.Category] = byTopic
		}
		byLevel, ok := byTopic[tpl.Topic]
		if !ok {
			byLevel = make(map[entity.Level][]entity.StaticQuestionTemplate)
			byTopic[tpl.Topic] = byLevel
		}
		byLevel[tpl.Difficulty] = append(byLevel[tpl.Difficulty], tpl)
	}
}

// bankPool returns the templates for an exact (category, topic, level) key.
// The returned slice must not be mutated.
func bankPool(category, topic string, level entity.Level) []entity.StaticQuestionTemplate {
	byTopic, ok := questionBank[category]
	if !ok {
		return nil
	}
	byLevel, ok := byTopic[topic]
	if !ok {
		return nil
	}
	return byLevel[level]
}
