package models

type Track string

const (
	TrackBackend   Track = "backend"
	TrackFrontend  Track = "frontend"
	TrackFullstack Track = "fullstack"
	TrackMobile    Track = "mobile"
	TrackDevops    Track = "devops"
	TrackData      Track = "data"
	TrackQA        Track = "qa"
)

var ValidTracks = map[Track]bool{
	TrackBackend:   true,
	TrackFrontend:  true,
	TrackFullstack: true,
	TrackMobile:    true,
	TrackDevops:    true,
	TrackData:      true,
	TrackQA:        true,
}

type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangGo         Language = "go"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangSwift      Language = "swift"
	LangKotlin     Language = "kotlin"
	LangPHP        Language = "php"
	LangRuby       Language = "ruby"
)

var ValidLanguages = map[Language]bool{
	LangJavaScript: true,
	LangTypeScript: true,
	LangPython:     true,
	LangRust:       true,
	LangGo:         true,
	LangJava:       true,
	LangCSharp:     true,
	LangSwift:      true,
	LangKotlin:     true,
	LangPHP:        true,
	LangRuby:       true,
}

type Experience string

const (
	ExpJunior    Experience = "0-2"
	ExpMid       Experience = "3-5"
	ExpSenior    Experience = "6-10"
	ExpStaff     Experience = "11-15"
	ExpPrincipal Experience = "16+"
)

var ValidExperience = map[Experience]bool{
	ExpJunior:    true,
	ExpMid:       true,
	ExpSenior:    true,
	ExpStaff:     true,
	ExpPrincipal: true,
}

type SkillCategory string

const (
	CategorySystemsDesign   SkillCategory = "systems_design"
	CategoryDatabases       SkillCategory = "databases"
	CategoryConcurrency     SkillCategory = "concurrency"
	CategoryAPIDesign       SkillCategory = "api_design"
	CategoryDebugging       SkillCategory = "debugging"
	CategoryPerformance     SkillCategory = "performance"
	CategorySecurity        SkillCategory = "security"
	CategoryTesting         SkillCategory = "testing"
	CategoryUIComponents    SkillCategory = "ui_components"
	CategoryStateManagement SkillCategory = "state_management"
	CategoryCSSLayout       SkillCategory = "css_layout"
	CategoryAccessibility   SkillCategory = "accessibility"
	CategoryDataModeling    SkillCategory = "data_modeling"
	CategoryAlgorithms      SkillCategory = "algorithms"
)

type QuestionType string

const (
	TypeBug    QuestionType = "bug"
	TypeOutput QuestionType = "output"
	TypeScales QuestionType = "scales"
	TypeSlow   QuestionType = "slow"
	TypeDiff   QuestionType = "diff"
)

var ValidQuestionTypes = map[QuestionType]bool{
	TypeBug:    true,
	TypeOutput: true,
	TypeScales: true,
	TypeSlow:   true,
	TypeDiff:   true,
}

type GameMode string

const (
	ModeDaily GameMode = "daily"
	ModeFull  GameMode = "full"
)

const (
	DailyRoundCount    = 5
	FullRoundCount     = 20
	DefaultTimeLimitMs = 20000
)

// Question is an immutable catalog entry. Catalogs are loaded once at startup
// and never mutated afterwards.
type Question struct {
	ID          string        `json:"id" yaml:"id"`
	Track       Track         `json:"track" yaml:"track"`
	Language    Language      `json:"language" yaml:"language"`
	Category    SkillCategory `json:"category" yaml:"category"`
	Difficulty  int           `json:"difficulty" yaml:"difficulty"`
	Type        QuestionType  `json:"type" yaml:"type"`
	Prompt      string        `json:"prompt" yaml:"prompt"`
	Code        string        `json:"code" yaml:"code"`
	Options     []string      `json:"options" yaml:"options"`
	Correct     int           `json:"correct" yaml:"correct"`
	TimeLimitMs int           `json:"timeLimitMs" yaml:"time_limit_ms"`
}

// Answer records the outcome of one round. Selected is nil on timeout.
// Category is denormalized from the question for score aggregation.
type Answer struct {
	QuestionID string        `json:"questionId"`
	Selected   *int          `json:"selected"`
	TimeMs     int           `json:"timeMs"`
	Correct    bool          `json:"correct"`
	Category   SkillCategory `json:"category"`
}

// Identity is chosen once before play and is immutable for the session.
type Identity struct {
	Track             Track      `json:"track"`
	Language          Language   `json:"language"`
	SecondaryLanguage *Language  `json:"secondaryLanguage,omitempty"`
	Experience        Experience `json:"experience"`
}

// CategoryEntry pairs a skill category with its display label for one track.
type CategoryEntry struct {
	Category SkillCategory `json:"category"`
	Label    string        `json:"label"`
}

// TrackCategories lists the six scored skill categories per track, in radar
// chart order.
var TrackCategories = map[Track][]CategoryEntry{
	TrackBackend: {
		{CategorySystemsDesign, "Systems Design"},
		{CategoryDatabases, "Databases"},
		{CategoryConcurrency, "Concurrency"},
		{CategoryAPIDesign, "API Design"},
		{CategoryDebugging, "Debugging"},
		{CategoryPerformance, "Performance"},
	},
	TrackFrontend: {
		{CategoryUIComponents, "Components"},
		{CategoryStateManagement, "State Mgmt"},
		{CategoryCSSLayout, "CSS & Layout"},
		{CategoryPerformance, "Performance"},
		{CategoryAccessibility, "Accessibility"},
		{CategoryDebugging, "Debugging"},
	},
	TrackFullstack: {
		{CategorySystemsDesign, "Systems Design"},
		{CategoryAPIDesign, "API Design"},
		{CategoryDatabases, "Databases"},
		{CategoryUIComponents, "Components"},
		{CategoryPerformance, "Performance"},
		{CategoryDebugging, "Debugging"},
	},
	TrackMobile: {
		{CategoryUIComponents, "UI/UX"},
		{CategoryStateManagement, "State Mgmt"},
		{CategoryPerformance, "Performance"},
		{CategoryConcurrency, "Concurrency"},
		{CategoryDebugging, "Debugging"},
		{CategorySecurity, "Security"},
	},
	TrackDevops: {
		{CategorySystemsDesign, "Infrastructure"},
		{CategorySecurity, "Security"},
		{CategoryPerformance, "Performance"},
		{CategoryDebugging, "Debugging"},
		{CategoryConcurrency, "Concurrency"},
		{CategoryDataModeling, "Monitoring"},
	},
	TrackData: {
		{CategoryDatabases, "Databases"},
		{CategoryAlgorithms, "Algorithms"},
		{CategoryDataModeling, "Data Modeling"},
		{CategoryPerformance, "Performance"},
		{CategorySystemsDesign, "Pipelines"},
		{CategoryDebugging, "Debugging"},
	},
	TrackQA: {
		{CategoryTesting, "Test Design"},
		{CategoryDebugging, "Debugging"},
		{CategoryPerformance, "Perf Testing"},
		{CategoryAPIDesign, "API Testing"},
		{CategorySecurity, "Security"},
		{CategorySystemsDesign, "Test Infra"},
	},
}

// TrackLanguages lists the languages offered per track in the identity
// selector.
var TrackLanguages = map[Track][]Language{
	TrackBackend:   {LangTypeScript, LangJavaScript, LangPython, LangGo, LangRust, LangJava, LangCSharp},
	TrackFrontend:  {LangTypeScript, LangJavaScript},
	TrackFullstack: {LangTypeScript, LangJavaScript, LangPython, LangCSharp, LangJava, LangGo},
	TrackMobile:    {LangSwift, LangKotlin},
	TrackData:      {LangPython},
	TrackDevops:    {LangTypeScript},
	TrackQA:        {LangPython, LangTypeScript},
}
