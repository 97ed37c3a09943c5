package models

// Option is a value/label pair for the identity selector.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var Tracks = []Option{
	{"backend", "Backend"},
	{"frontend", "Frontend"},
	{"fullstack", "Fullstack"},
	{"mobile", "Mobile"},
	{"devops", "DevOps"},
	{"data", "Data"},
	{"qa", "QA"},
}

var Languages = []Option{
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"python", "Python"},
	{"rust", "Rust"},
	{"go", "Go"},
	{"java", "Java"},
	{"csharp", "C#"},
	{"swift", "Swift"},
	{"kotlin", "Kotlin"},
	{"php", "PHP"},
	{"ruby", "Ruby"},
}

var ExperienceLevels = []Option{
	{"0-2", "0–2 years"},
	{"3-5", "3–5 years"},
	{"6-10", "6–10 years"},
	{"11-15", "11–15 years"},
	{"16+", "16+ years"},
}
