package analysis

// Paper holds the metadata of a research paper under analysis
type Paper struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Abstract    string   `json:"abstract"`
	Keywords    []string `json:"keywords,omitempty"`
	Methodology string   `json:"methodology,omitempty"`
	KeyFindings []string `json:"keyFindings,omitempty"`
}

// Section describes one section of a paper for structure analysis
type Section struct {
	Type   string `json:"type"`
	Length int    `json:"length"`
}

// Issue is a single finding reported by an analysis
type Issue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Comparison is the result of a multi-paper comparative analysis
type Comparison struct {
	Summary         string   `json:"summary"`
	Similarities    []string `json:"similarities"`
	Differences     []string `json:"differences"`
	Insights        []string `json:"insights"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

// PaperSummary is the result of a single-paper summarization
type PaperSummary struct {
	Summary    string `json:"summary"`
	Type       string `json:"type"`
	TokensUsed int    `json:"tokens_used"`
}

// GapAnalysis is the result of a research-gap analysis
type GapAnalysis struct {
	Analysis       string `json:"analysis"`
	ResearchArea   string `json:"research_area"`
	PapersAnalyzed int    `json:"papers_analyzed"`
}

// TrendAnalysis is the result of a research-trend analysis
type TrendAnalysis struct {
	Analysis   string `json:"analysis"`
	PaperCount int    `json:"paper_count"`
}

// StructureReport scores section organization and completeness
type StructureReport struct {
	Score           float64  `json:"score"`
	HasAllSections  bool     `json:"has_all_sections"`
	MissingSections []string `json:"missing_sections"`
	PresentSections []string `json:"present_sections"`
	Issues          []Issue  `json:"issues"`
	Suggestions     []string `json:"suggestions"`
}

// MethodologyReport scores methodology completeness and rigor
type MethodologyReport struct {
	Score           float64  `json:"score"`
	Completeness    string   `json:"completeness"`
	HasAllElements  bool     `json:"has_all_elements"`
	MissingElements []string `json:"missing_elements"`
	Issues          []Issue  `json:"issues"`
	Suggestions     []string `json:"suggestions"`
}

// ClarityReport scores readability of academic text
type ClarityReport struct {
	Score             float64  `json:"score"`
	ReadabilityGrade  string   `json:"readability_grade"`
	AvgSentenceLength string   `json:"avg_sentence_length"`
	ComplexWordRatio  string   `json:"complex_word_ratio"`
	Issues            []Issue  `json:"issues"`
	Suggestions       []string `json:"suggestions"`
}

// ToneReport scores academic tone and formality
type ToneReport struct {
	Score            float64  `json:"score"`
	IsFormal         bool     `json:"is_formal"`
	FirstPersonUsage int      `json:"first_person_usage"`
	Contractions     int      `json:"contractions"`
	InformalLanguage int      `json:"informal_language"`
	Issues           []Issue  `json:"issues"`
	Suggestions      []string `json:"suggestions"`
}
