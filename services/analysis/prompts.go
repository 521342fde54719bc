package analysis

import (
	"fmt"
	"strings"
)

const (
	comparisonSystemPrompt  = "You are an expert research analyst comparing academic papers."
	summarySystemPrompt     = "You are an expert at summarizing academic papers clearly and accurately."
	gapSystemPrompt         = "You are a research strategist identifying gaps in scientific literature."
	extractionSystemPrompt  = "You are an expert at extracting methodology from research papers."
	insightsSystemPrompt    = "You are an expert at identifying key insights from research."
	trendSystemPrompt       = "You are a research trend analyst."
	reviewerSystemPrompt    = "You are an expert academic writing reviewer and editor with deep knowledge of research paper standards across multiple disciplines. Provide detailed, actionable, and accurate feedback."
	abstractExcerptLength   = 400
	methodologyExcerptLen   = 200
	analysisContentMaxChars = 4000
)

func buildComparisonPrompt(papers []Paper, focusAreas []string) string {
	return fmt.Sprintf(`Compare these research papers focusing on: %s

%s

Provide a structured comparison including:
1. Summary: Brief overview of how papers relate
2. Key Similarities: What approaches/findings are common
3. Key Differences: How papers differ in methodology or conclusions
4. Strengths and Weaknesses: Of each paper
5. Research Gaps: What questions remain unanswered
6. Recommendations: For future research or which paper to prioritize

Format as JSON with these keys: summary, similarities, differences, strengths, weaknesses, gaps, recommendations`,
		strings.Join(focusAreas, ", "), buildPaperSummaries(papers))
}

func buildSummaryPrompt(paper Paper, instructions string) string {
	return fmt.Sprintf(`Summarize this research paper:

Title: %s
Authors: %s
Abstract: %s
Keywords: %s

%s`,
		paper.Title,
		strings.Join(paper.Authors, ", "),
		paper.Abstract,
		strings.Join(paper.Keywords, ", "),
		instructions)
}

func buildGapPrompt(papers []Paper, researchArea string) string {
	return fmt.Sprintf(`Analyze these papers in %s and identify research gaps:

%s

Identify:
1. Unexplored Areas: Topics not covered
2. Methodological Gaps: Missing approaches or techniques
3. Contradictions: Conflicting findings that need resolution
4. Limitations: Common limitations across papers
5. Future Directions: Promising areas for future research

Provide specific, actionable gaps.`, researchArea, buildPaperSummaries(papers))
}

func buildMethodologyExtractionPrompt(paper Paper) string {
	return fmt.Sprintf(`Extract methodology details from this paper:

Title: %s
Abstract: %s

Extract and structure:
1. Research Method: Experimental, observational, computational, etc.
2. Datasets: Names and descriptions of datasets used
3. Evaluation Metrics: Metrics used to measure performance
4. Baselines: What the method is compared against
5. Implementation Details: Key technical details
6. Reproducibility: Information needed to reproduce

Format as structured JSON.`, paper.Title, paper.Abstract)
}

func buildInsightsPrompt(papers []Paper, maxInsights int) string {
	return fmt.Sprintf(`Extract the %d most important insights from these papers:

%s

Focus on:
- Novel findings or contributions
- Practical implications
- Theoretical advances
- Unexpected results
- Important limitations

List as concise bullet points.`, maxInsights, buildPaperSummaries(papers))
}

func buildTrendsPrompt(papers []Paper) string {
	return fmt.Sprintf(`Analyze research trends across these papers:

%s

Identify:
1. Evolving Themes: How topics have evolved
2. Methodological Trends: Popular or emerging methods
3. Shifting Focus: Changes in research priorities
4. Common Patterns: Recurring approaches or findings

Provide specific trends with evidence.`, buildPaperSummaries(papers))
}

func buildStructurePrompt(sections []Section) string {
	lines := make([]string, len(sections))
	for i, s := range sections {
		lines[i] = fmt.Sprintf("- %s: %d characters", s.Type, s.Length)
	}

	return fmt.Sprintf(`You are reviewing the structure of a research paper. Here are the sections present:

%s

Required sections for a complete research paper:
- abstract
- introduction
- literature_review (or related work)
- methodology (or methods)
- results
- discussion
- conclusion
- references

Tasks:
1. Identify which required sections are missing
2. Assess if sections are in logical order
3. Determine if section lengths are appropriate
4. Provide a quality score (0-100)
5. Give specific, actionable suggestions for improvement

Respond with ONLY a valid JSON object (no markdown, no extra text) with keys:
score, has_all_sections, missing_sections, present_sections, issues (array of
{severity, message}), suggestions.`, strings.Join(lines, "\n"))
}

func buildMethodologyPrompt(content string) string {
	return fmt.Sprintf(`Analyze the following methodology section from a research paper:

METHODOLOGY CONTENT:
%s

Evaluate the methodology based on:
1. Research Design: Is the overall approach clearly stated?
2. Data Collection: Are data collection methods described in detail?
3. Sample/Participants: Is the sample size and selection explained?
4. Analysis Methods: Are analysis techniques specified?
5. Validity/Reliability: Are measures for ensuring quality mentioned?
6. Ethical Considerations: Are ethical approvals and protections addressed?

Provide a score (0-100) and identify specific missing elements.

Respond with ONLY a valid JSON object with keys: score, completeness,
has_all_elements, missing_elements, issues (array of {severity, message}),
suggestions.`, truncate(content, 3000))
}

func buildClarityPrompt(content string) string {
	return fmt.Sprintf(`Analyze the clarity and readability of this academic text:

TEXT:
%s

Evaluate:
1. Sentence Complexity: Are sentences too long or convoluted?
2. Word Choice: Is vocabulary appropriate and clear?
3. Logical Flow: Do ideas connect smoothly?
4. Technical Jargon: Is jargon explained when first used?
5. Paragraph Structure: Are paragraphs well-organized?

Respond with ONLY a valid JSON object with keys: score, readability_grade,
avg_sentence_length, complex_word_ratio, issues (array of {severity,
message}), suggestions.`, truncate(content, analysisContentMaxChars))
}

func buildTonePrompt(content string) string {
	return fmt.Sprintf(`Analyze the academic tone and formality of this research paper text:

TEXT:
%s

Check for:
1. Formal Language: Is the tone appropriately academic?
2. First-Person Usage: Excessive use of "I" or "we"?
3. Contractions: Are contractions used (shouldn't, don't, can't)?
4. Informal Expressions: Colloquialisms, slang, or casual phrases?
5. Hedging Language: Appropriate use of qualifiers (may, might, suggest)?
6. Voice: Active vs passive voice balance?

Provide a formality score (0-100) and identify specific issues.

Respond with ONLY a valid JSON object with keys: score, is_formal,
first_person_usage, contractions, informal_language, issues (array of
{severity, message}), suggestions.`, truncate(content, analysisContentMaxChars))
}

// buildPaperSummaries formats papers into a delimited context block
func buildPaperSummaries(papers []Paper) string {
	summaries := make([]string, 0, len(papers))
	for i, paper := range papers {
		var b strings.Builder
		fmt.Fprintf(&b, "\nPaper %d: %s\n", i+1, paper.Title)
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(paper.Authors, ", "))
		fmt.Fprintf(&b, "Abstract: %s...\n", truncate(paper.Abstract, abstractExcerptLength))
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(firstN(paper.Keywords, 5), ", "))
		if paper.Methodology != "" {
			fmt.Fprintf(&b, "Methodology: %s...\n", truncate(paper.Methodology, methodologyExcerptLen))
		}
		if len(paper.KeyFindings) > 0 {
			fmt.Fprintf(&b, "Key Findings: %s\n", strings.Join(firstN(paper.KeyFindings, 3), ", "))
		}
		summaries = append(summaries, b.String())
	}
	return strings.Join(summaries, "\n---\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
