package writing

import "fmt"

func buildGrammarPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for grammar issues. Return a JSON array of issues found.
For each issue, provide:
- title: Brief title of the issue
- description: What's wrong
- category: Type of grammar issue
- severity: 'error' or 'warning'
- original: The problematic text
- replacement: Corrected version
- explanation: Why it's wrong and how to fix it

Text: %s

Return ONLY a JSON array, no other text.`, text)
}

func buildStylePrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for style improvements. Return a JSON array of suggestions.
Focus on:
- Wordiness
- Passive voice
- Repetition
- Weak verbs
- Cliches

For each suggestion, provide:
- title: What to improve
- description: Why it should be changed
- category: 'wordiness', 'passive', 'repetition', etc.
- severity: 'warning' or 'info'
- original: Current text
- replacement: Better version
- explanation: Why the replacement is better

Text: %s

Return ONLY a JSON array, no other text.`, text)
}

func buildClarityPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for clarity issues. Return a JSON array of suggestions.
Focus on:
- Complex sentences
- Jargon without explanation
- Ambiguous references
- Unclear transitions
- Confusing structure

For each issue, provide:
- title: What's unclear
- description: How it affects clarity
- category: 'complexity', 'jargon', 'ambiguity', etc.
- severity: 'warning' or 'info'
- original: Unclear text
- replacement: Clearer version
- explanation: How the replacement improves clarity

Text: %s

Return ONLY a JSON array, no other text.`, text)
}

func buildAcademicPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for academic writing standards. Return a JSON array of suggestions.
Focus on:
- Formal tone
- First/second person usage
- Contractions
- Colloquialisms
- Citation needs
- Hedging language
- Thesis clarity

For each issue, provide:
- title: Academic writing issue
- description: What needs improvement
- category: 'tone', 'citations', 'formality', etc.
- severity: 'warning' or 'info'
- original: Current text (if applicable)
- replacement: More academic version (if applicable)
- explanation: Why this is important in academic writing

Text: %s

Return ONLY a JSON array, no other text.`, text)
}

func buildImprovementsPrompt(text string) string {
	return fmt.Sprintf(`Based on this text, provide 3-5 high-level suggestions for improvement.
Focus on the biggest impact changes.
Return ONLY a JSON array of strings, no other text.

Text: %s`, text)
}

func buildParaphrasePrompt(text, style string) string {
	return fmt.Sprintf(`Paraphrase the following text in a %s style.
Maintain the meaning but use different words and sentence structure.

Original text: %s

Return only the paraphrased version, nothing else.`, style, text)
}
