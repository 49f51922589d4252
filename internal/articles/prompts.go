package articles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Asamis999/seo-article-generator/internal/models"
)

const generationSystemPrompt = "You are an expert writer of SEO-optimized articles."

// typeInstructions describes how a given article type should be structured.
type typeInstructions struct {
	structure          string
	headings           string
	additionalGuidance string
}

// instructionsFor maps an article type to its structural outline and length
// guidance. Unknown types fall back to the standard outline.
func instructionsFor(articleType models.ArticleType, wordCount int) typeInstructions {
	switch articleType {
	case models.TypePillar:
		return typeInstructions{
			structure: `Generate a comprehensive pillar article with the following structure:
1. Introduction: an engaging hook and why the topic matters (include the target keywords)
2. Table of contents: a brief overview of the article structure
3. Complete background and history of the topic
4. 8-10 major subtopics covered in depth
5. Practical advice and best practices
6. Case studies and success stories
7. Concrete steps the reader can take
8. A detailed FAQ section
9. Conclusion: key takeaways and next steps`,
			headings: "H1, H2, H3, H4",
			additionalGuidance: fmt.Sprintf("Make this pillar article comprehensive and deep. Suggest placements for internal links to smaller cluster articles, target roughly %d words, and propose candidate meta title and meta description.", wordCount),
		}

	case models.TypeCluster:
		return typeInstructions{
			structure: `Generate a cluster article focused on a specific topic with the following structure:
1. Introduction focused on one aspect of the topic (include the target keywords)
2. Overview of why this topic matters
3. Concrete explanations and steps for the target keywords
4. Practical examples and actionable advice
5. Common questions and troubleshooting
6. Conclusion: summary of the main points and a call to action`,
			headings: "H2, H3",
			additionalGuidance: fmt.Sprintf("This cluster article links up to a pillar article. Place internal links to the pillar article where appropriate and target roughly %d words.", wordCount),
		}

	case models.TypeColumn:
		return typeInstructions{
			structure: `Generate a helpful column article with the following structure:
1. An engaging introduction: a hook or anecdote (include the target keywords)
2. Overview of the discussion the column covers
3. Development of the main points: situation, analysis, actionable insight
4. Practical advice the reader can apply immediately
5. Conclusion: the reader's next action and questions to consider`,
			headings: "H2, H3",
			additionalGuidance: fmt.Sprintf("Write in a conversational tone with actionable insights and references. Work in real examples and target roughly %d words.", wordCount),
		}

	case models.TypeLanding:
		return typeInstructions{
			structure: `Generate a conversion-focused landing page article with the following structure:
1. A high-impact headline and lead (include the target keywords)
2. A clear statement of the reader's problem and pain points
3. The solution: key benefits and features
4. Proof of credibility: concrete results and data
5. Customer testimonials
6. A FAQ section
7. A clear call to action and next steps`,
			headings: "H2, H3, H4",
			additionalGuidance: fmt.Sprintf("Make the copy persuasive enough to drive action. Use short paragraphs, callouts, bullet lists, and quotes; place multiple CTAs throughout; target roughly %d words.", wordCount),
		}

	case models.TypeQA:
		return typeInstructions{
			structure: `Generate a question-and-answer style article with the following structure:
1. Introduction: topic overview and context (include the target keywords)
2. Main questions and answers (around 10-15):
   - each question as a heading
   - each answer concrete and practical
3. Supplementary information and related resources
4. Conclusion: summary of key points and next steps`,
			headings: "H2 (questions), H3 (subsections)",
			additionalGuidance: fmt.Sprintf("Focus on what searchers specifically want to know, organized for FAQ schema markup, targeting roughly %d words.", wordCount),
		}

	default:
		return typeInstructions{
			structure: `Generate an article with the following structure:
1. An engaging introduction (include the target keywords)
2. The problem and an overview of the solution
3. Detailed solutions grounded in the use cases
4. Success stories (drawn from the additional data)
5. A call to action for the reader`,
			headings: "H2, H3",
			additionalGuidance: fmt.Sprintf("Present useful information clearly, target roughly %d words, and suggest internal link placements.", wordCount),
		}
	}
}

// buildGenerationPrompt assembles the user prompt for drafting an article.
func buildGenerationPrompt(brief models.ArticleBrief) string {
	wordCount := brief.WordCount
	if wordCount <= 0 {
		wordCount = models.DefaultWordCount
	}
	articleType := brief.ArticleType
	if articleType == "" {
		articleType = models.TypeStandard
	}

	instr := instructionsFor(articleType, wordCount)

	additional, _ := json.Marshal(brief.AdditionalData)

	var b strings.Builder
	b.WriteString("Generate an SEO-optimized article from the following brief.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", brief.Title)
	fmt.Fprintf(&b, "Target keywords: %s\n", strings.Join(brief.TargetKeywords, ", "))
	fmt.Fprintf(&b, "Target audience: %s\n", brief.TargetAudience)
	fmt.Fprintf(&b, "Use cases: %s\n", strings.Join(brief.UserCases, ", "))
	fmt.Fprintf(&b, "Additional data: %s\n", additional)
	fmt.Fprintf(&b, "Article type: %s\n", articleType)
	fmt.Fprintf(&b, "Target length: roughly %d words\n\n", wordCount)
	b.WriteString(instr.structure)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Keep the article readable, with SEO-optimized headings (%s), and suggest internal link placements.\n\n", instr.headings)
	b.WriteString(instr.additionalGuidance)

	return b.String()
}
