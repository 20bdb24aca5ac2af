package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/ascendai/backend/config"
	"github.com/ascendai/backend/models"
)

// Per-feature sampling temperatures. Extraction wants determinism; the
// generative features tolerate a little creativity.
const (
	tempParseResume = 0.0
	tempATSScore    = 0.15
	tempRoadmap     = 0.2
	tempQuestions   = 0.3
	tempGrading     = 0.2
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:    client,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// generate sends a single prompt at the given temperature and returns the raw
// reply text. There is no retry; a failed or empty reply fails the request.
func (c *Client) generate(ctx context.Context, temperature float32, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(temperature)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("no response from Gemini")
	}
	return text, nil
}

// ParseResume extracts structured fields from resume text
func (c *Client) ParseResume(ctx context.Context, resumeText string) (*models.ParsedResume, error) {
	prompt := fmt.Sprintf(`You are a resume parser. Analyze this resume and extract the following information in a structured JSON format.

Return ONLY valid JSON with no markdown formatting, no code blocks, no extra text. The JSON should have these exact keys:
{
  "skills": ["skill1", "skill2", ...],
  "experience": ["experience description 1", "experience description 2", ...],
  "projects": ["project description 1", "project description 2", ...],
  "summary": "A brief summary/about section of the candidate"
}

If a section is not found, return an empty array for arrays or empty string for summary.
Parse the resume thoroughly and extract ALL relevant information.

RESUME TEXT:
%s`, resumeText)

	text, err := c.generate(ctx, tempParseResume, prompt)
	if err != nil {
		return nil, err
	}

	var parsed models.ParsedResume
	if err := decodeReply(text, parsedResumeSchema, &parsed); err != nil {
		log.Printf("[Gemini] Failed to parse resume response: %s", text)
		return nil, err
	}

	log.Printf("[Gemini] Parsed resume: skills=%d, experience=%d, projects=%d",
		len(parsed.Skills), len(parsed.Experience), len(parsed.Projects))

	return &parsed, nil
}

// AnalyzeATS scores a resume for ATS compatibility
func (c *Client) AnalyzeATS(ctx context.Context, resumeText string, pageCount int) (*models.ATSReport, error) {
	prompt := fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) resume analyzer and career coach. You have extensive knowledge of how ATS systems like Lever, Greenhouse, Workday, Taleo, iCIMS, and others parse and score resumes.

Analyze the following resume text thoroughly and provide a comprehensive ATS compatibility score.

Resume Text:
"""
%s
"""

Estimated Page Count: %d

Evaluate the resume on ALL of the following criteria:

**1. Content Sections (30 points)**
- Does the resume have a clear Work Experience section with proper job titles, company names, dates, and bullet-point descriptions?
- Does it have a Projects section with project names, descriptions, technologies used, and links?
- Does it have a Skills section with relevant technical and soft skills, properly categorized?
- Does it have a professional Summary/Objective section at the top?
- Does it have an Education section with degree, institution, dates, and GPA (if applicable)?
- Are there certifications, awards, or publications if relevant?

**2. Grammar & Language (15 points)**
- Are there any grammatical errors, typos, or awkward phrasing?
- Are action verbs used to start bullet points (Developed, Implemented, Led, etc.)?
- Is the language professional and concise?

**3. Formatting & Structure (25 points)**
- Are section headers clearly defined and consistent in style?
- Are there uneven paddings or spacing issues detectable from the text structure?
- Is the resume well-organized with clear visual hierarchy?
- Are dates aligned consistently and bullet point formatting consistent?

**4. ATS Optimization (15 points)**
- Does the resume avoid tables, columns, headers/footers, and graphics that ATS cannot parse?
- Are standard section headings used (e.g., "Work Experience" not "Where I've Worked")?
- Are keywords and industry terms present?

**5. Page Length (5 points)**
- Is the resume ideally 1 page for entry-level/mid-level or 2 pages max for senior roles?

**6. Links & Contact Info (10 points)**
- Does the resume include project links (GitHub, live demos), a LinkedIn profile, a portfolio/website link, and proper contact information?

Return ONLY valid JSON with no markdown formatting, no code blocks, no extra text. The JSON must have these exact keys:
{
  "overallScore": <number 0-100>,
  "sectionScores": {
    "contentSections": <number 0-30>,
    "grammarLanguage": <number 0-15>,
    "formattingStructure": <number 0-25>,
    "atsOptimization": <number 0-15>,
    "pageLength": <number 0-5>,
    "linksContactInfo": <number 0-10>
  },
  "doneRight": ["Specific thing done well 1", "... at least 5 items"],
  "improvements": ["Specific improvement needed 1 with actionable advice", "... at least 5 items"],
  "summary": "A 2-3 sentence overall assessment of the resume's ATS compatibility",
  "detectedSections": ["List of sections found in the resume"],
  "missingSections": ["List of important sections missing from the resume"],
  "keywordsFound": ["List of relevant keywords/skills detected"],
  "pageCount": %d
}

Be strict but fair in your scoring. Most average resumes score between 45-65. Well-optimized resumes score 70-85. Only exceptional resumes score above 85. Provide at least 5 items each for doneRight and improvements.`, resumeText, pageCount, pageCount)

	text, err := c.generate(ctx, tempATSScore, prompt)
	if err != nil {
		return nil, err
	}

	var report models.ATSReport
	if err := decodeReply(text, atsReportSchema, &report); err != nil {
		log.Printf("[Gemini] Failed to parse ATS response: %s", text)
		return nil, err
	}

	return &report, nil
}

// GenerateRoadmap builds a career roadmap from a resume and the user's goals
func (c *Client) GenerateRoadmap(ctx context.Context, resumeText, timeframe, targetIndustry, additionalGoals string) (*models.Roadmap, error) {
	if additionalGoals == "" {
		additionalGoals = "None provided"
	}

	prompt := fmt.Sprintf(`You are an expert career counselor and strategist. Analyze this resume along with the user's goals to create a structured, step-by-step career roadmap.

Resume details:
%s

User Goals:
- Timeframe: %s
- Target Industry: %s
- Additional Goals & Context: %s

Return ONLY valid JSON with no markdown formatting, no code blocks, no extra text. The JSON should have these exact keys:
{
  "currentPosition": "The candidate's current position fetched from the resume's latest experience section",
  "targetPosition": "A summarized sentence of the target industry plus additional goals",
  "strategyOverview": "A 1 paragraph overview of the strategy to reach the target",
  "steps": [
    {
      "title": "Step main action title",
      "subSteps": ["Specific actionable sub-step a", "Specific actionable sub-step b", "Specific actionable sub-step c"]
    }
  ],
  "skillsToDevelop": ["Skill 1", "Skill 2", "Skill 3"],
  "longTermVision": ["After achieving the target goal, do X to solidify career", "Do Y to expand your domain influence", "Do Z to future-proof your career"]
}

IMPORTANT INSTRUCTIONS:
- Ensure exactly 5 steps are provided with 3-4 specific, actionable sub-steps each.
- Each step title should be a concise action-oriented description.
- Each sub-step should be a concrete, executable action (e.g. "Enroll in AWS Solutions Architect certification course" not just "Learn cloud").
- For longTermVision, provide 3-5 bullet points describing what the candidate should do AFTER they have achieved their target goal within the selected timeframe, to further solidify and advance their career.
- Be specific and actionable based on the provided resume and goals.`, resumeText, timeframe, targetIndustry, additionalGoals)

	text, err := c.generate(ctx, tempRoadmap, prompt)
	if err != nil {
		return nil, err
	}

	var roadmap models.Roadmap
	if err := decodeReply(text, roadmapSchema, &roadmap); err != nil {
		log.Printf("[Gemini] Failed to parse roadmap response: %s", text)
		return nil, err
	}

	return &roadmap, nil
}

// QuestionsFromResume generates exactly 5 interview questions from resume text
func (c *Client) QuestionsFromResume(ctx context.Context, resumeText string) (*models.QuestionsResponse, error) {
	prompt := fmt.Sprintf(`You are an expert technical interviewer. Analyze the following resume and generate exactly 5 interview questions based on the candidate's skills, projects, and experience.

Resume content:
%s

The questions should be a mix of:
- Technical questions about their listed skills
- Behavioral questions about their projects and experience
- Problem-solving questions relevant to their domain

Return ONLY valid JSON with no markdown formatting, no code blocks, no extra text. The JSON should be:
{
  "questions": [
    "Question 1 text",
    "Question 2 text",
    "Question 3 text",
    "Question 4 text",
    "Question 5 text"
  ]
}

Make the questions specific and relevant to the candidate's actual resume content.`, resumeText)

	return c.generateQuestions(ctx, prompt)
}

// QuestionsFromRole generates exactly 5 interview questions for a role and
// experience level
func (c *Client) QuestionsFromRole(ctx context.Context, jobRole, experience string) (*models.QuestionsResponse, error) {
	prompt := fmt.Sprintf(`You are an expert technical interviewer. Generate exactly 5 interview questions for a candidate applying for the following role:

Job Role: %s
Experience Level: %s

The questions should be appropriate for the experience level and specific to the job role. Include a mix of:
- Technical questions relevant to the role
- Behavioral/situational questions
- Problem-solving questions

For a fresher, focus more on fundamentals and theoretical knowledge.
For 5+ years experience, focus on architecture, design patterns, and leadership scenarios.
For 10+ years experience, focus on system design, strategic thinking, and team management.

Return ONLY valid JSON with no markdown formatting, no code blocks, no extra text. The JSON should be:
{
  "questions": [
    "Question 1 text",
    "Question 2 text",
    "Question 3 text",
    "Question 4 text",
    "Question 5 text"
  ]
}

Make the questions challenging and specific to the role and experience level.`, jobRole, experience)

	return c.generateQuestions(ctx, prompt)
}

func (c *Client) generateQuestions(ctx context.Context, prompt string) (*models.QuestionsResponse, error) {
	text, err := c.generate(ctx, tempQuestions, prompt)
	if err != nil {
		return nil, err
	}

	var questions models.QuestionsResponse
	if err := decodeReply(text, questionsSchema, &questions); err != nil {
		log.Printf("[Gemini] Failed to parse questions response: %s", text)
		return nil, err
	}

	return &questions, nil
}

// GradeResponse grades an interview answer on clarity, structure and depth
func (c *Client) GradeResponse(ctx context.Context, question, response string) (*models.ResponseAnalysis, error) {
	prompt := fmt.Sprintf(`You are an expert interview coach. Analyze the following interview response and provide detailed feedback.

Question: %s

Candidate's Response: %s

Evaluate the response on these three metrics (score each from 0 to 10):
1. **Clarity** - How clear and understandable the response is
2. **Structure** - How well-organized and logical the response is
3. **Depth** - How thorough and detailed the response is

Also provide:
- A brief summary of the candidate's response (2-3 sentences)
- An expected/ideal answer that shows how the candidate could improve their response (3-4 sentences)

Return ONLY valid JSON with no markdown formatting, no code blocks, no extra text. The JSON should be:
{
  "clarity": 7,
  "structure": 6,
  "depth": 8,
  "responseSummary": "Summary of what the candidate said...",
  "expectedAnswer": "An ideal response would include..."
}

Be fair but constructive in your scoring. A score of 5 means average, 7-8 means good, 9-10 means excellent.`, question, response)

	text, err := c.generate(ctx, tempGrading, prompt)
	if err != nil {
		return nil, err
	}

	var analysis models.ResponseAnalysis
	if err := decodeReply(text, responseAnalysisSchema, &analysis); err != nil {
		log.Printf("[Gemini] Failed to parse grading response: %s", text)
		return nil, err
	}

	return &analysis, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
