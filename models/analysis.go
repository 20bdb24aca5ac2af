package models

// ATSSectionScores are the weighted sub-scores of an ATS report.
// The weights sum toward 100 across the six sections.
type ATSSectionScores struct {
	ContentSections     int `json:"contentSections" example:"24"`
	GrammarLanguage     int `json:"grammarLanguage" example:"12"`
	FormattingStructure int `json:"formattingStructure" example:"19"`
	ATSOptimization     int `json:"atsOptimization" example:"11"`
	PageLength          int `json:"pageLength" example:"5"`
	LinksContactInfo    int `json:"linksContactInfo" example:"8"`
}

// ATSReport is the full ATS-compatibility analysis of a resume
// @Description ATS compatibility report
type ATSReport struct {
	OverallScore     int              `json:"overallScore" example:"72"`
	SectionScores    ATSSectionScores `json:"sectionScores"`
	DoneRight        []string         `json:"doneRight"`
	Improvements     []string         `json:"improvements"`
	Summary          string           `json:"summary"`
	DetectedSections []string         `json:"detectedSections"`
	MissingSections  []string         `json:"missingSections"`
	KeywordsFound    []string         `json:"keywordsFound"`
	PageCount        int              `json:"pageCount" example:"1"`
}

// RoadmapStep is one step of a career roadmap with its sub-steps
type RoadmapStep struct {
	Title    string   `json:"title"`
	SubSteps []string `json:"subSteps"`
}

// Roadmap is a structured career plan generated from a resume and goals
// @Description Career roadmap
type Roadmap struct {
	CurrentPosition  string        `json:"currentPosition"`
	TargetPosition   string        `json:"targetPosition"`
	StrategyOverview string        `json:"strategyOverview"`
	Steps            []RoadmapStep `json:"steps"`
	SkillsToDevelop  []string      `json:"skillsToDevelop"`
	LongTermVision   []string      `json:"longTermVision"`
}

// RoadmapRequest carries the user goals accompanying a resume upload
type RoadmapRequest struct {
	Timeframe       string `form:"timeframe" binding:"required" example:"6 months"`
	TargetIndustry  string `form:"targetIndustry" binding:"required" example:"Cloud Infrastructure"`
	AdditionalGoals string `form:"additionalGoals" example:"Move into a lead role"`
}

// QuestionsResponse holds generated interview questions
// @Description Generated interview questions
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

// QuestionsFromRoleRequest describes the target role for question generation
type QuestionsFromRoleRequest struct {
	JobRole    string `json:"jobRole" binding:"required" example:"Backend Engineer"`
	Experience string `json:"experience" binding:"required" example:"5+ years"`
}

// AnalyzeResponseRequest carries a practice question and the candidate's answer
type AnalyzeResponseRequest struct {
	Question string `json:"question" binding:"required"`
	Response string `json:"response" binding:"required"`
}

// ResponseAnalysis grades an interview answer on three 0-10 sub-scores
// @Description Interview response grading
type ResponseAnalysis struct {
	Clarity         int    `json:"clarity" example:"7"`
	Structure       int    `json:"structure" example:"6"`
	Depth           int    `json:"depth" example:"8"`
	ResponseSummary string `json:"responseSummary"`
	ExpectedAnswer  string `json:"expectedAnswer"`
}
