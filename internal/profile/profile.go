// ABOUTME: Typed schema for the portfolio profile document
// ABOUTME: Known optional fields are enumerated per section; unknown JSON keys are ignored
package profile

// Document is the root of the portfolio profile. Every section is optional;
// an absent section simply produces no chunks for its category.
type Document struct {
	AboutMe              AboutMe                    `json:"about_me"`
	WorkExperience       WorkExperience             `json:"work_experience"`
	HealthcareBackground map[string]HealthcareRole  `json:"healthcare_background"`
	VolunteerLeadership  VolunteerLeadership        `json:"volunteer_leadership"`
	PersonalProjects     map[string]PersonalProject `json:"personal_projects"`
	SkillsAndInterests   SkillsAndInterests         `json:"skills_and_interests"`
}

// AboutMe holds identity and bio narrative
type AboutMe struct {
	Intro       string `json:"intro"`
	Background  string `json:"background"`
	CurrentRole string `json:"current_role"`
}

// WorkExperience wraps the current job record
type WorkExperience struct {
	CurrentJob CurrentJob `json:"current_job"`
}

// CurrentJob describes the current role and its major projects
type CurrentJob struct {
	Company       string        `json:"company"`
	Team          string        `json:"team"`
	WhatIDo       string        `json:"what_i_do"`
	DailyVariety  string        `json:"daily_variety"`
	MajorProjects []WorkProject `json:"major_projects"`
}

// WorkProject is a single named project story from the current role
type WorkProject struct {
	Name          string `json:"name"`
	Story         string `json:"story"`
	Collaboration string `json:"collaboration"`
	Scope         string `json:"scope"`
	Impact        string `json:"impact"`
	WhatILearned  string `json:"what_i_learned"`
}

// HealthcareRole is one entry in the healthcare background mapping.
// The narrative fields render in the declared order after the header line.
type HealthcareRole struct {
	Role                    string `json:"role"`
	Title                   string `json:"title"`
	Organization            string `json:"organization"`
	Duration                string `json:"duration"`
	Department              string `json:"department"`
	WhatIDid                string `json:"what_i_did"`
	PopulationsServed       string `json:"populations_served"`
	Specialization          string `json:"specialization"`
	AdaptiveStrategies      string `json:"adaptive_strategies"`
	DocumentationBalance    string `json:"documentation_balance"`
	KeySkillsDeveloped      string `json:"key_skills_developed"`
	DocumentationChallenges string `json:"documentation_challenges"`
	PersonalSystems         string `json:"personal_systems"`
	FirstProgrammingSpark   string `json:"first_programming_spark"`
	WhyItMatters            string `json:"why_it_matters"`
	Story                   string `json:"story"`
	Scope                   string `json:"scope"`
	KeyInsight              string `json:"key_insight"`
	ConnectionToCurrentWork string `json:"connection_to_current_work"`
	LastingImpact           string `json:"lasting_impact"`
}

// VolunteerLeadership wraps the volunteer organization record
type VolunteerLeadership struct {
	NorthShoreVertigals *VolunteerRecord `json:"north_shore_vertigals"`
}

// VolunteerRecord describes a volunteer leadership role
type VolunteerRecord struct {
	Role               string       `json:"role"`
	Title              string       `json:"title"`
	Organization       string       `json:"organization"`
	Duration           string       `json:"duration"`
	Mission            string       `json:"mission"`
	LeadershipApproach string       `json:"leadership_approach"`
	Impact             string       `json:"impact"`
	CurrentReach       string       `json:"current_reach"`
	MajorInitiatives   []Initiative `json:"major_initiatives"`
}

// Initiative is a named initiative within the volunteer record
type Initiative struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PersonalProject is one entry in the personal projects mapping
type PersonalProject struct {
	Name        string              `json:"name"`
	Story       string              `json:"story"`
	Motivation  string              `json:"motivation"`
	Status      string              `json:"status"`
	TechStack   []string            `json:"tech_stack"`
	Features    []string            `json:"features"`
	Development *ProjectDevelopment `json:"development_process"`
}

// ProjectDevelopment is the nested development record of a personal project,
// flattened into its own lines when the project chunk is rendered
type ProjectDevelopment struct {
	Approach       string   `json:"approach"`
	AIToolInsights string   `json:"ai_tool_insights"`
	Lessons        []string `json:"lessons"`
}

// SkillsAndInterests holds home life, creative pursuits, and programming skills
type SkillsAndInterests struct {
	HomeLife         HomeLife         `json:"home_life"`
	CreativePursuits CreativePursuits `json:"creative_pursuits"`
	Programming      Programming      `json:"programming"`
}

// HomeLife currently carries the pets record
type HomeLife struct {
	Pets map[string]string `json:"pets"`
}

// CreativePursuits groups the three creative records
type CreativePursuits struct {
	Music      Music      `json:"music"`
	Writing    Writing    `json:"writing"`
	VisualArts VisualArts `json:"visual_arts"`
}

// Music describes musical pursuits
type Music struct {
	Story         string   `json:"story"`
	Styles        []string `json:"styles"`
	Collaboration string   `json:"collaboration"`
}

// IsZero reports whether the record has no content
func (m Music) IsZero() bool {
	return m.Story == "" && len(m.Styles) == 0 && m.Collaboration == ""
}

// Writing describes writing pursuits
type Writing struct {
	Approach     string `json:"approach"`
	WhatILove    string `json:"what_i_love"`
	CurrentFocus string `json:"current_focus"`
}

// IsZero reports whether the record has no content
func (w Writing) IsZero() bool {
	return w.Approach == "" && w.WhatILove == "" && w.CurrentFocus == ""
}

// VisualArts describes visual art pursuits
type VisualArts struct {
	Drawing                    string `json:"drawing"`
	JewelryMaking              string `json:"jewelry_making"`
	PortfolioDesignInspiration string `json:"portfolio_design_inspiration"`
}

// IsZero reports whether the record has no content
func (v VisualArts) IsZero() bool {
	return v.Drawing == "" && v.JewelryMaking == "" && v.PortfolioDesignInspiration == ""
}

// Programming holds technical skills, list fields first then scalar fields
type Programming struct {
	DailyDrivers      []string `json:"daily_drivers"`
	BackendExperience []string `json:"backend_experience"`
	AITools           []string `json:"ai_tools"`
	LearningQueue     []string `json:"learning_queue"`
	ExpertiseAreas    []string `json:"expertise_areas"`
	LanguagesIDislike string   `json:"languages_i_dislike"`
	WorkspaceSetup    string   `json:"workspace_setup"`
}
