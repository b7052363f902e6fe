// ABOUTME: Builds semantic chunks from the portfolio profile document
// ABOUTME: One logical story per chunk, deterministic ids and ordering, empty chunks dropped
package chunker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
	"github.com/tl-kuno/ai-powered-portfolio/internal/profile"
)

// contentSeparator joins the fields of a chunk into one narrative block
const contentSeparator = "\n\n"

// Build transforms a profile document into an ordered chunk list. The same
// document always yields the same ids, content, and order. Chunks whose
// joined content is empty are never emitted.
func Build(doc *profile.Document) []models.Chunk {
	b := &builder{seen: make(map[string]int)}

	b.buildBio(doc.AboutMe)
	b.buildCurrentRole(doc.AboutMe, doc.WorkExperience.CurrentJob)
	b.buildWorkProjects(doc.WorkExperience.CurrentJob)
	b.buildHealthcare(doc.HealthcareBackground)
	b.buildVolunteer(doc.VolunteerLeadership)
	b.buildPersonalProjects(doc.PersonalProjects)
	b.buildPets(doc.SkillsAndInterests.HomeLife)
	b.buildCreative(doc.SkillsAndInterests.CreativePursuits)
	b.buildSkills(doc.SkillsAndInterests.Programming)

	return b.chunks
}

type builder struct {
	chunks []models.Chunk
	seen   map[string]int
}

// add appends a chunk unless its trimmed content is empty
func (b *builder) add(id string, content string, typ models.ChunkType, metadata map[string]interface{}) {
	if strings.TrimSpace(content) == "" {
		return
	}
	b.chunks = append(b.chunks, models.Chunk{
		ID:       uniqueID(b.seen, id),
		Content:  strings.TrimSpace(content),
		Type:     typ,
		Metadata: metadata,
	})
}

// joinParts concatenates non-empty parts with the content separator
func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, contentSeparator)
}

// listLine renders "Label: v1, v2, ..." or "" for an empty list
func listLine(key string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return Labelize(key) + ": " + strings.Join(values, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *builder) buildBio(about profile.AboutMe) {
	b.add("bio-intro", joinParts(about.Intro, about.Background), models.ChunkTypeBio, map[string]interface{}{
		"section":     "about_me",
		"subsections": []string{"intro", "background"},
	})
}

func (b *builder) buildCurrentRole(about profile.AboutMe, job profile.CurrentJob) {
	content := joinParts(about.CurrentRole, job.WhatIDo, job.DailyVariety)
	b.add("current-role-overview", content, models.ChunkTypeCurrentRole, map[string]interface{}{
		"section": "work_experience",
		"company": job.Company,
		"team":    job.Team,
	})
}

func (b *builder) buildWorkProjects(job profile.CurrentJob) {
	for _, proj := range job.MajorProjects {
		content := joinParts(proj.Name, proj.Story, proj.Collaboration, proj.Scope, proj.Impact, proj.WhatILearned)
		slug := Slugify(proj.Name)
		if slug == "" {
			slug = "unnamed"
		}
		b.add("work_project-"+slug, content, models.ChunkTypeWorkProject, map[string]interface{}{
			"section":      "work_experience",
			"company":      job.Company,
			"project_name": proj.Name,
		})
	}
}

// healthcareHeader renders "{role} at {organization}", tolerating missing parts
func healthcareHeader(role profile.HealthcareRole) string {
	title := role.Role
	if title == "" {
		title = role.Title
	}
	switch {
	case title != "" && role.Organization != "":
		return title + " at " + role.Organization
	case title != "":
		return title
	default:
		return role.Organization
	}
}

func (b *builder) buildHealthcare(roles map[string]profile.HealthcareRole) {
	for _, key := range sortedKeys(roles) {
		role := roles[key]
		content := joinParts(
			healthcareHeader(role),
			role.Duration,
			role.Department,
			role.WhatIDid,
			role.PopulationsServed,
			role.Specialization,
			role.AdaptiveStrategies,
			role.DocumentationBalance,
			role.KeySkillsDeveloped,
			role.DocumentationChallenges,
			role.PersonalSystems,
			role.FirstProgrammingSpark,
			role.WhyItMatters,
			role.Story,
			role.Scope,
			role.KeyInsight,
			role.ConnectionToCurrentWork,
			role.LastingImpact,
		)
		b.add("healthcare-"+Slugify(key), content, models.ChunkTypeHealthcare, map[string]interface{}{
			"section":  "healthcare_background",
			"role_key": key,
		})
	}
}

func (b *builder) buildVolunteer(vol profile.VolunteerLeadership) {
	rec := vol.NorthShoreVertigals
	if rec == nil {
		return
	}

	title := rec.Role
	if title == "" {
		title = rec.Title
	}
	header := title
	if rec.Organization != "" {
		if header != "" {
			header += " @ " + rec.Organization
		} else {
			header = rec.Organization
		}
	}

	var initiativeLines []string
	for _, init := range rec.MajorInitiatives {
		initiativeLines = append(initiativeLines, fmt.Sprintf("- %s: %s", init.Name, init.Description))
	}
	initiatives := ""
	if len(initiativeLines) > 0 {
		initiatives = "Major Initiatives:\n" + strings.Join(initiativeLines, "\n")
	}

	content := joinParts(
		header,
		rec.Duration,
		rec.Mission,
		rec.LeadershipApproach,
		rec.Impact,
		rec.CurrentReach,
		initiatives,
	)
	b.add("volunteer-vertigals", content, models.ChunkTypeVolunteer, map[string]interface{}{
		"section":      "volunteer_leadership",
		"organization": rec.Organization,
	})
}

func (b *builder) buildPersonalProjects(projects map[string]profile.PersonalProject) {
	for _, key := range sortedKeys(projects) {
		proj := projects[key]
		name := proj.Name
		if name == "" {
			name = key
		}

		parts := []string{
			name,
			proj.Story,
			proj.Motivation,
			proj.Status,
			listLine("tech_stack", proj.TechStack),
			listLine("features", proj.Features),
		}
		if dev := proj.Development; dev != nil {
			var lines []string
			for _, s := range []string{dev.Approach, dev.AIToolInsights} {
				if s != "" {
					lines = append(lines, s)
				}
			}
			if line := listLine("lessons", dev.Lessons); line != "" {
				lines = append(lines, line)
			}
			parts = append(parts, strings.Join(lines, "\n"))
		}

		b.add("personal_project-"+Slugify(name), joinParts(parts...), models.ChunkTypePersonalProject, map[string]interface{}{
			"section": "personal_projects",
			"key":     key,
			"name":    name,
		})
	}
}

func (b *builder) buildPets(home profile.HomeLife) {
	if len(home.Pets) == 0 {
		return
	}
	var lines []string
	for _, key := range sortedKeys(home.Pets) {
		lines = append(lines, Labelize(key)+": "+home.Pets[key])
	}
	b.add("personal-pets", strings.Join(lines, contentSeparator), models.ChunkTypePersonal, map[string]interface{}{
		"section":    "skills_and_interests",
		"subsection": "home_life.pets",
	})
}

func (b *builder) buildCreative(creative profile.CreativePursuits) {
	if music := creative.Music; !music.IsZero() {
		content := joinParts(music.Story, listLine("styles", music.Styles), music.Collaboration)
		b.add("creative-music", content, models.ChunkTypeCreative, map[string]interface{}{
			"section":    "skills_and_interests",
			"subsection": "creative_pursuits.music",
		})
	}

	if writing := creative.Writing; !writing.IsZero() {
		content := joinParts(writing.Approach, writing.WhatILove, writing.CurrentFocus)
		b.add("creative-writing", content, models.ChunkTypeCreative, map[string]interface{}{
			"section":    "skills_and_interests",
			"subsection": "creative_pursuits.writing",
		})
	}

	if visual := creative.VisualArts; !visual.IsZero() {
		content := joinParts(visual.Drawing, visual.JewelryMaking, visual.PortfolioDesignInspiration)
		b.add("creative-visual-arts", content, models.ChunkTypeCreative, map[string]interface{}{
			"section":    "skills_and_interests",
			"subsection": "creative_pursuits.visual_arts",
		})
	}
}

func (b *builder) buildSkills(prog profile.Programming) {
	lines := []string{
		listLine("daily_drivers", prog.DailyDrivers),
		listLine("backend_experience", prog.BackendExperience),
		listLine("ai_tools", prog.AITools),
		listLine("learning_queue", prog.LearningQueue),
		listLine("expertise_areas", prog.ExpertiseAreas),
	}
	if prog.LanguagesIDislike != "" {
		lines = append(lines, Labelize("languages_i_dislike")+": "+prog.LanguagesIDislike)
	}
	if prog.WorkspaceSetup != "" {
		lines = append(lines, Labelize("workspace_setup")+": "+prog.WorkspaceSetup)
	}
	b.add("skills-programming", joinParts(lines...), models.ChunkTypeSkills, map[string]interface{}{
		"section":    "skills_and_interests",
		"subsection": "programming",
	})
}
