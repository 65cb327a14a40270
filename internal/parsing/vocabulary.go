package parsing

import "github.com/jonathan/resume-matcher/internal/types"

// Section names a logical block of a resume
type Section string

// Sections located by header synonyms
const (
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
)

// AllSections lists every section in extraction order
var AllSections = []Section{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionLanguages,
	SectionCertifications,
	SectionProjects,
}

// Vocabulary is the curated word data the extractor works from.
// Synonym and trigger order is significant: earlier entries win.
type Vocabulary struct {
	// Headers maps a language tag to the ordered header synonyms of each section
	Headers map[string]map[Section][]string
	// Blacklist maps a language tag to words that disqualify a line as a name
	Blacklist map[string][]string
	// Triggers maps a record section to the words that open a new record
	Triggers map[Section][]string
}

// DefaultVocabulary returns the built-in English and Arabic vocabulary
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Headers: map[string]map[Section][]string{
			types.LanguageEnglish: {
				SectionSummary:        {"summary", "objective", "profile"},
				SectionExperience:     {"experience", "work history", "employment"},
				SectionEducation:      {"education", "academic"},
				SectionSkills:         {"skills", "technical skills", "competencies"},
				SectionLanguages:      {"languages"},
				SectionCertifications: {"certifications", "certificates"},
				SectionProjects:       {"projects"},
			},
			types.LanguageArabic: {
				SectionSummary:        {"ملخص", "الهدف"},
				SectionExperience:     {"الخبرة", "العمل"},
				SectionEducation:      {"التعليم", "الدراسة"},
				SectionSkills:         {"المهارات", "الخبرات"},
				SectionLanguages:      {"اللغات"},
				SectionCertifications: {"الشهادات"},
				SectionProjects:       {"المشاريع"},
			},
		},
		Blacklist: map[string][]string{
			types.LanguageEnglish: {"resume", "cv", "curriculum", "vitae", "experience", "education", "skills"},
			types.LanguageArabic:  {"السيرة", "الذاتية", "الخبرة", "التعليم", "المهارات", "resume", "cv"},
		},
		Triggers: map[Section][]string{
			SectionExperience: {
				"senior", "junior", "lead", "manager", "director", "engineer", "developer", "analyst", "consultant",
				"مدير", "مهندس", "مطور", "محلل", "مستشار", "رئيس",
			},
			SectionEducation: {
				"bachelor", "master", "phd", "diploma", "certificate", "degree",
				"بكالوريوس", "ماجستير", "دكتوراه", "دبلوم", "شهادة",
			},
			SectionProjects: {
				"project", "application", "system", "platform", "website", "app",
				"مشروع", "تطبيق", "نظام", "منصة", "موقع",
			},
		},
	}
}

// ResolveLanguage maps a language tag to a supported one, defaulting to English
func ResolveLanguage(lang string) string {
	switch lang {
	case types.LanguageArabic:
		return types.LanguageArabic
	default:
		return types.LanguageEnglish
	}
}

// languageOrder returns lang first followed by the remaining supported languages
func languageOrder(lang string) []string {
	if lang == types.LanguageArabic {
		return []string{types.LanguageArabic, types.LanguageEnglish}
	}
	return []string{types.LanguageEnglish, types.LanguageArabic}
}
