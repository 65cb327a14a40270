package parsing

import (
	"github.com/jonathan/resume-matcher/internal/types"
)

// Builder assembles a Profile from raw resume text
type Builder struct {
	vocab      Vocabulary
	normalize  NormalizeOptions
	locator    *SectionLocator
	experience *RecordSegmenter
	education  *RecordSegmenter
	projects   *RecordSegmenter
	skills     *ListTokenizer
	lists      *ListTokenizer
}

// Option configures a Builder
type Option func(*Builder)

// WithPreserveLineBreaks keeps line structure during normalization
func WithPreserveLineBreaks(preserve bool) Option {
	return func(b *Builder) {
		b.normalize.PreserveLineBreaks = preserve
	}
}

// NewBuilder creates a Builder over vocab
func NewBuilder(vocab Vocabulary, opts ...Option) *Builder {
	b := &Builder{
		vocab:      vocab,
		locator:    NewSectionLocator(vocab),
		experience: NewRecordSegmenter(vocab.Triggers[SectionExperience]),
		education:  NewRecordSegmenter(vocab.Triggers[SectionEducation]),
		projects:   NewRecordSegmenter(vocab.Triggers[SectionProjects]),
		skills:     NewListTokenizer(SkillsLimit),
		lists:      NewListTokenizer(0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewDefaultBuilder creates a Builder over DefaultVocabulary
func NewDefaultBuilder(opts ...Option) *Builder {
	return NewBuilder(DefaultVocabulary(), opts...)
}

// Build extracts a Profile from raw text. It never fails: sections that
// cannot be found are left empty.
func (b *Builder) Build(raw string, lang string) *types.Profile {
	lang = ResolveLanguage(lang)
	text := NormalizeWithOptions(raw, b.normalize)

	return &types.Profile{
		Name:           ExtractName(text, b.vocab.Blacklist[lang]),
		Contact:        ExtractContact(CollapseWhitespace(raw)),
		Summary:        b.locator.Locate(text, SectionSummary, lang),
		Experience:     b.experience.Segment(b.locator.Locate(text, SectionExperience, lang)),
		Education:      b.education.Segment(b.locator.Locate(text, SectionEducation, lang)),
		Skills:         b.skills.Tokenize(b.locator.Locate(text, SectionSkills, lang)),
		Languages:      b.lists.Tokenize(b.locator.Locate(text, SectionLanguages, lang)),
		Certifications: b.lists.Tokenize(b.locator.Locate(text, SectionCertifications, lang)),
		Projects:       b.projects.Segment(b.locator.Locate(text, SectionProjects, lang)),
		Language:       lang,
		RawText:        text,
	}
}
