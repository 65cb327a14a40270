package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// segmentState is a state of the record segmentation machine
type segmentState int

const (
	stateIdle segmentState = iota
	stateTitleOpen
	stateDescriptionOpen
)

func (s segmentState) String() string {
	switch s {
	case stateTitleOpen:
		return "title-open"
	case stateDescriptionOpen:
		return "description-open"
	default:
		return "idle"
	}
}

// RecordSegmenter splits a section body into titled records.
// A line containing a trigger word opens a record, following lines extend
// its description, and a blank line closes it.
type RecordSegmenter struct {
	trigger *regexp.Regexp
}

// NewRecordSegmenter builds a segmenter opening records on any of triggers (case-insensitive)
func NewRecordSegmenter(triggers []string) *RecordSegmenter {
	quoted := make([]string, 0, len(triggers))
	for _, t := range triggers {
		if t = strings.TrimSpace(t); t != "" {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
	}
	if len(quoted) == 0 {
		return &RecordSegmenter{}
	}
	return &RecordSegmenter{trigger: regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)}
}

// IsTrigger reports whether line opens a new record
func (s *RecordSegmenter) IsTrigger(line string) bool {
	return s.trigger != nil && s.trigger.MatchString(line)
}

// Segment runs the state machine over body and returns the records in order
func (s *RecordSegmenter) Segment(body string) []types.Entry {
	m := &segmentMachine{records: []types.Entry{}}
	for _, line := range strings.Split(body, "\n") {
		m.feed(strings.TrimSpace(line), s.IsTrigger)
	}
	m.close()
	return m.records
}

// segmentMachine holds the state and accumulator of one Segment run
type segmentMachine struct {
	state   segmentState
	current types.Entry
	records []types.Entry
}

func (m *segmentMachine) feed(line string, isTrigger func(string) bool) {
	switch {
	case line == "":
		m.close()
	case isTrigger(line):
		m.close()
		m.current = types.Entry{Title: line}
		m.state = stateTitleOpen
	case m.state == stateIdle:
		// description text with no open record is dropped
	default:
		if m.current.Description == "" {
			m.current.Description = line
		} else {
			m.current.Description += " " + line
		}
		m.state = stateDescriptionOpen
	}
}

func (m *segmentMachine) close() {
	if m.state != stateIdle {
		m.records = append(m.records, m.current)
	}
	m.current = types.Entry{}
	m.state = stateIdle
}
