package codereview

import "encoding/json"

// SectionKey names a review section in the service response.
type SectionKey string

// Review section keys, in display order.
const (
	KeyReadability   SectionKey = "readability"
	KeyModularity    SectionKey = "modularity"
	KeyPotentialBugs SectionKey = "potential_bugs"
	KeySuggestions   SectionKey = "suggestions"
)

// SectionKeys lists the review sections in display order.
var SectionKeys = []SectionKey{KeyReadability, KeyModularity, KeyPotentialBugs, KeySuggestions}

// Title returns the human-readable section title.
func (k SectionKey) Title() string {
	switch k {
	case KeyReadability:
		return "Readability"
	case KeyModularity:
		return "Modularity"
	case KeyPotentialBugs:
		return "Potential Bugs"
	case KeySuggestions:
		return "Suggestions"
	default:
		return string(k)
	}
}

// Report is the review service's answer for one submitted file.
// A report is never modified after it is received.
type Report struct {
	FileName string `json:"file_name"`
	Code     string `json:"code"`
	Review   Review `json:"review"`
}

// Review holds the classified review sections.
type Review struct {
	Readability   Content
	Modularity    Content
	PotentialBugs Content
	Suggestions   Content

	// Notes is reviewer output attached to the review as a whole, such as
	// "_raw_model_output" next to default sections, or an error payload in
	// place of the sections.
	Notes Content
}

// Section is one review section paired with its key and title.
type Section struct {
	Key     SectionKey
	Title   string
	Content Content
}

// Get returns the content for key.
func (r Review) Get(key SectionKey) Content {
	switch key {
	case KeyReadability:
		return r.Readability
	case KeyModularity:
		return r.Modularity
	case KeyPotentialBugs:
		return r.PotentialBugs
	case KeySuggestions:
		return r.Suggestions
	default:
		return Content{}
	}
}

// Sections returns the four review sections in display order.
func (r Review) Sections() []Section {
	sections := make([]Section, 0, len(SectionKeys))
	for _, key := range SectionKeys {
		sections = append(sections, Section{Key: key, Title: key.Title(), Content: r.Get(key)})
	}
	return sections
}

// UnmarshalJSON implements json.Unmarshaler. Section values are classified
// individually; a review that is not an object becomes Notes.
func (r *Review) UnmarshalJSON(data []byte) error {
	*r = Review{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		r.Notes = Classify(data)
		return nil
	}

	r.Readability = Classify(fields[string(KeyReadability)])
	r.Modularity = Classify(fields[string(KeyModularity)])
	r.PotentialBugs = Classify(fields[string(KeyPotentialBugs)])
	r.Suggestions = Classify(fields[string(KeySuggestions)])
	if hasDiagnostic(fields) {
		r.Notes = Classify(data)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Review) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(SectionKeys)+1)
	for _, s := range r.Sections() {
		fields[string(s.Key)] = s.Content
	}
	if !r.Notes.IsEmpty() {
		fields["raw_output"] = r.Notes.Text
	}
	return json.Marshal(fields)
}
