package domain

// Metadata describes the bibliographic fields attached to a passage.
// Every field is present with a zero value when unknown, so downstream
// access is total: readers never need to distinguish "missing" from
// "empty". Metadata is immutable once attached to a passage.
type Metadata struct {
	// Title is the document title.
	Title string

	// Authors lists the document authors, possibly empty.
	Authors []string

	// Journal is the publication venue.
	Journal string

	// PubDate is the publication date as reported by the source.
	PubDate string

	// Source identifies the system the document came from
	// (e.g. "pubmed", "biorxiv", "filesystem").
	Source string

	// PMID is the PubMed identifier, when known.
	PMID string

	// DOI is the digital object identifier, when known.
	DOI string

	// Section is the extracted section label the passage was cut from
	// ("abstract", "introduction", "conclusion", or "full").
	Section string
}

// Clone returns a copy that shares no mutable state with the original.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Authors != nil {
		out.Authors = make([]string, len(m.Authors))
		copy(out.Authors, m.Authors)
	}
	return out
}

// WithSection returns a copy with the section label set.
func (m Metadata) WithSection(label string) Metadata {
	out := m.Clone()
	out.Section = label
	return out
}
