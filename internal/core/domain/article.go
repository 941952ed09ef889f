package domain

import "time"

// Article is one raw bibliographic record fetched by a collector source.
// Articles are cached between runs by the collector; the retrieval core
// only ever sees them after conversion to RawDocuments.
type Article struct {
	// ID uniquely identifies the article. It is the PMID or DOI when
	// the source provides one, otherwise a generated identifier.
	ID string `json:"id"`

	// Title is the article title.
	Title string `json:"title"`

	// Abstract is the article abstract or, for local files, the full text.
	Abstract string `json:"abstract"`

	// Authors lists the article authors.
	Authors []string `json:"authors,omitempty"`

	// Journal is the publication venue.
	Journal string `json:"journal,omitempty"`

	// PubDate is the publication date as reported by the source.
	PubDate string `json:"pub_date,omitempty"`

	// Source identifies the producing system ("pubmed", "biorxiv",
	// "filesystem").
	Source string `json:"source"`

	// PMID is the PubMed identifier, when known.
	PMID string `json:"pmid,omitempty"`

	// DOI is the digital object identifier, when known.
	DOI string `json:"doi,omitempty"`

	// CollectedAt is when the collector fetched the article.
	CollectedAt time.Time `json:"collected_at"`
}

// RawDocument converts the article into an ingestion unit for the
// retrieval engine.
func (a Article) RawDocument() RawDocument {
	return RawDocument{
		Text: a.Abstract,
		Meta: Metadata{
			Title:   a.Title,
			Authors: a.Authors,
			Journal: a.Journal,
			PubDate: a.PubDate,
			Source:  a.Source,
			PMID:    a.PMID,
			DOI:     a.DOI,
		},
	}
}
