package domain

// Sections holds the regions extracted from an article by heuristic
// label matching. FullText is always the verbatim input; the other
// fields stay empty when no pattern matched, which is acceptable
// degradation rather than an error.
type Sections struct {
	Abstract     string
	Introduction string
	Conclusion   string
	FullText     string
}

// Section labels used in passage metadata.
const (
	SectionAbstract     = "abstract"
	SectionIntroduction = "introduction"
	SectionConclusion   = "conclusion"
	SectionFull         = "full"
)
