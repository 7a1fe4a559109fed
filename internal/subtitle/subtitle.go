package subtitle

// Kind distinguishes the original transcript track from a translated track.
type Kind string

const (
	KindOriginal   Kind = "original"
	KindTranslated Kind = "translated"
)

// Segment is one timestamped line of transcript or subtitle text.
// SequenceNumber is 1-based and must form a contiguous ascending run within
// an asset. Overlap in time between neighbouring segments is allowed; the
// source transcription may legitimately produce it.
type Segment struct {
	SequenceNumber int
	StartMS        int64
	EndMS          int64
	Text           string
	// Confidence is in [0,1]; zero means the capability reported none.
	Confidence float64
}

// Asset is the full ordered collection of segments for one
// (media, language, kind) triple.
type Asset struct {
	ID       string
	MediaID  string
	Language string
	Kind     Kind
	// SourceAssetID and SourceLanguage link a translated asset to the
	// original it was derived from. Both assets are retained independently.
	SourceAssetID  string
	SourceLanguage string
	Segments       []Segment
	// FilePath is set once the asset has been serialized to disk.
	FilePath string
}
