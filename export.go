package wikilens

// Encoder renders final report text into a downloadable byte payload.
// Encoders accept arbitrary Unicode input; formats restricted to a
// single-byte character set substitute unsupported characters per line
// rather than failing the whole export.
type Encoder interface {
	Encode(text string) ([]byte, error)
	// ContentType returns the MIME type of the encoded payload.
	ContentType() string
	// Ext returns the file extension including the leading dot.
	Ext() string
}

// LanguageDetector guesses the programming language of a content snippet.
type LanguageDetector interface {
	DetectFromContent(content string) string
}
