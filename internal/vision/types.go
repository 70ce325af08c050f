package vision

// Vertex is one corner of an annotation's bounding polygon. The engine omits
// zero coordinates, so absent fields decode to 0.
type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoundingPoly is the quadrilateral around a detected text fragment.
type BoundingPoly struct {
	Vertices []Vertex `json:"vertices"`
}

// TextAnnotation is a single OCR-detected piece of text with its geometry.
type TextAnnotation struct {
	Description  string       `json:"description"`
	BoundingPoly BoundingPoly `json:"boundingPoly"`
}

// Extraction is the normalized OCR result: the whole-image transcription and
// the per-fragment annotations. The engine's synthetic full-text element is
// never present in Fragments.
type Extraction struct {
	FullText  string
	Fragments []TextAnnotation
}

type annotateRequest struct {
	Requests []annotateImageRequest `json:"requests"`
}

type annotateImageRequest struct {
	Image   annotateImage     `json:"image"`
	Feature []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type annotateResponse struct {
	Responses []annotateResult `json:"responses"`
}

type annotateResult struct {
	TextAnnotations    []TextAnnotation    `json:"textAnnotations"`
	FullTextAnnotation *fullTextAnnotation `json:"fullTextAnnotation"`
	Error              *annotateError      `json:"error"`
}

type fullTextAnnotation struct {
	Text string `json:"text"`
}

type annotateError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
