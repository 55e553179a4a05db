package domain

// ActiveDocument is the document currently under analysis.
// Exactly one may be active at a time; it lives in the externally-owned
// key/value store under the documentContent and documentName keys.
type ActiveDocument struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Analysis combines the annotated clauses and the derived summary for
// the active document. Read-only to all consumers.
type Analysis struct {
	DocumentName string           `json:"document_name"`
	Clauses      []Clause         `json:"clauses"`
	Summary      *DocumentSummary `json:"summary"`
}
