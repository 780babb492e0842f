package entity

// DocumentType groups documents on the admin documents page.
type DocumentType string

const (
	DocumentTypeLease  DocumentType = "Lease"
	DocumentTypeForm   DocumentType = "Form"
	DocumentTypePolicy DocumentType = "Policy"
)

// Document is metadata about a shared file. The file itself is not stored here.
type Document struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	UploadedAt Date         `json:"uploadedAt"`
	URL        string       `json:"url"`
}

// Clone returns a copy of d that can be modified freely.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d

	return &c
}
