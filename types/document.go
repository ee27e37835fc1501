package types

import "time"

// PdfDocument is the persisted record for one uploaded PDF. The text is set
// once at creation and never updated; there is no delete or edit operation.
type PdfDocument struct {
	ID         string    `bson:"_id,omitempty" json:"doc_id"`
	PdfName    string    `bson:"pdf_name" json:"pdf_name"`
	UploadTime time.Time `bson:"upload_time" json:"upload_time"`
	Text       string    `bson:"text" json:"text"`
}

// PdfUploadView is the transfer projection of a PdfDocument. Text is only
// populated on single-document reads; list responses leave it unset.
type PdfUploadView struct {
	DocID      string `json:"doc_id"`
	PdfName    string `json:"pdf_name"`
	UploadTime string `json:"upload_time"`
	Text       string `json:"text,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (d *PdfDocument) View(withText bool) PdfUploadView {
	v := PdfUploadView{
		DocID:      d.ID,
		PdfName:    d.PdfName,
		UploadTime: d.UploadTime.UTC().Format(time.RFC3339),
	}
	if withText {
		v.Text = d.Text
	}
	return v
}
