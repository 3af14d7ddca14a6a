package model

import "github.com/shopspring/decimal"

// AttachmentCategory classifies an attachment.
type AttachmentCategory string

const (
	CategoryContactPhoto AttachmentCategory = "ContactPhoto"
	CategoryDocument     AttachmentCategory = "Document"
	CategoryImage        AttachmentCategory = "Image"
	CategoryReceipt      AttachmentCategory = "Receipt"
	CategorySignature    AttachmentCategory = "Signature"
	CategorySound        AttachmentCategory = "Sound"
	CategoryOther        AttachmentCategory = "Other"
)

// Attachable is a note or file attached to other records.
type Attachable struct {
	ObjectData

	FileName               *string             `json:"FileName,omitempty"`
	Note                   *string             `json:"Note,omitempty" validate:"required_without=FileName"`
	Category               *AttachmentCategory `json:"Category,omitempty"`
	ContentType            *string             `json:"ContentType,omitempty"`
	AttachableRef          []AttachableRef     `json:"AttachableRef,omitempty"`
	Size                   *decimal.Decimal    `json:"Size,omitempty"`
	FileAccessURI          *string             `json:"FileAccessUri,omitempty"`
	TempDownloadURI        *string             `json:"TempDownloadUri,omitempty"`
	ThumbnailFileAccessURI *string             `json:"ThumbnailFileAccessUri,omitempty"`
	Lat                    *string             `json:"Lat,omitempty"`
	Long                   *string             `json:"Long,omitempty"`
	PlaceName              *string             `json:"PlaceName,omitempty"`
	Tag                    *string             `json:"Tag,omitempty"`
}

// AttachableRef ties an attachment to the record it belongs to.
type AttachableRef struct {
	EntityRef     *Reference `json:"EntityRef,omitempty"`
	LineInfo      *string    `json:"LineInfo,omitempty"`
	IncludeOnSend *bool      `json:"IncludeOnSend,omitempty"`
	Inactive      *bool      `json:"Inactive,omitempty"`
	NoRefOnly     *bool      `json:"NoRefOnly,omitempty"`
}

// NewAttachable builds an attachment. An attachment needs a note, a file name,
// or both.
func NewAttachable(note, fileName string) (*Attachable, error) {
	a := &Attachable{}
	if note != "" {
		a.Note = &note
	}
	if fileName != "" {
		a.FileName = &fileName
	}
	if err := Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (*Attachable) Kind() Kind { return KindAttachable }
