package service

import (
	"context"

	"github.com/tsawler/quill/request"
	"github.com/tsawler/quill/structure"
)

// Service is the document service boundary. Document returns the raw
// nested payload for one document; BatchUpdate applies all records as a
// single ordered transaction.
type Service interface {
	Document(ctx context.Context, documentID string) (*structure.DocumentPayload, error)
	BatchUpdate(ctx context.Context, documentID string, records []request.Record) (*BatchResult, error)
}

// Reply is one entry of a batchUpdate response. Replies are positionally
// correlated with the submitted records; records with no service-assigned
// result produce an empty reply.
type Reply struct {
	CreateHeader   *CreateHeaderReply   `json:"createHeader,omitempty"`
	CreateFooter   *CreateFooterReply   `json:"createFooter,omitempty"`
	ReplaceAllText *ReplaceAllTextReply `json:"replaceAllText,omitempty"`
}

// CreateHeaderReply surfaces the id of a newly created header.
type CreateHeaderReply struct {
	HeaderID string `json:"headerId"`
}

// CreateFooterReply surfaces the id of a newly created footer.
type CreateFooterReply struct {
	FooterID string `json:"footerId"`
}

// ReplaceAllTextReply reports how many matches were replaced.
type ReplaceAllTextReply struct {
	OccurrencesChanged int `json:"occurrencesChanged"`
}

// BatchResult is the response to a batchUpdate call.
type BatchResult struct {
	DocumentID string  `json:"documentId"`
	Replies    []Reply `json:"replies"`
}
