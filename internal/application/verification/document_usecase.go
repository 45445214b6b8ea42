package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

var validDocumentKinds = map[string]bool{
	entity.DocumentKindID:        true,
	entity.DocumentKindIncome:    true,
	entity.DocumentKindInsurance: true,
	entity.DocumentKindLicense:   true,
}

// DocumentUseCase stores verification documents and runs them through the
// extraction provider.
type DocumentUseCase struct {
	docRepo   repository.DocumentRepository
	store     ObjectStore
	extractor DocumentExtractor
	log       *logger.Logger
}

func NewDocumentUseCase(docRepo repository.DocumentRepository, store ObjectStore, extractor DocumentExtractor, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{docRepo: docRepo, store: store, extractor: extractor, log: log}
}

// Upload stores the file and submits it for extraction. A provider outage
// leaves the row as uploaded; extraction can be retried by re-submitting.
func (uc *DocumentUseCase) Upload(ctx context.Context, ownerID string, req *dto.UploadDocumentRequest, body []byte, contentType string) (*dto.DocumentResponse, error) {
	if !validDocumentKinds[req.Kind] || req.FileName == "" || len(body) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	doc := &entity.VerificationDocument{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Kind:        req.Kind,
		FileName:    req.FileName,
		StorageKey:  fmt.Sprintf("verification/%s/%s-%s", ownerID, uuid.New().String(), req.FileName),
		ContentType: contentType,
		Status:      entity.DocumentUploaded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.store.Put(ctx, doc.StorageKey, body, contentType); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}

	providerRef, err := uc.extractor.SubmitDocument(ctx, doc.Kind, body, contentType)
	if err != nil {
		uc.log.Error().Err(err).Str("document", doc.ID).Msg("submit document for extraction failed")
		return uc.toResponse(ctx, doc, false), nil
	}
	doc.ProviderRef = providerRef
	doc.Status = entity.DocumentProcessing
	doc.UpdatedAt = time.Now()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, doc, false), nil
}

// List returns the owner's documents without download links.
func (uc *DocumentUseCase) List(ctx context.Context, ownerID string) ([]dto.DocumentResponse, error) {
	docs, err := uc.docRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, *uc.toResponse(ctx, doc, false))
	}
	return out, nil
}

// Get returns one document with a presigned download link.
func (uc *DocumentUseCase) Get(ctx context.Context, ownerID, docID string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(docID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(ctx, doc, true), nil
}

// HandleExtractionEvent applies the provider's result. Events for documents
// already past processing are ignored.
func (uc *DocumentUseCase) HandleExtractionEvent(ev ExtractionEvent) error {
	doc, err := uc.docRepo.GetByProviderRef(ev.ProviderRef)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if doc.Status == entity.DocumentExtracted || doc.Status == entity.DocumentFailed {
		return nil
	}
	if ev.Succeeded {
		doc.Status = entity.DocumentExtracted
		doc.Extracted = ev.Fields
	} else {
		doc.Status = entity.DocumentFailed
	}
	doc.UpdatedAt = time.Now()
	return uc.docRepo.Update(doc)
}

func (uc *DocumentUseCase) toResponse(ctx context.Context, doc *entity.VerificationDocument, withURL bool) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:        doc.ID,
		Kind:      doc.Kind,
		FileName:  doc.FileName,
		Status:    doc.Status,
		Extracted: doc.Extracted,
		CreatedAt: doc.CreatedAt,
	}
	if withURL {
		url, err := uc.store.PresignGet(ctx, doc.StorageKey)
		if err != nil {
			uc.log.Error().Err(err).Str("document", doc.ID).Msg("presign document failed")
		} else {
			resp.DownloadURL = url
		}
	}
	return resp
}
