// Package document stores patient file attachments in object storage with a
// metadata row per file.
package document

import (
	"context"
	"fmt"
	"io"
	"path"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/repo"
	entpatient "github.com/fundacionaurora/clinica_backend/internal/repo/patient"
	entdoc "github.com/fundacionaurora/clinica_backend/internal/repo/patientdocument"
	"github.com/fundacionaurora/clinica_backend/pkg/s3"
)

// MaxFileSize caps uploads at 20 MiB.
const MaxFileSize = 20 << 20

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadRequest struct {
	PatientID   uuid.UUID
	UploadedBy  uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DocumentInfo pairs a metadata row with a presigned download URL.
type DocumentInfo struct {
	Document    *repo.PatientDocument
	DownloadURL string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*repo.PatientDocument, error)
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.PatientDocument, error)
	GetDownloadURL(ctx context.Context, documentID uuid.UUID) (*DocumentInfo, error)
	Delete(ctx context.Context, documentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type documentService struct {
	db      *repo.Client
	storage *s3.Client
}

func New(db *repo.Client, storage *s3.Client) Service {
	return &documentService{db: db, storage: storage}
}

func (s *documentService) Upload(ctx context.Context, req UploadRequest) (*repo.PatientDocument, error) {
	if req.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if req.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("patient %s not found", req.PatientID)
	}

	key := fmt.Sprintf("patient-documents/%s/%s%s",
		req.PatientID, uuid.NewString(), path.Ext(req.FileName))

	if err := s.storage.Upload(ctx, key, req.ContentType, req.Body, req.Size); err != nil {
		return nil, err
	}

	doc, err := s.db.PatientDocument.Create().
		SetPatientID(req.PatientID).
		SetFileKey(key).
		SetFileName(req.FileName).
		SetContentType(req.ContentType).
		SetSizeBytes(req.Size).
		SetUploadedBy(req.UploadedBy).
		Save(ctx)
	if err != nil {
		// Metadata write failed; remove the orphaned object.
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("create document row: %w", err)
	}

	return doc, nil
}

func (s *documentService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.PatientDocument, error) {
	docs, err := s.db.PatientDocument.Query().
		Where(entdoc.PatientID(patientID)).
		Order(entdoc.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) GetDownloadURL(ctx context.Context, documentID uuid.UUID) (*DocumentInfo, error) {
	doc, err := s.db.PatientDocument.Get(ctx, documentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	url, err := s.storage.PresignDownload(ctx, doc.FileKey)
	if err != nil {
		return nil, err
	}

	return &DocumentInfo{Document: doc, DownloadURL: url}, nil
}

func (s *documentService) Delete(ctx context.Context, documentID uuid.UUID) error {
	doc, err := s.db.PatientDocument.Get(ctx, documentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("get document: %w", err)
	}

	if err := s.storage.Delete(ctx, doc.FileKey); err != nil {
		return err
	}

	if err := s.db.PatientDocument.DeleteOne(doc).Exec(ctx); err != nil {
		return fmt.Errorf("delete document row: %w", err)
	}
	return nil
}
