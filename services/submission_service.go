package services

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"
	"formbuilder.link/pkg/queryparams"
	"formbuilder.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmittedValues alan kimliğine göre gönderilen ham değerler.
type SubmittedValues map[uint][]string

// SubmissionReceipt kaydedilen gönderim ve kullanıcıya gösterilecek mesaj.
type SubmissionReceipt struct {
	Submission     *models.FormSubmission `json:"submission"`
	SuccessMessage string                 `json:"success_message"`
}

// ISubmissionService form gönderimlerini kaydeder ve listeler.
type ISubmissionService interface {
	RecordSubmission(ctx context.Context, slug string, values SubmittedValues, submitterID *uint, remoteAddr string) (*SubmissionReceipt, error)
	ListSubmissions(ctx context.Context, formID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

type SubmissionService struct {
	repo repositories.ISubmissionRepository
	db   *gorm.DB
	now  func() time.Time
}

var _ ISubmissionService = (*SubmissionService)(nil)

func NewSubmissionService(db *gorm.DB) ISubmissionService {
	return &SubmissionService{
		repo: repositories.NewSubmissionRepository(db),
		db:   db,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// normalizeIP geçerli bir IP adresi döner; port varsa atılır.
func normalizeIP(remoteAddr string) *string {
	addr := strings.TrimSpace(remoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil
	}
	s := ip.String()
	return &s
}

// RecordSubmission yayındaki forma bir gönderim kaydeder. Formun her alanı
// için tam olarak bir cevap yazılır: eksik alanlar boş, checkbox alanları
// virgülle birleşik, diğerleri son gönderilen değer. Zorunluluk ve doğrulama
// kuralları burada uygulanmaz.
func (s *SubmissionService) RecordSubmission(ctx context.Context, slug string, values SubmittedValues, submitterID *uint, remoteAddr string) (*SubmissionReceipt, error) {
	var receipt *SubmissionReceipt
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		form, err := repositories.NewFormRepositoryTx(tx).FindBySlugForShare(ctx, strings.TrimSpace(slug))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return wrapKind(ErrNotFound, ErrFormNotFound)
			}
			return err
		}
		if !form.IsSubmittable() {
			return wrapKind(ErrNotSubmittable, ErrFormNotPublished)
		}

		fields, err := repositories.NewFormFieldRepositoryTx(tx).FindAllByFormID(ctx, form.ID)
		if err != nil {
			return err
		}

		submission := models.FormSubmission{
			FormID:        form.ID,
			SubmittedByID: submitterID,
			SubmittedAt:   s.now(),
			IPAddress:     normalizeIP(remoteAddr),
		}
		fieldValues := make([]models.FormFieldValue, 0, len(fields))
		for i := range fields {
			fieldValues = append(fieldValues, models.FormFieldValue{
				FieldID: fields[i].ID,
				Value:   fields[i].ResolveValue(values[fields[i].ID]),
			})
		}

		if err := repositories.NewSubmissionRepositoryTx(tx).Create(ctx, &submission, fieldValues); err != nil {
			return err
		}
		receipt = &SubmissionReceipt{Submission: &submission, SuccessMessage: form.SuccessMessage}
		return nil
	})

	if txErr != nil {
		logIfUnexpected("RecordSubmission transaction failed", txErr, zap.String("slug", slug))
		return nil, txErr
	}
	configslog.SLog.Infof("Gönderim kaydedildi: ID %d, Form: %d, %d cevap",
		receipt.Submission.ID, receipt.Submission.FormID, len(receipt.Submission.Values))
	return receipt, nil
}

// ListSubmissions formun gönderimlerini en yeniden eskiye sayfalar.
func (s *SubmissionService) ListSubmissions(ctx context.Context, formID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	if _, err := repositories.NewFormRepository(s.db).FindByID(ctx, formID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, wrapKind(ErrNotFound, ErrFormNotFound)
		}
		return nil, err
	}

	submissions, totalCount, err := s.repo.FindAllByFormIDPaginated(ctx, formID, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(submissions, totalCount, params), nil
}
