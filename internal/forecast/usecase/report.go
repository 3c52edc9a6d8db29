package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/minio"
	"pulse-srv/pkg/report"
)

// Report renders the decision for input as a workbook, archives it and
// returns a presigned download link.
func (uc *implUseCase) Report(ctx context.Context, sc model.Scope, input forecast.ForecastInput) (forecast.ReportOutput, error) {
	if uc.storage == nil || uc.cfg.ReportBucket == "" {
		return forecast.ReportOutput{}, forecast.ErrReportUnavailable
	}

	d, err := uc.Decide(ctx, sc, input)
	if err != nil {
		return forecast.ReportOutput{}, err
	}

	now := uc.clock()
	b, err := report.Build(report.Input{Facility: input.Facility, Decision: d, GeneratedAt: now})
	if err != nil {
		uc.l.Errorf(ctx, "internal.forecast.usecase.Report.Build: %v", err)
		return forecast.ReportOutput{}, err
	}

	fileName := report.FileName(input.Facility, now)
	objectName := minio.BuildObjectPath("forecast", input.Facility.HospitalID, input.Facility.DepartmentID, fileName)
	info, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.cfg.ReportBucket,
		ObjectName:   objectName,
		OriginalName: fileName,
		Reader:       bytes.NewReader(b),
		Size:         int64(len(b)),
		ContentType:  report.ContentType,
		Metadata: map[string]string{
			"hospital-id":   input.Facility.HospitalID,
			"department-id": input.Facility.DepartmentID,
			"requested-by":  sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.forecast.usecase.Report.UploadFile: %v", err)
		return forecast.ReportOutput{}, storageError(err)
	}

	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.cfg.ReportBucket,
		ObjectName: objectName,
		Expiry:     uc.cfg.ReportURLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.forecast.usecase.Report.GetPresignedDownloadURL: %v", err)
		return forecast.ReportOutput{}, storageError(err)
	}

	return forecast.ReportOutput{
		Bucket:     info.BucketName,
		ObjectName: info.ObjectName,
		FileName:   fileName,
		Size:       info.Size,
		URL:        url.URL,
		ExpiresAt:  url.ExpiresAt,
	}, nil
}

// storageError reports an unreachable or misconfigured store as unavailable.
func storageError(err error) error {
	if errors.Is(err, minio.ErrUnavailable) || errors.Is(err, minio.ErrDenied) || errors.Is(err, minio.ErrNotFound) {
		return fmt.Errorf("%w: %w", forecast.ErrReportUnavailable, err)
	}
	return err
}
