// Package pipeline drives the full applicant pipeline: walk a ZIP archive,
// extract and mask each PDF's text, classify it, and aggregate the fields into
// scored-ready applicant records.
package pipeline

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	stderrors "scholarship-workers/internal/common/errors"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/pipeline/aggregate"
	"scholarship-workers/internal/pipeline/audit"
	"scholarship-workers/internal/pipeline/classify"
	"scholarship-workers/internal/pipeline/masking"
	"scholarship-workers/internal/pipeline/pdftext"
)

// TextExtractor pulls plain text out of a PDF document.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// Result is the outcome of processing one archive.
type Result struct {
	Records  []models.ApplicantRecord
	Warnings []models.ParseWarning
}

// Processor walks archives and builds applicant records.
type Processor struct {
	extractor TextExtractor
	params    aggregate.Params
	logger    logger.Logger
}

// NewProcessor creates a Processor using the real PDF extractor.
func NewProcessor(params aggregate.Params, log logger.Logger) *Processor {
	return &Processor{
		extractor: pdftext.NewExtractor(),
		params:    params,
		logger:    log,
	}
}

// NewProcessorWithExtractor creates a Processor with a custom extractor.
func NewProcessorWithExtractor(extractor TextExtractor, params aggregate.Params, log logger.Logger) *Processor {
	return &Processor{
		extractor: extractor,
		params:    params,
		logger:    log,
	}
}

// ProcessArchive reads a ZIP archive from memory and returns the aggregated
// applicant records. A file that cannot be read or parsed degrades to a
// warning on its applicant; only a malformed archive is an error.
func (p *Processor) ProcessArchive(data []byte, trail *audit.Trail) (*Result, error) {
	start := time.Now()
	defer func() {
		metrics.ArchiveProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, stderrors.NewArchiveInvalidError(err)
	}
	trail.Add("archive", "아카이브 열기 완료: %d개 항목", len(reader.File))

	acc := aggregate.New(p.params)
	processed := 0

	for _, f := range reader.File {
		if !isApplicantPDF(f.Name) {
			continue
		}
		key := ApplicantKey(f.Name)
		if key == "" {
			continue
		}
		p.processFile(acc, trail, key, f)
		processed++
	}
	trail.Add("archive", "PDF 처리 완료: %d건", processed)

	records := acc.Finalize()
	warnings := aggregate.Warnings(records)
	trail.Add("aggregate", "지원자 레코드 생성: %d명, 경고 %d건", len(records), len(warnings))

	p.logger.Info("archive processed", map[string]interface{}{
		"files":      processed,
		"applicants": len(records),
		"warnings":   len(warnings),
	})

	return &Result{Records: records, Warnings: warnings}, nil
}

func (p *Processor) processFile(acc *aggregate.Accumulator, trail *audit.Trail, key string, f *zip.File) {
	rc, err := f.Open()
	if err != nil {
		acc.AddWarning(key, fmt.Sprintf("❌ '%s': 오류 — %v", f.Name, err))
		metrics.DocumentExtractionFailures.Inc()
		return
	}
	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	rc.Close()
	if err != nil {
		acc.AddWarning(key, fmt.Sprintf("❌ '%s': 오류 — %v", f.Name, err))
		metrics.DocumentExtractionFailures.Inc()
		return
	}

	text, err := p.extractor.Extract(buf.Bytes())
	if err != nil {
		acc.AddWarning(key, fmt.Sprintf("❌ '%s': 오류 — %v", f.Name, err))
		metrics.DocumentExtractionFailures.Inc()
		return
	}
	if strings.TrimSpace(text) == "" {
		// Scanned images extract to nothing; keep the applicant but
		// flag the file.
		acc.AddWarning(key, fmt.Sprintf("⚠ '%s': 텍스트 추출 불가 (스캔 이미지로 추정)", f.Name))
		metrics.DocumentExtractionFailures.Inc()
		return
	}

	masked := masking.Mask(text)
	docType := classify.Classify(masked)
	metrics.DocumentsProcessed.WithLabelValues(string(docType)).Inc()
	trail.Add("classify", "'%s' → %s", f.Name, docType)

	acc.Apply(key, docType, masked)
}

// isApplicantPDF filters archive entries down to real applicant documents,
// skipping directories, macOS metadata, and hidden files.
func isApplicantPDF(name string) bool {
	if strings.HasSuffix(name, "/") {
		return false
	}
	if strings.HasPrefix(name, "__MACOSX") {
		return false
	}
	base := path.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(path.Ext(base), ".pdf")
}

// ApplicantKey derives the applicant identity from an archive entry path. A
// nested file belongs to its top-level folder; a flat file is keyed by the
// filename prefix before the first underscore, hyphen, or space.
func ApplicantKey(name string) string {
	clean := strings.Trim(name, "/")
	if i := strings.IndexByte(clean, '/'); i >= 0 {
		return strings.TrimSpace(clean[:i])
	}

	stem := strings.TrimSuffix(clean, path.Ext(clean))
	if i := strings.IndexAny(stem, "_- "); i >= 0 {
		stem = stem[:i]
	}
	return strings.TrimSpace(stem)
}
