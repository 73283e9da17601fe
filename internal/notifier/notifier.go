// Package notifier renders and sends the operator notification email for
// submitted inquiries, and records the delivery outcome on the inquiry row.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/atelierbellemare/atelier-backend/internal/mailer"
	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
)

// Mode controls whether a send failure is raised to the caller or
// swallowed. The outcome is recorded on the inquiry either way.
type Mode int

const (
	// ModeSilent swallows send errors; intake handlers use it so a mail
	// outage never breaks form submission.
	ModeSilent Mode = iota

	// ModeRaise returns send errors to the caller; the admin resend
	// action uses it to report the failure.
	ModeRaise
)

// Result reports a single notification attempt
type Result struct {
	Sent bool
	Err  error
}

const generalTemplate = `Nouveau message reçu via le formulaire de contact.

Nom: {{.Inquiry.Name}}
Courriel: {{.Inquiry.Email}}
{{- if .Inquiry.Phone}}
Téléphone: {{.Inquiry.Phone}}
{{- end}}

Message:
{{.Inquiry.Message}}

Reçu le {{.ReceivedAt}}
`

const purchaseTemplate = `Nouvelle demande d'achat reçue.

Toile: {{.Painting.Title}} (SKU {{.Painting.SKU}})
Prix: {{printf "%.2f" .Painting.PriceCAD}} $ CAD
{{- if .Painting.Dimensions}}
Dimensions: {{.Painting.Dimensions}}
{{- end}}

Nom: {{.Inquiry.Name}}
Courriel: {{.Inquiry.Email}}
{{- if .Inquiry.Phone}}
Téléphone: {{.Inquiry.Phone}}
{{- end}}
{{- if .Inquiry.Message}}

Message:
{{.Inquiry.Message}}
{{- end}}

Reçu le {{.ReceivedAt}}
`

var (
	generalTmpl  = template.Must(template.New("general").Parse(generalTemplate))
	purchaseTmpl = template.Must(template.New("purchase").Parse(purchaseTemplate))
)

// templateData is the rendering context for notification bodies
type templateData struct {
	Inquiry    *models.Inquiry
	Painting   *models.Painting
	ReceivedAt string
}

// Service is the notification dispatcher
type Service struct {
	mailer     mailer.Mailer
	inquiries  repository.InquiryRepository
	paintings  repository.PaintingRepository
	from       string
	recipients []string
	siteName   string
	logger     *slog.Logger
}

// NewService creates a notification dispatcher. Recipients is the fixed
// operator address list every notification goes to.
func NewService(m mailer.Mailer, inquiries repository.InquiryRepository, paintings repository.PaintingRepository,
	from string, recipients []string, siteName string, logger *slog.Logger) *Service {
	return &Service{
		mailer:     m,
		inquiries:  inquiries,
		paintings:  paintings,
		from:       from,
		recipients: recipients,
		siteName:   siteName,
		logger:     logger,
	}
}

// Notify sends the notification email for an inquiry and records the
// outcome on the row as one atomic field set. In ModeRaise the send error
// is returned; in ModeSilent it is only recorded and logged.
func (s *Service) Notify(ctx context.Context, inquiry *models.Inquiry, mode Mode) (Result, error) {
	result := s.dispatch(ctx, inquiry)

	if result.Err != nil && mode == ModeRaise {
		return result, result.Err
	}
	return result, nil
}

func (s *Service) dispatch(ctx context.Context, inquiry *models.Inquiry) Result {
	painting, err := s.loadPainting(ctx, inquiry)
	if err == nil {
		err = s.send(ctx, inquiry, painting)
	}

	now := time.Now().UTC()
	if err != nil {
		detail := fmt.Sprintf("send to %s for inquiry %d (kind=%s): %v",
			strings.Join(s.recipients, ", "), inquiry.ID, inquiry.Kind, err)
		if recErr := s.inquiries.RecordDelivery(ctx, inquiry.ID, false, now, err.Error(), detail); recErr != nil {
			s.logger.Error("failed to record delivery failure",
				slog.Uint64("inquiry_id", uint64(inquiry.ID)),
				slog.Any("error", recErr))
		}
		s.logger.Warn("notification email failed",
			slog.Uint64("inquiry_id", uint64(inquiry.ID)),
			slog.String("kind", inquiry.Kind),
			slog.Any("error", err))
		return Result{Sent: false, Err: err}
	}

	if recErr := s.inquiries.RecordDelivery(ctx, inquiry.ID, true, now, "", ""); recErr != nil {
		s.logger.Error("failed to record delivery success",
			slog.Uint64("inquiry_id", uint64(inquiry.ID)),
			slog.Any("error", recErr))
	}
	s.logger.Info("notification email sent",
		slog.Uint64("inquiry_id", uint64(inquiry.ID)),
		slog.String("kind", inquiry.Kind))
	return Result{Sent: true}
}

// loadPainting resolves the referenced painting for purchase inquiries
func (s *Service) loadPainting(ctx context.Context, inquiry *models.Inquiry) (*models.Painting, error) {
	if inquiry.Kind != models.KindPurchase || inquiry.PaintingID == nil {
		return nil, nil
	}
	if inquiry.Painting != nil {
		return inquiry.Painting, nil
	}

	painting, err := s.paintings.GetByID(ctx, *inquiry.PaintingID)
	if err != nil {
		return nil, fmt.Errorf("load painting %d: %w", *inquiry.PaintingID, err)
	}
	return painting, nil
}

func (s *Service) send(ctx context.Context, inquiry *models.Inquiry, painting *models.Painting) error {
	subject := s.Subject(inquiry, painting)

	tmpl := generalTmpl
	if inquiry.Kind == models.KindPurchase && painting != nil {
		tmpl = purchaseTmpl
	}

	var body strings.Builder
	err := tmpl.Execute(&body, templateData{
		Inquiry:    inquiry,
		Painting:   painting,
		ReceivedAt: inquiry.CreatedAt.Format("2006-01-02 15:04"),
	})
	if err != nil {
		return fmt.Errorf("render notification body: %w", err)
	}

	return s.mailer.Send(ctx, mailer.Email{
		From:    s.from,
		To:      s.recipients,
		Subject: subject,
		Body:    body.String(),
	})
}

// Subject builds the kind-specific notification subject
func (s *Service) Subject(inquiry *models.Inquiry, painting *models.Painting) string {
	if inquiry.Kind == models.KindPurchase && painting != nil {
		return fmt.Sprintf("[%s] Demande d'achat - %s", s.siteName, painting.Title)
	}
	return fmt.Sprintf("[%s] Nouveau message de %s", s.siteName, inquiry.Name)
}
