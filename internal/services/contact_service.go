package services

import (
	"time"

	"go.uber.org/zap"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/repos"
	"canopy/internal/validate"
)

type ContactService struct {
	Contacts *repos.ContactRepo
	Log      *zap.Logger
}

func NewContactService(contacts *repos.ContactRepo, log *zap.Logger) *ContactService {
	return &ContactService{Contacts: contacts, Log: log}
}

func (s *ContactService) Submit(req domain.CreateContactRequest) (domain.ContactRequest, error) {
	if err := validate.Struct("Invalid contact data", req); err != nil {
		return domain.ContactRequest{}, err
	}

	created, err := s.Contacts.Create(domain.ContactRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Interest:  req.Interest,
		Message:   req.Message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return domain.ContactRequest{}, apperr.NewInternalError("Failed to submit contact request", err)
	}

	s.Log.Info("contact request received",
		zap.Int64("contact_id", created.ID),
		zap.String("interest", created.Interest),
	)
	return created, nil
}
