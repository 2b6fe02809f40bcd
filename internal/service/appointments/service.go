package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис чтения записей на прием
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Клиент видит только свою запись; запросы от имени бизнеса передают ownerID.
func (s *Service) GetByID(ctx context.Context, id, requesterUserID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, requesterUserID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Доступ: сам клиент или бизнес-владелец записи
	if appt.CustomerUserID != requesterUserID && appt.OwnerID != requesterUserID {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", requesterUserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает историю записей клиента
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%s", req.CustomerUserID)

	if strings.TrimSpace(req.CustomerUserID) == "" {
		return nil, fmt.Errorf("%w: customerUserId is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByCustomer(ctx, req.CustomerUserID)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%s: %v", req.CustomerUserID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: successfully fetched %d appointments for customer=%s",
		len(appointments), req.CustomerUserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetOwnerDay получает расписание бизнеса на день (по возрастанию времени начала)
func (s *Service) GetOwnerDay(ctx context.Context, req *models.GetOwnerDayRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetOwnerDay: fetching appointments for owner=%s, date=%s",
		req.OwnerID, req.Date.Format(domain.DateFormat))

	if strings.TrimSpace(req.OwnerID) == "" {
		return nil, fmt.Errorf("%w: ownerId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByOwnerAndDate(ctx, req.OwnerID, req.Date)
	if err != nil {
		s.logger.Error("GetOwnerDay: repository error for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerDay: successfully fetched %d appointments for owner=%s",
		len(appointments), req.OwnerID)
	return models.FromDomainAppointmentList(appointments), nil
}
