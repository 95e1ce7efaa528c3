package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfbook/turf-booking-service/internal/dto"
	"github.com/turfbook/turf-booking-service/internal/models"
	"github.com/turfbook/turf-booking-service/internal/repository"
	"github.com/turfbook/turf-booking-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidTurf     = errors.New("invalid turf")
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	turfRepo    repository.TurfRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, turfRepo repository.TurfRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		turfRepo:    turfRepo,
		publisher:   publisher,
	}
}

// CreateBooking resolves the referenced turf, prices the booking off its
// hourly rate and snapshots the turf name. The lookup and the insert are
// separate round trips; a turf deleted in between leaves a dangling
// turfId, which the data model tolerates.
func (s *bookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
	turf, err := s.turfRepo.FindByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTurf
		}
		return nil, fmt.Errorf("resolve turf: %w", err)
	}

	booking := &models.Booking{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		TurfID:       turf.ID,
		TurfName:     turf.Name,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		Duration:     req.Duration,
		Players:      req.Players,
		TotalPrice:   turf.PricePerHour * float64(req.Duration),
		Status:       models.StatusConfirmed,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx)
}

// UpdateBooking merges every supplied field over the stored record.
// totalPrice stays whatever it was (or whatever the caller sent) — it is
// priced once at creation and never derived again.
func (s *bookingService) UpdateBooking(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.Phone != nil {
		booking.Phone = *req.Phone
	}
	if req.TurfID != nil {
		booking.TurfID = *req.TurfID
	}
	if req.TurfName != nil {
		booking.TurfName = *req.TurfName
	}
	if req.Date != nil {
		booking.Date = *req.Date
	}
	if req.TimeSlot != nil {
		booking.TimeSlot = *req.TimeSlot
	}
	if req.Duration != nil {
		booking.Duration = *req.Duration
	}
	if req.Players != nil {
		booking.Players = *req.Players
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.updated", booking)
	}
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.deleted", booking)
	}
	return nil
}
