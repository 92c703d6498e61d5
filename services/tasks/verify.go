package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"letsheal/models"
	"letsheal/services/booking"
	"letsheal/services/remote"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeVerifyBooking = "booking:verify"

// ErrBookingNotFound makes asynq retry until the backend shows the appointment or
// retries run out.
var ErrBookingNotFound = errors.New("booked appointment not found")

// VerifyBookingPayload identifies a booking the backend answered with an HTML 500.
type VerifyBookingPayload struct {
	SessionID   string `json:"sessionId"`
	TherapistID int64  `json:"therapistId"`
	CustomerID  int64  `json:"customerId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func NewVerifyBookingTask(payload VerifyBookingPayload, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeVerifyBooking, b)
	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.MaxRetry(3)}

	return task, opts, nil
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// VerificationScheduler queues a check for every booking accepted through the
// HTML 500 workaround.
type VerificationScheduler struct {
	client Enqueuer
	delay  time.Duration
}

func NewVerificationScheduler(client Enqueuer, delay time.Duration) *VerificationScheduler {
	return &VerificationScheduler{client: client, delay: delay}
}

func (s *VerificationScheduler) Schedule(ctx context.Context, sessionID string, res *booking.SubmitResult) error {
	if res == nil || !res.Quirk {
		return nil
	}
	task, opts, err := NewVerifyBookingTask(VerifyBookingPayload{
		SessionID:   sessionID,
		TherapistID: res.Payload.Therapist,
		CustomerID:  res.Payload.Customer,
		Date:        res.Payload.AppointmentDate,
		Time:        res.Payload.AppointmentTime,
	}, s.delay)
	if err != nil {
		return err
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeVerifyBooking, err)
	}
	return nil
}

// SessionLoader reads a stored session.
type SessionLoader interface {
	Load(ctx context.Context, sessionID string) (*models.Session, error)
}

// AppointmentLister lists the customer's upcoming appointments.
type AppointmentLister interface {
	CustomerAppointments(ctx context.Context, token string, h remote.History) ([]models.Appointment, error)
}

// Verifier checks that a quirk-accepted booking really exists.
type Verifier struct {
	sessions SessionLoader
	api      AppointmentLister
	logger   *zap.Logger
}

func NewVerifier(sessions SessionLoader, api AppointmentLister, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{sessions: sessions, api: api, logger: logger}
}

// HandleVerifyBooking is the asynq handler for TypeVerifyBooking.
func (v *Verifier) HandleVerifyBooking(ctx context.Context, task *asynq.Task) error {
	var p VerifyBookingPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		v.logger.Error("Invalid booking verification payload", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	logger := v.logger.With(
		zap.Int64("therapistID", p.TherapistID),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)

	session, err := v.sessions.Load(ctx, p.SessionID)
	if err != nil {
		return err
	}
	if !session.Authenticated() {
		logger.Warn("Session ended before booking could be verified")
		return nil
	}

	appts, err := v.api.CustomerAppointments(ctx, session.AccessToken, remote.HistoryCurrent)
	if errors.Is(err, remote.ErrAuthExpired) || errors.Is(err, remote.ErrForbidden) {
		logger.Warn("Booking verification not authorised", zap.Error(err))
		return nil
	}
	if err != nil {
		return err
	}

	if found, ok := findBooking(appts, p); ok {
		logger.Info("Booking accepted with HTML 500 was created", zap.String("appointmentID", found.ID.String()))
		return nil
	}
	logger.Warn("Booking accepted with HTML 500 is missing on the backend")
	return ErrBookingNotFound
}

func findBooking(appts []models.Appointment, p VerifyBookingPayload) (models.Appointment, bool) {
	for _, a := range appts {
		if int64(a.Therapist.ID) != p.TherapistID || a.Date != p.Date {
			continue
		}
		if sameMinute(a.Time, p.Time) {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// sameMinute compares HH:MM prefixes; the backend adds seconds.
func sameMinute(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if len(a) > 5 {
		a = a[:5]
	}
	if len(b) > 5 {
		b = b[:5]
	}
	return a == b
}
