package payment_service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/service"
)

// Прайс как в исходном боте: месячный на 8 занятий, разовое занятие.
const (
	MonthlyLessons = 8
	MonthlyPrice   = 4400
	SinglePrice    = 700

	// Скидочные цены для ручной выдачи администратором.
	MonthlyPriceDiscount = 3900
	SinglePriceDiscount  = 600

	paymentTTL = 24 * time.Hour
)

// PriceFor возвращает (занятий, цена) для типа абонемента.
func PriceFor(subType models.SubscriptionType, discount bool) (int, int) {
	switch subType {
	case models.SubscriptionMonthly:
		if discount {
			return MonthlyLessons, MonthlyPriceDiscount
		}
		return MonthlyLessons, MonthlyPrice
	default:
		if discount {
			return 1, SinglePriceDiscount
		}
		return 1, SinglePrice
	}
}

type paymentService struct {
	subscriptionService service.SubscriptionService
	statsService        service.StatsService
	now                 func() time.Time

	mu       sync.Mutex
	payments map[string]*models.PendingPayment
}

func NewPaymentService(subscriptionService service.SubscriptionService, statsService service.StatsService) service.PaymentService {
	return &paymentService{
		subscriptionService: subscriptionService,
		statsService:        statsService,
		now:                 time.Now,
		payments:            make(map[string]*models.PendingPayment),
	}
}

func (s *paymentService) Create(userID int64, userName string, subType models.SubscriptionType, method models.PaymentMethod) (*models.PendingPayment, error) {
	lessons, cost := PriceFor(subType, false)
	now := s.now()

	p := &models.PendingPayment{
		ID:               fmt.Sprintf("%s_%d_%d", method, now.Unix(), userID),
		UserID:           userID,
		UserName:         userName,
		SubscriptionType: subType,
		Amount:           cost,
		Lessons:          lessons,
		Method:           method,
		Status:           models.PaymentPending,
		CreatedAt:        now,
		ExpiresAt:        now.Add(paymentTTL),
	}

	s.mu.Lock()
	s.payments[p.ID] = p
	s.mu.Unlock()

	return p, nil
}

func (s *paymentService) MarkUserConfirmed(paymentID string) (*models.PendingPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[paymentID]
	if !ok {
		return nil, nil
	}

	now := s.now()
	p.Status = models.PaymentWaitingAdmin
	p.UserConfirmed = true
	p.UserConfirmedAt = &now
	return p, nil
}

// Confirm — терминальный переход: запись удаляется, леджер безусловно
// получает новый абонемент. Остаток старого абонемента пропадает.
func (s *paymentService) Confirm(paymentID string) (*models.PendingPayment, error) {
	s.mu.Lock()
	p, ok := s.payments[paymentID]
	if ok {
		delete(s.payments, paymentID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}

	sub := &models.Subscription{
		Type:      p.SubscriptionType,
		Lessons:   p.Lessons,
		Cost:      p.Amount,
		StartDate: s.now(),
	}
	if err := s.subscriptionService.Replace(p.UserID, sub); err != nil {
		return nil, err
	}
	if err := s.statsService.AppendSubscriptionSnapshot(p.UserID, p.UserName, sub); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *paymentService) Reject(paymentID string) (*models.PendingPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[paymentID]
	if !ok {
		return nil, nil
	}
	delete(s.payments, paymentID)
	return p, nil
}

func (s *paymentService) Get(paymentID string) (*models.PendingPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[paymentID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (s *paymentService) Pending() []*models.PendingPayment {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.PendingPayment, 0, len(s.payments))
	for _, p := range s.payments {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
