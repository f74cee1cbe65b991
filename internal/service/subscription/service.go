package subscription_service

import (
	"fmt"
	"time"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/repository"
	"training-poll-bot/internal/service"
)

const (
	msgNoSubscription = "У вас нет активного абонемента. Оформить можно через /купить"
	msgExhausted      = "Занятия по абонементу закончились. Продлить можно через /купить"
	msgSingleUsed     = "Разовое занятие уже использовано. Новое можно купить через /купить"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	now              func() time.Time
}

func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository) service.SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

// EvaluateAttendance — автомат списания занятий. Ответы кроме "приду" валидны
// всегда и абонемент не трогают.
func (s *subscriptionService) EvaluateAttendance(userID int64, response models.ResponseType, consume bool) (models.CreditDecision, error) {
	if response != models.ResponseYes {
		return models.CreditDecision{Valid: true}, nil
	}

	sub, err := s.subscriptionRepo.Get(userID)
	if err != nil {
		return models.CreditDecision{}, err
	}
	if sub == nil {
		return models.CreditDecision{Valid: false, Message: msgNoSubscription}, nil
	}

	now := s.now()

	switch sub.Type {
	case models.SubscriptionMonthly:
		if sub.Expired(now) {
			return models.CreditDecision{
				Valid:   false,
				Message: fmt.Sprintf("Срок действия абонемента истёк %s", sub.ExpiresAt().Format("02.01.2006")),
			}, nil
		}
		if sub.Lessons <= 0 {
			return models.CreditDecision{Valid: false, Message: msgExhausted}, nil
		}
		if consume {
			sub.Lessons--
			sub.LastUsed = &now
			if err := s.subscriptionRepo.Set(userID, sub); err != nil {
				return models.CreditDecision{}, err
			}
		}

	case models.SubscriptionSingle:
		if sub.Lessons <= 0 {
			return models.CreditDecision{Valid: false, Message: msgSingleUsed}, nil
		}
		if consume {
			// Разовый не декрементируется, а схлопывается в ноль.
			sub.Lessons = 0
			sub.LastUsed = &now
			if err := s.subscriptionRepo.Set(userID, sub); err != nil {
				return models.CreditDecision{}, err
			}
		}
	}

	return models.CreditDecision{Valid: true}, nil
}

func (s *subscriptionService) RestoreLesson(userID int64) (bool, error) {
	sub, err := s.subscriptionRepo.Get(userID)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, nil
	}

	sub.Lessons++
	if err := s.subscriptionRepo.Set(userID, sub); err != nil {
		return false, err
	}
	return true, nil
}

func (s *subscriptionService) Replace(userID int64, sub *models.Subscription) error {
	return s.subscriptionRepo.Set(userID, sub)
}

func (s *subscriptionService) Get(userID int64) (*models.Subscription, error) {
	return s.subscriptionRepo.Get(userID)
}

func (s *subscriptionService) GetAll() (map[int64]*models.Subscription, error) {
	return s.subscriptionRepo.GetAll()
}

func (s *subscriptionService) Delete(userID int64) error {
	return s.subscriptionRepo.Delete(userID)
}
